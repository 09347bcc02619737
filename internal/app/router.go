// internal/app/router.go
package app

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jvalero/roleq/internal/queue"
	"github.com/jvalero/roleq/internal/ui"
)

// routeErr mirrors the queue package's comparable error constants.
type routeErr string

func (e routeErr) Error() string { return string(e) }

var (
	ErrUnknownCommand = routeErr("unknown command")
	ErrUnknownType    = routeErr("unknown interaction type")
)

// ColourFunc resolves a role's display colour. Implementations must not
// fail: return 0 when the colour can't be determined.
type ColourFunc func(ctx context.Context, guildID, roleID string) int

// Router turns one verified interaction into exactly one response payload.
// All state lives behind the injected manager; the router itself is
// stateless, so concurrent requests only contend inside the manager.
type Router struct {
	manager   *queue.Manager
	colour    ColourFunc
	retention time.Duration
}

func NewRouter(m *queue.Manager, colour ColourFunc, retention time.Duration) *Router {
	return &Router{
		manager:   m,
		colour:    colour,
		retention: retention,
	}
}

// Handle dispatches by interaction type. A nil error means the response is
// ready to send; ErrUnknownCommand/ErrUnknownType and the queue package's
// parse errors are expected client-side garbage, not server faults.
func (rt *Router) Handle(ctx context.Context, i *discordgo.Interaction) (*discordgo.InteractionResponse, error) {
	// opportunistic eviction before every interaction. Whatever happens
	// here never changes the response below: a click on a queue swept
	// just now takes the expired path like any other stale click.
	if n := rt.manager.Sweep(rt.retention); n > 0 {
		log.Printf("swept %d expired queue(s)", n)
	}

	switch i.Type {
	case discordgo.InteractionPing:
		return &discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong}, nil
	case discordgo.InteractionApplicationCommand:
		return rt.handleCommand(ctx, i)
	case discordgo.InteractionMessageComponent:
		return rt.handleComponent(i)
	default:
		return nil, ErrUnknownType
	}
}

// ------------------- Slash -------------------

func (rt *Router) handleCommand(ctx context.Context, i *discordgo.Interaction) (*discordgo.InteractionResponse, error) {
	data := i.ApplicationCommandData()
	if data.Name != "queue" {
		log.Printf("unknown command %q", data.Name)
		return nil, ErrUnknownCommand
	}

	user := userOf(i)
	if user == nil {
		return nil, ErrUnknownType
	}

	var (
		roleID  string
		silent  bool
		voiceID string
	)
	for _, opt := range data.Options {
		switch opt.Name {
		case "role":
			roleID, _ = opt.Value.(string)
		case "silent":
			silent, _ = opt.Value.(bool)
		case "voice":
			voiceID, _ = opt.Value.(string)
		}
	}
	if roleID == "" {
		return nil, ErrUnknownCommand
	}

	colour := 0
	if rt.colour != nil {
		colour = rt.colour(ctx, i.GuildID, roleID)
	}

	q, err := rt.manager.Create(i.ID, user.ID, roleID, colour, voiceID)
	if err != nil {
		return nil, err
	}
	log.Printf("[queue] created %s by %s for role %s", q.ID, user.ID, roleID)

	// mention roles by default; a silent queue keeps the mention text
	// but pings nobody (empty allowed_mentions parse list)
	mentions := &discordgo.MessageAllowedMentions{
		Parse: []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeRoles},
	}
	if silent {
		mentions = &discordgo.MessageAllowedMentions{}
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:         "<@&" + roleID + ">",
			AllowedMentions: mentions,
			Embeds:          []*discordgo.MessageEmbed{ui.RenderQueueEmbed(q)},
			Components:      ui.ButtonsForQueue(q),
		},
	}, nil
}

// ------------------- Components -------------------

func (rt *Router) handleComponent(i *discordgo.Interaction) (*discordgo.InteractionResponse, error) {
	token, err := queue.ParseCustomID(i.MessageComponentData().CustomID)
	if err != nil {
		return nil, err
	}

	user := userOf(i)
	if user == nil {
		return nil, ErrUnknownType
	}
	log.Printf("[component] %s on %s by %s", token.Action, token.QueueID, user.ID)

	q, err := rt.manager.Click(token.QueueID, token.Action, user.ID)
	if errors.Is(err, queue.ErrNotFound) {
		// evicted or never existed: tell only the clicker, mutate nothing
		return &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "⌛ This queue has expired.",
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		}, nil
	}
	if err != nil {
		return nil, err
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{ui.RenderQueueEmbed(q)},
			Components: ui.ButtonsForQueue(q),
		},
	}, nil
}

// userOf extracts the effective user from an interaction (guild or DM).
func userOf(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}
