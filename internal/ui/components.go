// internal/ui/components.go
// Build the Accept/Decline/Tentative button row for a queue message.

package ui

import (
	"github.com/bwmarrin/discordgo"

	"github.com/jvalero/roleq/internal/queue"
)

// ButtonsForQueue returns the single action row attached to a queue
// message. Each button's custom_id is the serialized token the component
// handler parses back on click.
func ButtonsForQueue(q *queue.Queue) []discordgo.MessageComponent {
	token := queue.CustomID{
		QueueID:        q.ID,
		RoleID:         q.RoleID,
		Colour:         q.RoleColour,
		VoiceChannelID: q.VoiceChannelID,
	}

	accept, decline, tentative := token, token, token
	accept.Action = queue.ActionAccept
	decline.Action = queue.ActionDecline
	tentative.Action = queue.ActionTentative

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Accept",
					Style:    discordgo.SuccessButton,
					CustomID: accept.String(),
					Emoji:    &discordgo.ComponentEmoji{Name: "✅"},
				},
				discordgo.Button{
					Label:    "Decline",
					Style:    discordgo.DangerButton,
					CustomID: decline.String(),
					Emoji:    &discordgo.ComponentEmoji{Name: "❌"},
				},
				discordgo.Button{
					Label:    "Tentative",
					Style:    discordgo.SecondaryButton,
					CustomID: tentative.String(),
					Emoji:    &discordgo.ComponentEmoji{Name: "❔"},
				},
			},
		},
	}
}
