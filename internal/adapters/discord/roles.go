// internal/adapters/discord/roles.go
package discord

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

// RoleColours resolves a role's display colour over the Discord REST API.
// Lookups are bounded by a short client timeout and fall back to 0 on any
// failure: the interaction deadline matters more than the embed colour.
type RoleColours struct {
	sess *discordgo.Session

	mu    sync.Mutex
	cache map[string]int // guildID/roleID -> colour
}

// NewRoleColours wraps an authenticated session. The session's client
// timeout is clamped so a slow Discord API can't eat the interaction
// response deadline.
func NewRoleColours(sess *discordgo.Session) *RoleColours {
	if sess.Client.Timeout == 0 || sess.Client.Timeout > 2*time.Second {
		sess.Client.Timeout = 2 * time.Second
	}
	return &RoleColours{
		sess:  sess,
		cache: make(map[string]int),
	}
}

// Lookup returns the role colour, or 0 when the role is unknown or the API
// call fails. It never returns an error.
func (r *RoleColours) Lookup(ctx context.Context, guildID, roleID string) int {
	key := guildID + "/" + roleID

	r.mu.Lock()
	if c, ok := r.cache[key]; ok {
		r.mu.Unlock()
		return c
	}
	r.mu.Unlock()

	roles, err := r.sess.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		log.Printf("role colour lookup failed for guild %s: %v", guildID, err)
		return 0
	}
	for _, role := range roles {
		if role.ID == roleID {
			r.mu.Lock()
			r.cache[key] = role.Color
			r.mu.Unlock()
			return role.Color
		}
	}
	return 0
}
