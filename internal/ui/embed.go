package ui

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/jvalero/roleq/internal/queue"
)

const noOne = "No one"

// RenderQueueEmbed projects a queue into its message embed. Both the create
// response and every button-click update go through here, so the message
// never changes shape between the two paths.
func RenderQueueEmbed(q *queue.Queue) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Game queue",
		Description: queueDescription(q),
		Color:       q.RoleColour,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Accept ✅", Value: mentionList(q.Accept), Inline: true},
			{Name: "Decline ❌", Value: mentionList(q.Decline), Inline: true},
			{Name: "Tentative ❔", Value: mentionList(q.Tentative), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Click a button to respond",
		},
	}
}

func queueDescription(q *queue.Queue) string {
	if q.VoiceChannelID != "" {
		return "<@&" + q.RoleID + "> → <#" + q.VoiceChannelID + ">"
	}
	return "<@&" + q.RoleID + ">"
}

// mentionList renders one mention per line in click order.
func mentionList(ids []string) string {
	if len(ids) == 0 {
		return noOne
	}
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("<@" + id + ">")
	}
	return b.String()
}
