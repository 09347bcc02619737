// internal/app/commands.go
package app

import "github.com/bwmarrin/discordgo"

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "queue",
		Description: "Create an RSVP queue for a game role",
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionRole,
				Name:        "role",
				Description: "Role to ping",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "silent",
				Description: "Show the mention without pinging anyone",
			},
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "voice",
				Description: "Voice channel to gather in",
				ChannelTypes: []discordgo.ChannelType{
					discordgo.ChannelTypeGuildVoice,
				},
			},
		},
	},
}

// RegisterCommands bulk-overwrites the command schema. With a guild ID the
// commands are guild-scoped (instant, handy for dev); without one they are
// registered globally.
func RegisterCommands(s *discordgo.Session, appID, guildID string) error {
	_, err := s.ApplicationCommandBulkOverwrite(appID, guildID, commands)
	return err
}
