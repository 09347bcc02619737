// Command roleq runs the role-ping RSVP queue bot.
//
// this binary:
//  1. loads config from environment variables (.env during dev)
//  2. `roleq serve` answers Discord's signed interaction webhooks
//  3. `roleq register` upserts the slash command schema once
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"

	disc "github.com/jvalero/roleq/internal/adapters/discord"
	"github.com/jvalero/roleq/internal/app"
	"github.com/jvalero/roleq/internal/queue"
	"github.com/jvalero/roleq/internal/storage/pebblestore"
	"github.com/jvalero/roleq/pkg/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "roleq",
		Short: "Role-ping RSVP queue bot",
		Long:  "roleq posts a role ping with Accept/Decline/Tentative buttons and tracks who clicked what.",
	}
	rootCmd.AddCommand(serveCmd(), registerCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactions webhook",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			key, err := cfg.Ed25519PublicKey()
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}

			// the session is REST-only, no gateway connection is opened
			sess, err := discordgo.New("Bot " + cfg.Token)
			if err != nil {
				return fmt.Errorf("discord session error: %w", err)
			}

			var store queue.Store = queue.NewMemoryStore()
			if cfg.DataDir != "" {
				ps, err := pebblestore.Open(cfg.DataDir)
				if err != nil {
					return fmt.Errorf("open store: %w", err)
				}
				defer ps.Close()
				store = ps
			}

			colours := disc.NewRoleColours(sess)
			router := app.NewRouter(queue.NewManager(store), colours.Lookup, cfg.Retention)
			srv := app.NewServer(router, key)

			ctx, stop := signal.NotifyContext(context.Background(),
				syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
			defer stop()

			log.Printf("🤖 bot ready - %s", cfg.Redacted())
			return srv.ListenAndServe(ctx, fmt.Sprintf(":%d", cfg.Port))
		},
	}
}

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Register (bulk overwrite) the slash commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			sess, err := discordgo.New("Bot " + cfg.Token)
			if err != nil {
				return fmt.Errorf("discord session error: %w", err)
			}
			if err := app.RegisterCommands(sess, cfg.AppID, cfg.GuildID); err != nil {
				return fmt.Errorf("register commands: %w", err)
			}
			log.Printf("commands registered (appID=%s guildID=%q)", cfg.AppID, cfg.GuildID)
			return nil
		},
	}
}
