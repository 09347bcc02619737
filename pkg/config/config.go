package config

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is everything the bot reads from the environment.
type Config struct {
	Token     string `env:"DISCORD_BOT_TOKEN,notEmpty"`
	AppID     string `env:"DISCORD_APP_ID,notEmpty"`
	PublicKey string `env:"DISCORD_PUBLIC_KEY"` // hex Ed25519 key, required by serve
	GuildID   string `env:"DISCORD_GUILD_ID"`   // optional: guild-scoped command registration

	Port int `env:"PORT" envDefault:"3000"`

	// Retention is the queue expiry window. Deployments have run both 1h
	// and 12h; the default stays at the shorter one.
	Retention time.Duration `env:"QUEUE_RETENTION" envDefault:"1h"`

	// DataDir enables the pebble-backed store. Empty keeps queues in memory.
	DataDir string `env:"QUEUE_DATA_DIR"`
}

// Load reads .env (dev convenience) and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if cfg.Retention <= 0 {
		return nil, errors.New("QUEUE_RETENTION must be positive")
	}
	return cfg, nil
}

// Ed25519PublicKey decodes the hex key Discord shows in the developer portal.
func (c *Config) Ed25519PublicKey() (ed25519.PublicKey, error) {
	if c.PublicKey == "" {
		return nil, errors.New("missing DISCORD_PUBLIC_KEY")
	}
	b, err := hex.DecodeString(c.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("DISCORD_PUBLIC_KEY is not hex: %w", err)
	}
	if len(b) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("DISCORD_PUBLIC_KEY must be %d bytes, got %d", ed25519.PublicKeySize, len(b))
	}
	return ed25519.PublicKey(b), nil
}

// Redacted is the startup banner string, with the token masked.
func (c *Config) Redacted() string {
	tok := "[set]"
	if c.Token == "" {
		tok = "[empty]"
	}
	store := "memory"
	if c.DataDir != "" {
		store = "pebble:" + c.DataDir
	}
	return fmt.Sprintf(
		"appID=%s guildID=%s port=%d retention=%s store=%s token=%s",
		c.AppID, c.GuildID, c.Port, c.Retention, store, tok,
	)
}
