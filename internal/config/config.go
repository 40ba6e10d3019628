// Package config loads runtime configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/arcdex/arcdex/internal/errors"
)

// Server holds settings for the browser front end.
type Server struct {
	Addr            string        `env:"ARCDEX_HTTP_ADDR"        envDefault:":8080"`
	DataDir         string        `env:"ARCDEX_DATA_DIR"         envDefault:"data"`
	StaticDir       string        `env:"ARCDEX_STATIC_DIR"       envDefault:"static"`
	ShutdownTimeout time.Duration `env:"ARCDEX_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Bot holds settings for the chat front end.
type Bot struct {
	Token   string `env:"ARCDEX_DISCORD_TOKEN"`
	GuildID string `env:"ARCDEX_DISCORD_GUILD_ID"`
	Prefix  string `env:"ARCDEX_COMMAND_PREFIX" envDefault:"!arc"`
	DataDir string `env:"ARCDEX_DATA_DIR"       envDefault:"data"`
}

// LoadServer returns server configuration from the environment.
func LoadServer() (*Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the server configuration.
func (c *Server) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Addr == "" {
		vb.RequiredField("addr")
	}
	if c.DataDir == "" {
		vb.RequiredField("dataDir")
	}
	if c.ShutdownTimeout <= 0 {
		vb.InvalidField("shutdownTimeout", "must be positive")
	}
	return vb.Build()
}

// LoadBot returns bot configuration from the environment.
func LoadBot() (*Bot, error) {
	var cfg Bot
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the bot configuration.
func (c *Bot) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Token == "" {
		vb.RequiredField("token")
	}
	if c.Prefix == "" {
		vb.RequiredField("prefix")
	}
	if c.DataDir == "" {
		vb.RequiredField("dataDir")
	}
	return vb.Build()
}
