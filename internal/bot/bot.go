// Package bot exposes the codex service on Discord: a /arc slash
// command with autocomplete, message components for navigation, and a
// prefix-command fallback for plain chat messages.
package bot

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/arcdex/arcdex/internal/errors"
	"github.com/arcdex/arcdex/internal/services/codex"
)

// Config holds the dependencies for the Discord bot
type Config struct {
	Service codex.Service
	Token   string

	// GuildID scopes command registration to one guild for instant
	// availability. Empty registers commands globally.
	GuildID string

	// Prefix is the chat-message command prefix, e.g. "!arc".
	Prefix string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.Token == "" {
		vb.RequiredField("Token")
	}
	if c.Prefix == "" {
		vb.RequiredField("Prefix")
	}

	return vb.Build()
}

// Bot owns the Discord session and dispatches interactions to the
// codex service
type Bot struct {
	service codex.Service
	session *discordgo.Session
	guildID string
	prefix  string
}

// New creates a new bot with an unopened session
func New(cfg *Config) (*Bot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "create discord session")
	}
	session.Identify.Intents = discordgo.IntentGuildMessages | discordgo.IntentMessageContent

	b := &Bot{
		service: cfg.Service,
		session: session,
		guildID: cfg.GuildID,
		prefix:  cfg.Prefix,
	}

	session.AddHandler(b.onReady)
	session.AddHandler(b.onInteraction)
	session.AddHandler(b.onMessage)

	return b, nil
}

// Start opens the gateway connection and registers the slash commands.
// It returns once the bot is serving; Stop shuts it down.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "open discord session")
	}

	appID := b.session.State.User.ID
	if _, err := b.session.ApplicationCommandBulkOverwrite(appID, b.guildID, commandDefinitions()); err != nil {
		_ = b.session.Close()
		return errors.WrapWithCode(err, errors.CodeUnavailable, "register commands")
	}

	slog.InfoContext(ctx, "bot started",
		"user", b.session.State.User.Username,
		"guild_id", b.guildID,
		"prefix", b.prefix,
	)
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() error {
	if err := b.session.Close(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "close discord session")
	}
	return nil
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	slog.Info("discord gateway ready", "user", r.User.Username)
}

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.handleInteraction(s, i)
}

func (b *Bot) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}
	b.handleMessage(s, m)
}
