package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arcdex/arcdex/internal/bot"
	"github.com/arcdex/arcdex/internal/config"
	"github.com/arcdex/arcdex/internal/dataset"
	orchestrator "github.com/arcdex/arcdex/internal/orchestrators/codex"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Start the Discord bot",
	Long:  `Start the Discord bot serving slash commands and prefix commands over the reference dataset.`,
	RunE:  runBot,
}

func runBot(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	cfg, err := config.LoadBot()
	if err != nil {
		return err
	}

	store, err := dataset.Load(cfg.DataDir)
	if err != nil {
		return err
	}

	service, err := orchestrator.New(&orchestrator.Config{Store: store})
	if err != nil {
		return err
	}

	b, err := bot.New(&bot.Config{
		Service: service,
		Token:   cfg.Token,
		GuildID: cfg.GuildID,
		Prefix:  cfg.Prefix,
	})
	if err != nil {
		return err
	}

	if err := b.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()

	slog.Info("shutting down bot")
	return b.Stop()
}
