package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/crystaldolphin/discordmcp/internal/dependency"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Log in to Discord and serve MCP tools on stdio",
	RunE:  runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Graceful shutdown context.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := dependency.New(ctx, cfg)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	// A failed login is reported to every tool call through the readiness
	// gate, so it must not stop the MCP loop.
	g.Go(func() error {
		err := container.DiscordClient().Start(gctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("discord: session ended", "err", err)
		}
		return nil
	})
	g.Go(func() error {
		// The client closing stdin ends the process too.
		defer stop()
		err := container.MCPServer().ServeStdio(gctx, os.Stdin, os.Stdout)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	waitErr := g.Wait()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := container.Close(shutdownCtx); err != nil {
		slog.Warn("serve: shutdown", "err", err)
	}
	if waitErr != nil {
		return waitErr
	}
	slog.Info("serve: shutdown complete")
	return nil
}
