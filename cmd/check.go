package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/crystaldolphin/discordmcp/internal/discord"
)

var checkTimeout time.Duration

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Log in once and verify the bot can read the configured guild",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().DurationVarP(&checkTimeout, "timeout", "t", 30*time.Second, "How long to wait for login")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	guild := cfg.Discord.GuildID
	if guild == "" {
		guild = "not set"
	}
	fmt.Fprintln(out, "Testing Discord connection...")
	fmt.Fprintf(out, "Guild ID: %s\n", guild)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := discord.NewClient(cfg.Discord)
	go func() {
		if err := client.Start(ctx); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, discord.ErrClosed) {
			fmt.Fprintf(os.Stderr, "discord session: %v\n", err)
		}
	}()
	defer client.Close()

	waitCtx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	user, err := client.WaitReady(waitCtx)
	if err != nil {
		return fmt.Errorf("✗ login failed: %w", err)
	}
	fmt.Fprintf(out, "Logged in as %s\n", user.Tag())

	fmt.Fprintln(out, "\n1. Getting server info...")
	info, err := client.ServerInfo(ctx, "")
	if err != nil {
		return fmt.Errorf("✗ test failed: %w", err)
	}
	fmt.Fprintf(out, "   Server: %s\n", info.Name)
	fmt.Fprintf(out, "   Members: %d\n", info.MemberCount)
	fmt.Fprintf(out, "   Owner: %s\n", info.OwnerID)

	fmt.Fprintln(out, "\n2. Listing channels...")
	channels, err := client.ListChannels(ctx, "")
	if err != nil {
		return fmt.Errorf("✗ test failed: %w", err)
	}
	fmt.Fprintf(out, "   Found %d channels:\n", len(channels))
	for _, ch := range channels[:min(5, len(channels))] {
		fmt.Fprintf(out, "   - #%s (%d)\n", ch.Name, ch.Type)
	}
	if len(channels) > 5 {
		fmt.Fprintf(out, "   ... and %d more\n", len(channels)-5)
	}

	fmt.Fprintln(out, "\n✓ All checks passed! Discord connection is working.")
	return nil
}
