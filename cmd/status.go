package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crystaldolphin/discordmcp/internal/tools"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the resolved configuration",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	cfgPath := resolvedConfigPath()

	fmt.Fprintf(out, "discord-mcp %s\n\n", version)

	_, statErr := os.Stat(cfgPath)
	cfgMark := "✗"
	if statErr == nil {
		cfgMark = "✓"
	}
	fmt.Fprintf(out, "Config:    %s %s\n", cfgPath, cfgMark)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(out, "  (could not load config: %v)\n", err)
		return nil
	}

	tokenMark := "✓"
	if cfg.Validate() != nil {
		tokenMark = "✗"
	}
	guild := cfg.Discord.GuildID
	if guild == "" {
		guild = "(not set)"
	}
	telemetry := "off"
	if cfg.Telemetry.Enabled {
		telemetry = "on (" + cfg.Telemetry.ServiceName + ")"
	}

	fmt.Fprintf(out, "Token:     %s %s\n", cfg.TokenHint(), tokenMark)
	fmt.Fprintf(out, "Guild:     %s\n", guild)
	fmt.Fprintf(out, "Gateway:   %s\n", cfg.Discord.GatewayURL)
	fmt.Fprintf(out, "API:       %s\n", cfg.Discord.APIBase)
	fmt.Fprintf(out, "Log level: %s\n", cfg.Server.LogLevel)
	fmt.Fprintf(out, "Telemetry: %s\n", telemetry)
	fmt.Fprintf(out, "Tools:     %d\n", tools.Catalog().Len())
	return nil
}
