// Package cmd implements the discord-mcp CLI using cobra.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/crystaldolphin/discordmcp/internal/config"
)

const version = "1.0.0"

var configPath string

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "discord-mcp",
	Short: "Discord tools for MCP clients",
	Long:  "discord-mcp exposes a Discord bot's server, channel, message and webhook operations as MCP tools over stdio.",
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default $DISCORD_MCP_CONFIG or ~/.discord-mcp/config.json)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(statusCmd)
}

func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.ConfigPath()
}

// loadConfig reads the config and installs the process logger. Logs always
// go to stderr; stdout belongs to the MCP stream.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(resolvedConfigPath())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()})))
	return cfg, nil
}
