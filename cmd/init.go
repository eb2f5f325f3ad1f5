package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crystaldolphin/discordmcp/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	Long:  "init creates the config file with defaults. An existing file is rewritten with its values kept and any new settings filled in.",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	cfgPath := resolvedConfigPath()

	if _, err := os.Stat(cfgPath); err == nil {
		existing, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if err := config.Save(existing, cfgPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ Config refreshed at %s\n", cfgPath)
	} else {
		cfg := config.DefaultConfig()
		if err := config.Save(&cfg, cfgPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ Created config at %s\n", cfgPath)
	}

	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  1. Set discord.token in %s (or export DISCORD_TOKEN)\n", cfgPath)
	fmt.Fprintln(out, "  2. Check the connection: discord-mcp check")
	return nil
}
