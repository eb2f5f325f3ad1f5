package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvToken      = "DISCORD_TOKEN"
	EnvGuildID    = "DISCORD_GUILD_ID"
	EnvLogLevel   = "DISCORD_MCP_LOG_LEVEL"
	EnvConfigPath = "DISCORD_MCP_CONFIG"
)

// ConfigPath returns the configuration file path: $DISCORD_MCP_CONFIG when
// set, otherwise ~/.discord-mcp/config.json.
func ConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".discord-mcp/config.json"
	}
	return filepath.Join(home, ".discord-mcp", "config.json")
}

// Load reads and parses the config file at path, then applies environment
// overrides. If path is empty, ConfigPath() is used. A missing file is not an
// error: defaults plus environment are returned. Files ending in .yaml or .yml
// are decoded as YAML, everything else as JSON.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(path, data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		slog.Debug("config: file not found, using defaults", "path", path)
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(&cfg)
	return &cfg, nil
}

// Save writes cfg to path. The encoding follows the file extension like Load.
// If path is empty, ConfigPath() is used.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = ConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	// The file carries the bot token.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func decode(path string, data []byte, cfg *Config) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, cfg)
	}
	return json.Unmarshal(data, cfg)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvToken); v != "" {
		cfg.Discord.Token = v
	}
	if v := os.Getenv(EnvGuildID); v != "" {
		cfg.Discord.GuildID = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Server.LogLevel = v
	}
}
