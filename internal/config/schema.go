// Package config defines the configuration schema for discordmcp.
//
// JSON keys use camelCase; the same keys are accepted in YAML files.
package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/crystaldolphin/discordmcp/internal/config/platform"
	"github.com/crystaldolphin/discordmcp/internal/config/server"
	"github.com/crystaldolphin/discordmcp/internal/config/telemetry"
)

// ErrMissingToken is returned by Validate when no bot token is configured.
var ErrMissingToken = errors.New("DISCORD_TOKEN environment variable is required")

// Config is the root configuration object.
type Config struct {
	Discord   platform.DiscordConfig    `json:"discord" yaml:"discord"`
	Server    server.ServerConfig       `json:"server" yaml:"server"`
	Telemetry telemetry.TelemetryConfig `json:"telemetry" yaml:"telemetry"`
}

// DefaultConfig returns a Config populated with default values.
func DefaultConfig() Config {
	return Config{
		Discord:   platform.DefaultDiscordConfig(),
		Server:    server.DefaultServerConfig(),
		Telemetry: telemetry.DefaultTelemetryConfig(),
	}
}

// Validate reports configuration that makes the server unusable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Discord.Token) == "" {
		return ErrMissingToken
	}
	return nil
}

// LogLevel maps Server.LogLevel onto a slog level. Unknown values mean info.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Server.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// TokenHint returns a redacted form of the bot token for display.
func (c *Config) TokenHint() string {
	t := c.Discord.Token
	switch {
	case t == "":
		return "(not set)"
	case len(t) <= 8:
		return "****"
	default:
		return t[:4] + "…" + t[len(t)-4:]
	}
}
