package server

// ServerConfig holds the identity the MCP server reports to clients
// and the log level for the process.
type ServerConfig struct {
	Name     string `json:"name" yaml:"name"`
	Version  string `json:"version" yaml:"version"`
	LogLevel string `json:"logLevel" yaml:"logLevel"`
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{Name: "discord-mcp", Version: "1.0.0", LogLevel: "info"}
}
