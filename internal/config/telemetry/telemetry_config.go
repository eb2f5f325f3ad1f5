package telemetry

// TelemetryConfig controls OpenTelemetry trace export. The OTLP endpoint
// itself is read from the standard OTEL_EXPORTER_OTLP_* variables.
type TelemetryConfig struct {
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	ServiceName string `json:"serviceName" yaml:"serviceName"`
}

func DefaultTelemetryConfig() TelemetryConfig {
	return TelemetryConfig{ServiceName: "discord-mcp"}
}
