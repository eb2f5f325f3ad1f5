package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	telemetrycfg "github.com/crystaldolphin/discordmcp/internal/config/telemetry"
)

const instrumentationName = "github.com/crystaldolphin/discordmcp"

// Provider owns the process's meter and tracer providers. Metrics are always
// kept in-process; spans are exported over OTLP/HTTP only when enabled, with
// the endpoint taken from the standard OTEL_EXPORTER_OTLP_* variables.
type Provider struct {
	reader *sdkmetric.ManualReader
	meters *sdkmetric.MeterProvider
	tracer trace.TracerProvider
	spans  *sdktrace.TracerProvider
}

func NewProvider(ctx context.Context, cfg telemetrycfg.TelemetryConfig) (*Provider, error) {
	res := resource.NewSchemaless(attribute.String("service.name", cfg.ServiceName))
	reader := sdkmetric.NewManualReader()
	p := &Provider{
		reader: reader,
		meters: sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader), sdkmetric.WithResource(res)),
		tracer: noop.NewTracerProvider(),
	}
	if !cfg.Enabled {
		return p, nil
	}

	exp, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("telemetry: create OTLP exporter: %w", err)
	}
	p.spans = sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp), sdktrace.WithResource(res))
	p.tracer = p.spans
	otel.SetTracerProvider(p.spans)
	slog.Info("telemetry: exporting traces", "service", cfg.ServiceName)
	return p, nil
}

// Observer returns a dispatch observer backed by this provider.
func (p *Provider) Observer() (*CallObserver, error) {
	return NewCallObserver(p.meters.Meter(instrumentationName), p.tracer.Tracer(instrumentationName))
}

// CallTotals returns the number of calls per tool recorded so far.
func (p *Provider) CallTotals(ctx context.Context) (map[string]int64, error) {
	var rm metricdata.ResourceMetrics
	if err := p.reader.Collect(ctx, &rm); err != nil {
		return nil, err
	}
	totals := map[string]int64{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != "discordmcp.tool.calls" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				tool, _ := dp.Attributes.Value("tool_name")
				totals[tool.AsString()] += dp.Value
			}
		}
	}
	return totals, nil
}

// Shutdown logs the call totals and flushes exporters.
func (p *Provider) Shutdown(ctx context.Context) error {
	if totals, err := p.CallTotals(ctx); err == nil {
		for tool, n := range totals {
			slog.Info("telemetry: tool calls", "tool", tool, "count", n)
		}
	}
	var errs []error
	if p.spans != nil {
		errs = append(errs, p.spans.Shutdown(ctx))
	}
	errs = append(errs, p.meters.Shutdown(ctx))
	return errors.Join(errs...)
}
