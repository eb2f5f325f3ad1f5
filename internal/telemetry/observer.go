// Package telemetry records tool dispatches into OpenTelemetry.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/crystaldolphin/discordmcp/internal/dispatch"
)

// CallObserver counts tool calls and records their latency and a span.
type CallObserver struct {
	tracer trace.Tracer

	calls   metric.Int64Counter
	failed  metric.Int64Counter
	latency metric.Float64Histogram
}

// NewCallObserver creates an observer bound to the provided meter/tracer.
// tracer may be nil.
func NewCallObserver(meter metric.Meter, tracer trace.Tracer) (*CallObserver, error) {
	calls, err := meter.Int64Counter(
		"discordmcp.tool.calls",
		metric.WithDescription("Number of tool calls dispatched"),
	)
	if err != nil {
		return nil, err
	}
	failed, err := meter.Int64Counter(
		"discordmcp.tool.failures",
		metric.WithDescription("Number of tool calls that returned an error"),
	)
	if err != nil {
		return nil, err
	}
	latency, err := meter.Float64Histogram(
		"discordmcp.tool.latency",
		metric.WithDescription("Tool call latency in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	return &CallObserver{tracer: tracer, calls: calls, failed: failed, latency: latency}, nil
}

// ObserveCall records one dispatch.
func (o *CallObserver) ObserveCall(ctx context.Context, obs dispatch.Observation) {
	if o == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("tool_name", obs.Tool),
		attribute.Bool("success", obs.Success),
	}
	options := metric.WithAttributes(attrs...)
	o.calls.Add(ctx, 1, options)
	o.latency.Record(ctx, obs.Duration.Seconds(), options)
	if !obs.Success {
		o.failed.Add(ctx, 1, metric.WithAttributes(attribute.String("tool_name", obs.Tool)))
	}

	if o.tracer == nil {
		return
	}
	_, span := o.tracer.Start(ctx, "tool.call",
		trace.WithAttributes(append(attrs, attribute.String("call_id", obs.CallID))...),
		trace.WithTimestamp(obs.Start),
	)
	if obs.Success {
		span.SetStatus(codes.Ok, "")
	} else {
		span.SetStatus(codes.Error, obs.Error)
	}
	span.End(trace.WithTimestamp(obs.Start.Add(obs.Duration)))
}

var _ dispatch.Observer = (*CallObserver)(nil)
