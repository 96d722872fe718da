package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/tscache/internal/core/ports"
)

// LogBridge implements sdktrace.SpanProcessor to report finished spans
// through the logger.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// OnStart does nothing.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, its duration and its tscache attributes.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	msg := FormatSpan(s.Name(), s.EndTime().Sub(s.StartTime()), s.Attributes())
	if s.Status().Code == codes.Error {
		b.logger.Warn(msg + " failed")
		return
	}
	b.logger.Info(msg)
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}

// FormatSpan renders a finished span as one log line, e.g.
// "compile /app/src/a.ts (cached) in 1.2ms".
func FormatSpan(name string, d time.Duration, attrs []attribute.KeyValue) string {
	var sb strings.Builder
	sb.WriteString(name)

	var cached, hasCached bool
	for _, kv := range attrs {
		switch string(kv.Key) {
		case ports.AttrPath:
			sb.WriteString(" ")
			sb.WriteString(kv.Value.AsString())
		case ports.AttrProject:
			fmt.Fprintf(&sb, " [%s]", kv.Value.AsString())
		case ports.AttrCached:
			hasCached = true
			cached = kv.Value.AsBool()
		}
	}

	if hasCached {
		if cached {
			sb.WriteString(" (cached)")
		} else {
			sb.WriteString(" (compiled)")
		}
	}

	fmt.Fprintf(&sb, " in %s", d.Round(time.Microsecond))
	return sb.String()
}

// Install registers a global tracer provider feeding processors and returns
// its shutdown function.
func Install(processors ...sdktrace.SpanProcessor) func(context.Context) error {
	opts := make([]sdktrace.TracerProviderOption, 0, len(processors))
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
