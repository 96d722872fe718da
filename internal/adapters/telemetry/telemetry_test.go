package telemetry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/tscache/internal/adapters/telemetry"
	"go.trai.ch/tscache/internal/core/ports"
	"go.trai.ch/tscache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_Attributes(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracerWithProvider(tp, "test")

	_, span := tracer.Start(context.Background(), "compile")
	span.SetAttribute(ports.AttrPath, "/app/a.ts")
	span.SetAttribute(ports.AttrCached, true)
	span.SetAttribute("count", 3)
	span.SetAttribute("size", int64(42))
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("files", []string{"a.ts", "b.ts"})
	span.SetAttribute("other", struct{ X int }{X: 1})
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "compile", ended[0].Name())

	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range ended[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "/app/a.ts", attrs[ports.AttrPath].AsString())
	assert.True(t, attrs[ports.AttrCached].AsBool())
	assert.Equal(t, int64(3), attrs["count"].AsInt64())
	assert.Equal(t, int64(42), attrs["size"].AsInt64())
	assert.InDelta(t, 0.5, attrs["ratio"].AsFloat64(), 0.0001)
	assert.Equal(t, []string{"a.ts", "b.ts"}, attrs["files"].AsStringSlice())
	assert.Equal(t, "{1}", attrs["other"].AsString())
}

func TestOTelTracer_RecordError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracerWithProvider(tp, "test")

	_, span := tracer.Start(context.Background(), "compile")
	span.RecordError(errors.New("boom"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "boom", ended[0].Status().Description)
}

func TestNoOpTracer(t *testing.T) {
	ctx := context.Background()
	gotCtx, span := telemetry.NewNoOpTracer().Start(ctx, "noop")
	assert.Equal(t, ctx, gotCtx)

	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}

func TestLogBridge_OnEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogBridge(logger)))
	tracer := telemetry.NewOTelTracerWithProvider(tp, "test")

	logger.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "compile /app/a.ts (cached) in ")
	}).Times(1)

	_, span := tracer.Start(context.Background(), "compile")
	span.SetAttribute(ports.AttrPath, "/app/a.ts")
	span.SetAttribute(ports.AttrCached, true)
	span.End()
}

func TestLogBridge_OnEndWithError(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogBridge(logger)))
	tracer := telemetry.NewOTelTracerWithProvider(tp, "test")

	logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "compile /app/bad.ts")
		assert.Contains(t, msg, "failed")
	}).Times(1)

	_, span := tracer.Start(context.Background(), "compile")
	span.SetAttribute(ports.AttrPath, "/app/bad.ts")
	span.RecordError(errors.New("transpile failed"))
	span.End()
}

func TestLogBridge_NilLogger(_ *testing.T) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogBridge(nil)))
	_, span := tp.Tracer("test").Start(context.Background(), "compile")
	span.End()
}

func TestFormatSpan(t *testing.T) {
	tests := []struct {
		name  string
		attrs []attribute.KeyValue
		want  string
	}{
		{
			name: "bare",
			want: "run in 1.5ms",
		},
		{
			name: "compiled with project",
			attrs: []attribute.KeyValue{
				attribute.String(ports.AttrProject, "web"),
				attribute.String(ports.AttrPath, "/app/a.ts"),
				attribute.Bool(ports.AttrCached, false),
			},
			want: "run [web] /app/a.ts (compiled) in 1.5ms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, telemetry.FormatSpan("run", 1500*time.Microsecond, tt.attrs))
		})
	}
}
