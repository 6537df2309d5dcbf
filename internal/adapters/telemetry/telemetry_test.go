package telemetry_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/mountbar/internal/adapters/telemetry"
)

type recordingLogger struct {
	mu    sync.Mutex
	debug []map[string]any
}

func (l *recordingLogger) Debug(_ string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fields := map[string]any{}
	for i := 0; i+1 < len(args); i += 2 {
		fields[args[i].(string)] = args[i+1]
	}
	l.debug = append(l.debug, fields)
}
func (l *recordingLogger) Info(string, ...any) {}
func (l *recordingLogger) Warn(string, ...any) {}
func (l *recordingLogger) Error(error)         {}

func TestOTelTracer_RecordsSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracer(tp, "test")

	_, span := tracer.Start(t.Context(), "mount")
	span.SetAttribute("device", "/dev/disk6s1")
	span.SetAttribute("elevated", true)
	span.SetAttribute("ram", uint32(1024))
	span.RecordError(errors.New("boom"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "mount", ended[0].Name())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "boom", ended[0].Status().Description)

	attrs := map[string]any{}
	for _, kv := range ended[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsInterface()
	}
	assert.Equal(t, "/dev/disk6s1", attrs["device"])
	assert.Equal(t, true, attrs["elevated"])
	assert.Equal(t, int64(1024), attrs["ram"])
}

func TestOTelSpan_RecordNilError(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := telemetry.NewOTelTracer(tp, "test").Start(t.Context(), "status")
	span.RecordError(nil)
	span.End()

	require.Len(t, sr.Ended(), 1)
	assert.Equal(t, codes.Unset, sr.Ended()[0].Status().Code)
}

func TestLogBridge_LogsEndedSpans(t *testing.T) {
	log := &recordingLogger{}
	tracer := telemetry.NewTracer(true, log)

	_, span := tracer.Start(t.Context(), "unmount")
	span.SetAttribute("path", "/Volumes/linux")
	span.End()

	_, failed := tracer.Start(t.Context(), "eject")
	failed.RecordError(errors.New("disk busy"))
	failed.End()

	log.mu.Lock()
	defer log.mu.Unlock()
	require.Len(t, log.debug, 2)
	assert.Equal(t, "unmount", log.debug[0]["span"])
	assert.Equal(t, "/Volumes/linux", log.debug[0]["path"])
	assert.NotContains(t, log.debug[0], "error")
	assert.Equal(t, "eject", log.debug[1]["span"])
	assert.Equal(t, "disk busy", log.debug[1]["error"])
}

func TestNewTracer_Disabled(t *testing.T) {
	log := &recordingLogger{}
	tracer := telemetry.NewTracer(false, log)
	require.IsType(t, &telemetry.NoOpTracer{}, tracer)

	ctx := t.Context()
	got, span := tracer.Start(ctx, "status")
	assert.Equal(t, ctx, got)
	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()

	assert.Empty(t, log.debug)
}
