package logging

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_WritesKeyValueFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core)).With("component", "nhlstats")

	logger.Warn("request failed", "status", 502, "error", errors.New("boom"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got=%d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["component"] != "nhlstats" {
		t.Fatalf("unexpected component field: %v", fields["component"])
	}
	if fields["status"] != int64(502) {
		t.Fatalf("unexpected status field: %v (%T)", fields["status"], fields["status"])
	}
	if fields["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", fields["error"])
	}
}

func TestLogger_ContextAddsTraceIDs(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "games fetched", "count", 2)
	logger.InfoContext(context.Background(), "games fetched", "count", 0)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected two entries, got=%d", len(entries))
	}
	traced := entries[0].ContextMap()
	if traced["trace_id"] != traceID.String() {
		t.Fatalf("unexpected trace_id: %v", traced["trace_id"])
	}
	if traced["span_id"] != spanID.String() {
		t.Fatalf("unexpected span_id: %v", traced["span_id"])
	}
	if _, ok := entries[1].ContextMap()["trace_id"]; ok {
		t.Fatalf("expected no trace_id without a span")
	}
}

func TestLogger_OddArgsAndNilReceiver(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))
	logger.Debug("dangling", "key")

	fields := logs.All()[0].ContextMap()
	if v, ok := fields["key"]; !ok || v != nil {
		t.Fatalf("expected nil value for dangling key, got=%v ok=%v", v, ok)
	}

	var nilLogger *Logger
	nilLogger.Info("must not panic")
	if nilLogger.With("a", 1) == nil {
		t.Fatalf("expected non-nil logger from nil receiver")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"fatal":   zapcore.FatalLevel,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for input, want := range cases {
		if got := ParseLevel(input); got != want {
			t.Fatalf("ParseLevel(%q)=%s want=%s", input, got, want)
		}
	}
}
