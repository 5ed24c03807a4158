package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/trace"
)

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// New returns the process logger on stdout. Output is JSON inside a
// Kubernetes pod or when ENV is prod or dev, and plain text otherwise.
func New() *slog.Logger {
	return NewWithWriter(os.Stdout, jsonOutput())
}

// NewWithWriter returns a logger on w. Records carry trace_id and span_id
// whenever the context holds a valid span.
func NewWithWriter(w io.Writer, json bool) *slog.Logger {
	var base slog.Handler
	if json {
		base = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo, AddSource: true})
	} else {
		base = redErrors{next: slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})}
	}
	return slog.New(spanAttrs{next: base})
}

// NewWithServiceContext tags every record with the service identity.
func NewWithServiceContext(serviceName, version string) *slog.Logger {
	return New().With(
		slog.String("service", serviceName),
		slog.String("version", version),
		slog.String("environment", os.Getenv("ENV")),
	)
}

func jsonOutput() bool {
	if _, ok := os.LookupEnv("KUBERNETES_SERVICE_HOST"); ok {
		return true
	}
	switch os.Getenv("ENV") {
	case "prod", "dev":
		return true
	}
	return false
}

// redErrors paints the message of ERROR records for terminals.
type redErrors struct {
	next slog.Handler
}

func (h redErrors) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h redErrors) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		painted := slog.NewRecord(r.Time, r.Level, ansiRed+r.Message+ansiReset, r.PC)
		r.Attrs(func(a slog.Attr) bool {
			painted.AddAttrs(a)
			return true
		})
		r = painted
	}
	return h.next.Handle(ctx, r)
}

func (h redErrors) WithAttrs(attrs []slog.Attr) slog.Handler {
	return redErrors{next: h.next.WithAttrs(attrs)}
}

func (h redErrors) WithGroup(name string) slog.Handler {
	return redErrors{next: h.next.WithGroup(name)}
}

type spanAttrs struct {
	next slog.Handler
}

func (h spanAttrs) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h spanAttrs) Handle(ctx context.Context, r slog.Record) error {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return h.next.Handle(ctx, r)
	}
	r.AddAttrs(
		slog.String("trace_id", sc.TraceID().String()),
		slog.String("span_id", sc.SpanID().String()),
	)
	return h.next.Handle(ctx, r)
}

func (h spanAttrs) WithAttrs(attrs []slog.Attr) slog.Handler {
	return spanAttrs{next: h.next.WithAttrs(attrs)}
}

func (h spanAttrs) WithGroup(name string) slog.Handler {
	return spanAttrs{next: h.next.WithGroup(name)}
}
