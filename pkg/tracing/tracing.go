// Package tracing times operations and reports them through a logger.
package tracing

import (
	"context"
	"log/slog"
	"slices"
	"time"
)

var (
	_ Tracer = LoggingTracer{}
	_ Span   = (*loggingSpan)(nil)
)

// Tracer starts spans.
type Tracer interface {
	StartSpan(operationName string) Span
}

// Span is one timed operation.
type Span interface {
	SetAttr(attr slog.Attr)
	Finish() time.Duration
}

// LoggingTracer logs each finished span at debug level.
type LoggingTracer struct {
	logger *slog.Logger
}

func NewLoggingTracer(logger *slog.Logger) *LoggingTracer {
	return &LoggingTracer{
		logger: logger,
	}
}

//nolint:ireturn
func (l LoggingTracer) StartSpan(operationName string) Span {
	return &loggingSpan{
		logger:        l.logger,
		operationName: operationName,
		start:         time.Now(),
	}
}

type loggingSpan struct {
	start         time.Time
	logger        *slog.Logger
	operationName string
	attrs         []slog.Attr
}

func (s *loggingSpan) SetAttr(attr slog.Attr) {
	s.attrs = append(s.attrs, attr)
}

// Finish logs the span and returns its duration.
func (s *loggingSpan) Finish() time.Duration {
	elapsed := time.Since(s.start)

	attrs := slices.Concat(s.attrs, []slog.Attr{
		slog.String("operation_name", s.operationName),
		slog.Float64("time_ms", elapsed.Seconds()*1e3),
	})
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "trace", attrs...)

	return elapsed
}
