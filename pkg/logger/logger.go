package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

// Logger is disabled until Init is called.
var Logger = zerolog.Nop()

// Config controls how the global logger is built
type Config struct {
	Service     string
	Environment string
	Level       string
	// Output defaults to stdout
	Output io.Writer
}

type requestIDKey struct{}

// Init initializes the global logger. Development environments get
// console output, everything else writes JSON.
func Init(cfg Config) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if cfg.Environment == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	Logger = zerolog.New(out).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("service", cfg.Service).
		Str("env", cfg.Environment).
		Logger()
	log.Logger = Logger

	SetLevel(cfg.Level)
}

// SetLevel sets the global log level. Unknown levels fall back to info.
func SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// ContextWithRequestID stores the request id picked by the HTTP layer
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the stored request id, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithContext returns a logger carrying the request id and the active
// span's trace and span ids.
func WithContext(ctx context.Context) *zerolog.Logger {
	lc := Logger.With()
	if id := RequestIDFromContext(ctx); id != "" {
		lc = lc.Str("request_id", id)
	}
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		lc = lc.Str("trace_id", sc.TraceID().String()).
			Str("span_id", sc.SpanID().String())
	}
	l := lc.Logger()
	return &l
}

// Info logs at info level with context
func Info(ctx context.Context) *zerolog.Event {
	return WithContext(ctx).Info()
}

// Error logs at error level with context
func Error(ctx context.Context) *zerolog.Event {
	return WithContext(ctx).Error()
}

// Debug logs at debug level with context
func Debug(ctx context.Context) *zerolog.Event {
	return WithContext(ctx).Debug()
}

// Warn logs at warn level with context
func Warn(ctx context.Context) *zerolog.Event {
	return WithContext(ctx).Warn()
}
