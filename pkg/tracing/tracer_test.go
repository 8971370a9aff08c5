package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestSampler(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), sampler(0).Description())
	assert.Equal(t, sdktrace.AlwaysSample().Description(), sampler(1).Description())
	assert.Contains(t, sampler(0.25).Description(), "TraceIDRatioBased")
}

func TestShutdownIgnoresForeignProviders(t *testing.T) {
	assert.NoError(t, Shutdown(context.Background(), noop.NewTracerProvider()))
	assert.NoError(t, Shutdown(context.Background(), sdktrace.NewTracerProvider()))
}
