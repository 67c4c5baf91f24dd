package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitWithoutEndpoint(t *testing.T) {
	ctx := context.Background()
	shutdown, err := Init(ctx, "teemarket-test", "")
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(ctx, "noop")
	assert.False(t, span.SpanContext().IsSampled())
	span.End()

	require.NoError(t, shutdown(ctx))
}
