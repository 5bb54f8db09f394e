package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitTracerDisabledIsNoop(t *testing.T) {
	shutdown, err := InitTracer(false, "colleague-student-api", zap.NewNop())
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitTracerEnabled(t *testing.T) {
	shutdown, err := InitTracer(true, "colleague-student-api", zap.NewNop())
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
