package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMetricsOffByDefault(t *testing.T) {
	t.Setenv(MetricsEnvKey, "")
	opts, shutdown := initMetrics(discardLogger(), io.Discard)
	assert.Nil(t, opts)
	assert.Nil(t, shutdown)
	// Draining a never-started reader is a no-op, not a crash. Early exits
	// before metrics come up rely on that.
	assert.NoError(t, drainMetrics(shutdown))
}

func TestInitMetricsConsole(t *testing.T) {
	t.Setenv(MetricsEnvKey, "console")
	opts, shutdown := initMetrics(discardLogger(), io.Discard)
	require.NotNil(t, shutdown)
	assert.Len(t, opts, 1)
	assert.NoError(t, drainMetrics(shutdown))
}
