package diag_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/plasmakit/specdeform/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLogger_ComponentName verifies every record carries the component
// name the logger was built with.
func TestLogger_ComponentName(t *testing.T) {
	var buf bytes.Buffer
	log := diag.New("coordinate", diag.WithWriter(&buf))

	log.Info("constructed")

	require.Contains(t, buf.String(), "component=coordinate")
	assert.Contains(t, buf.String(), "constructed")
	assert.Equal(t, "coordinate", log.Name())
}

// TestLogger_LevelFiltering verifies records below the configured level
// are dropped.
func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := diag.New("basis", diag.WithWriter(&buf))

	log.Debug("invisible at default level")
	assert.Empty(t, buf.String(), "Debug must be filtered at the Info default")

	log.Warn("endpoint evaluation is singular")
	assert.Contains(t, buf.String(), "endpoint evaluation is singular")

	buf.Reset()
	verbose := diag.New("basis", diag.WithWriter(&buf), diag.WithLevel(slog.LevelDebug))
	verbose.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

// TestLogger_CriticalLevel verifies Critical renders with its own label
// rather than an offset error level.
func TestLogger_CriticalLevel(t *testing.T) {
	var buf bytes.Buffer
	log := diag.New("screen", diag.WithWriter(&buf))

	log.Critical("invalid shape of the input arrays")

	assert.Contains(t, buf.String(), "level=CRITICAL")
	assert.Contains(t, buf.String(), "invalid shape of the input arrays")
}

// TestLogger_ShowParams verifies the delimited parameter block and that
// a trailing unpaired name is ignored.
func TestLogger_ShowParams(t *testing.T) {
	var buf bytes.Buffer
	log := diag.New("run", diag.WithWriter(&buf))

	log.ShowParams("alpha", 0.3, "beta_0", -0.2, "dangling")

	out := buf.String()
	assert.Contains(t, out, "----- Parameters -----")
	assert.Contains(t, out, "alpha = 0.3")
	assert.Contains(t, out, "beta_0 = -0.2")
	assert.NotContains(t, out, "dangling =")
	assert.Contains(t, out, "----------------------")
}
