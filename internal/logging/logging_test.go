package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitEnabledEmitsDebugByDefault(t *testing.T) {
	defer Init(Options{})

	var buf bytes.Buffer
	Init(Options{Enabled: true, Output: &buf})

	Debug("spawned", "verb", "QUERY", "pid", 42)

	assert.Contains(t, buf.String(), "spawned")
	assert.Contains(t, buf.String(), "verb=QUERY")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestInitDisabledDiscards(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Enabled: true, Output: &buf})
	Init(Options{Enabled: false, Output: &buf})

	Debug("spawned")
	Warn("something")

	assert.Empty(t, buf.String())
}

func TestInitExplicitLevelFilters(t *testing.T) {
	defer Init(Options{})

	var buf bytes.Buffer
	Init(Options{Enabled: true, Output: &buf, Level: slog.LevelWarn})

	Debug("spawned")
	assert.Empty(t, buf.String())

	Warn("slow")
	assert.Contains(t, buf.String(), "slow")
}
