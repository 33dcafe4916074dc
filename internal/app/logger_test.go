package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	outW := &bytes.Buffer{}
	logger := newLogger("warn", "json", outW)

	logger.Info("dropped")
	logger.Warn("kept")

	out := outW.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	t.Parallel()

	outW := &bytes.Buffer{}
	logger := newLogger("chatty", "json", outW)

	logger.Debug("dropped")
	logger.Info("kept")

	out := outW.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestNewLogger_Format(t *testing.T) {
	t.Parallel()

	jsonW := &bytes.Buffer{}
	newLogger("info", "json", jsonW).Info("hello")
	assert.True(t, strings.HasPrefix(jsonW.String(), "{"), "expected JSON output, got %q", jsonW.String())

	textW := &bytes.Buffer{}
	newLogger("info", "text", textW).Info("hello")
	assert.Contains(t, textW.String(), "msg=hello")
}
