package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel(" error "))
	assert.Equal(t, LevelInfo, ParseLevel("whatever"))
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, "warn")

	log.Info("reservation id=%d created", 1)
	log.Warn("slot overlap for table #%s", "3")
	log.Error("db down: %v", "timeout")

	out := buf.String()
	assert.NotContains(t, out, "reservation id=1 created")
	assert.Contains(t, out, "[WARN] slot overlap for table #3")
	assert.Contains(t, out, "[ERROR] db down: timeout")
}
