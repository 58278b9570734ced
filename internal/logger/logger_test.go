package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	log := NewLogger("test")
	require.NotNil(t, log)
}

func TestLoggerCarriesRole(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "importer")

	log.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"role":"importer"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestNop(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)
	log.Error().Msg("discarded")
}
