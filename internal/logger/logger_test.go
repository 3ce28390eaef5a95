package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, New(false).GetLevel())
	assert.Equal(t, zerolog.DebugLevel, New(true).GetLevel())
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf)

	log.Info().Str("file", "bank.csv").Msg("parsed statement")

	out := buf.String()
	assert.Contains(t, out, "parsed statement")
	assert.Contains(t, out, "bank.csv")
}
