package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)

	// Must not panic and must stay disabled.
	log.Info().Msg("dropped")
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}
