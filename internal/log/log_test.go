package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOutput(t *testing.T) {
	t.Cleanup(Reset)

	var buf bytes.Buffer
	require.NoError(t, SetOutput(&buf, "info"))

	Debug().Msg("hidden")
	Error().Str("char", "G").Msg("bad input")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "ERR bad input")
	assert.Contains(t, out, "char=G")
}

func TestSetOutputDebug(t *testing.T) {
	t.Cleanup(Reset)

	var buf bytes.Buffer
	require.NoError(t, SetOutput(&buf, "DEBUG"))
	Debug().Msg("shown")
	assert.Contains(t, buf.String(), "DBG shown")
}

func TestSetOutputDefaultLevel(t *testing.T) {
	t.Cleanup(Reset)

	var buf bytes.Buffer
	require.NoError(t, SetOutput(&buf, ""))
	Debug().Msg("hidden")
	Error().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "ERR shown")
}

func TestSetOutputBadLevel(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, SetOutput(&buf, "loud"))
}

func TestNop(t *testing.T) {
	Reset()
	// Must not panic or write anywhere.
	Debug().Msg("dropped")
	Error().Msg("dropped")
}
