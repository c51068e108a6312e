package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "journal.log")

	l := NewLogger("journal-test", "debug", path)
	l.Info().Str("k", "v").Msg("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"role":"journal-test"`)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"k":"v"`)
}

func TestFromContext_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctx.log")
	l := NewLogger("ctx", "info", path)

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("through context")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "through context")
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop()
	l.Error().Msg("discarded")
	l.GetChildLogger().Info().Msg("discarded too")
	FromContext(context.Background()).Info().Msg("default logger")
}
