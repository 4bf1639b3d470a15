package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	log, err := New(Config{Debug: true, LogToFile: true, LogsDir: dir})
	require.NoError(t, err)
	log.Debugw("generated", "version", 7)
	_ = log.Sync()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"generated"`)
	assert.Contains(t, string(data), `"version":7`)
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
}
