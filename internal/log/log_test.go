package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	InitWithWriter(buf)
	t.Cleanup(Reset)
	return buf
}

func TestLog_FormatsLevelCategoryAndFields(t *testing.T) {
	buf := captureLog(t)

	Info(CatStore, "Stored recipes", "count", 3, "format", "yaml")

	line := strings.TrimSpace(buf.String())
	assert.Contains(t, line, "[INFO] [store] Stored recipes")
	assert.Contains(t, line, "count=3")
	assert.Contains(t, line, "format=yaml")
}

func TestLog_OrphanField(t *testing.T) {
	buf := captureLog(t)

	Warn(CatRepo, "odd fields", "id")

	assert.Contains(t, buf.String(), "id=<missing>")
}

func TestLog_ErrorErr(t *testing.T) {
	buf := captureLog(t)

	ErrorErr(CatStore, "write failed", os.ErrPermission, "path", "r.json")
	ErrorErr(CatStore, "nil error", nil)

	out := buf.String()
	assert.Contains(t, out, "[ERROR] [store] write failed path=r.json error=permission denied")
	assert.Contains(t, out, "error=<nil>")
}

func TestLog_MinLevelAndDisable(t *testing.T) {
	buf := captureLog(t)

	SetMinLevel(LevelWarn)
	Debug(CatMenu, "hidden")
	Info(CatMenu, "hidden too")
	Error(CatMenu, "shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	SetEnabled(false)
	Error(CatMenu, "muted")
	assert.Empty(t, buf.String())
}

func TestLog_NoopBeforeInit(t *testing.T) {
	Reset()
	// Must not panic without a logger.
	Info(CatCLI, "nothing happens")
	SetEnabled(true)
	SetMinLevel(LevelError)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"":        LevelDebug,
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		" error ": LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
}

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	cleanup, err := Init(path)
	require.NoError(t, err)
	t.Cleanup(Reset)

	Info(CatConfig, "Loaded config", "path", "config.yaml")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] [config] Loaded config path=config.yaml")
}
