package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtension(t *testing.T) {
	tests := map[string]string{
		"yaml":     ".yaml",
		"YAML":     ".yaml",
		"xml":      ".xml",
		"json":     ".json",
		"sqlite":   ".db",
		"":         ".yaml",
		"toml":     ".yaml",
		" json":    ".json",
		"XML\n":    ".xml",
		" SQLite ": ".db",
	}
	for format, want := range tests {
		require.Equal(t, want, Extension(format), format)
	}
}

func TestResolveStorePath(t *testing.T) {
	tmpDir := t.TempDir()
	dataDir := filepath.Join(tmpDir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0750))

	tests := []struct {
		name   string
		path   string
		format string
		want   string
	}{
		{"empty path uses default name", "", "json", "recipes.json"},
		{"blank path uses default name", "   ", "sqlite", "recipes.db"},
		{"directory gets default name", dataDir, "xml", filepath.Join(dataDir, "recipes.xml")},
		{"directory with trailing slash", dataDir + "/", "yaml", filepath.Join(dataDir, "recipes.yaml")},
		{"explicit file used as given", filepath.Join(tmpDir, "mine.yml"), "yaml", filepath.Join(tmpDir, "mine.yml")},
		{"missing file used as given", filepath.Join(dataDir, "new.json"), "json", filepath.Join(dataDir, "new.json")},
		{"padded format picks its extension", "", " json", "recipes.json"},
		{"path is cleaned", filepath.Join(tmpDir, "a", "..", "b.db"), "sqlite", filepath.Join(tmpDir, "b.db")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ResolveStorePath(tt.path, tt.format))
		})
	}
}

func TestResolveStorePath_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.Equal(t, filepath.Join(home, "recipes.json"), ResolveStorePath("~/recipes.json", "json"))
	require.Equal(t, filepath.Join(home, "recipes.yaml"), ResolveStorePath("~", "yaml"))
}
