// Package paths provides path resolution utilities.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultBaseName is the data file name used when no file is configured.
const DefaultBaseName = "recipes"

// Extension returns the file extension, with leading dot, for a storage format.
// Case and surrounding whitespace are ignored; unknown formats fall back
// to ".yaml".
func Extension(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "xml":
		return ".xml"
	case "json":
		return ".json"
	case "sqlite":
		return ".db"
	default:
		return ".yaml"
	}
}

// ResolveStorePath resolves the data file path from user input.
//
// Input normalization:
//   - "" -> "./recipes.<ext>"
//   - "/path/to/dir" (an existing directory) -> "/path/to/dir/recipes.<ext>"
//   - "~/notes/recipes.json" -> "$HOME/notes/recipes.json"
//   - anything else is used as given (cleaned)
//
// The extension follows the format: yaml -> .yaml, xml -> .xml,
// json -> .json, sqlite -> .db.
func ResolveStorePath(path, format string) string {
	name := DefaultBaseName + Extension(format)
	if strings.TrimSpace(path) == "" {
		return name
	}

	path = expandHome(path)
	path = filepath.Clean(path)

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, name)
	}
	return path
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
