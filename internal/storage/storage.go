// Package storage selects a domain.Store implementation by format name.
package storage

import (
	"fmt"
	"strings"

	"github.com/zjrosen/recipebook/internal/domain"
	"github.com/zjrosen/recipebook/internal/infrastructure/filestore"
	"github.com/zjrosen/recipebook/internal/infrastructure/sqlite"
	"github.com/zjrosen/recipebook/internal/log"
)

// Supported format names.
const (
	FormatYAML   = "yaml"
	FormatXML    = "xml"
	FormatJSON   = "json"
	FormatSQLite = "sqlite"
)

// Formats returns every supported format name in display order.
func Formats() []string {
	return []string{FormatYAML, FormatXML, FormatJSON, FormatSQLite}
}

// Normalize lowercases and trims a format name and maps the "yml" alias.
func Normalize(format string) string {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "yml" {
		return FormatYAML
	}
	return f
}

// IsSupported reports whether format names a known backend.
func IsSupported(format string) bool {
	switch Normalize(format) {
	case FormatYAML, FormatXML, FormatJSON, FormatSQLite:
		return true
	}
	return false
}

// New builds the store for format at path. The path is used as given;
// callers resolve defaults with paths.ResolveStorePath first.
func New(format, path string) (domain.Store, error) {
	var store domain.Store
	switch Normalize(format) {
	case FormatYAML:
		store = filestore.NewYAML(path)
	case FormatXML:
		store = filestore.NewXML(path)
	case FormatJSON:
		store = filestore.NewJSON(path)
	case FormatSQLite:
		store = sqlite.NewRecipeStore(path)
	default:
		return nil, fmt.Errorf("unknown storage format %q (supported: %s)", format, strings.Join(Formats(), ", "))
	}
	log.Debug(log.CatStore, "Selected store", "format", Normalize(format), "path", path)
	return store, nil
}
