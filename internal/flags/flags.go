// Package flags provides opt-in behavior switches read from the flags section
// of the config file. Flags are read-only after initialization and unknown
// flags are disabled.
package flags

import (
	"maps"
	"slices"
	"strings"

	"github.com/zjrosen/recipebook/internal/log"
)

// Flag name constants for type-safe flag access.
const (
	// FlagAutoLoad loads the stored collection before the menu starts.
	// A missing data file is not an error; the menu starts empty.
	FlagAutoLoad = "auto-load"

	// FlagAutoSave stores the collection when the menu exits via option 0
	// or end of input.
	FlagAutoSave = "auto-save"
)

// Known returns every flag name recipebook reads.
func Known() []string {
	return []string{FlagAutoLoad, FlagAutoSave}
}

// Registry holds feature flag state loaded from configuration.
type Registry struct {
	flags map[string]bool
}

// New creates a Registry from a config map. Names are matched
// case-insensitively. The map is copied, so later changes to it are ignored.
func New(flags map[string]bool) *Registry {
	r := &Registry{flags: make(map[string]bool, len(flags))}
	for name, value := range flags {
		key := normalize(name)
		if !slices.Contains(Known(), key) {
			log.Warn(log.CatConfig, "Unknown feature flag in config", "flag", name)
		}
		r.flags[key] = value
	}
	log.Debug(log.CatConfig, "Feature flags initialized", "count", len(r.flags), "flags", r.All())
	return r
}

// Enabled returns true if the named flag is enabled.
// Returns false for unset flags and on a nil registry.
func (r *Registry) Enabled(name string) bool {
	if r == nil {
		return false
	}
	return r.flags[normalize(name)]
}

// All returns a copy of all flags (for debugging/logging).
// Returns an empty map if the registry is nil.
func (r *Registry) All() map[string]bool {
	if r == nil {
		return make(map[string]bool)
	}
	result := make(map[string]bool, len(r.flags))
	maps.Copy(result, r.flags)
	return result
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
