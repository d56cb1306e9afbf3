package domain

import (
	"errors"
	"fmt"
)

// Store persists the whole recipe collection in one call.
// Implementations may use YAML, XML, JSON, SQLite, or other formats; they
// differ only in wire format, never in semantics.
type Store interface {
	// Write replaces the stored collection with recipes.
	Write(recipes []*Recipe) error

	// Read returns the stored collection.
	// Returns StoreNotFoundError if nothing has been stored yet and
	// DecodeError if the stored content is malformed.
	Read() ([]*Recipe, error)
}

// ErrStoreNotFound is matched by StoreNotFoundError via errors.Is.
var ErrStoreNotFound = errors.New("store not found")

// StoreNotFoundError is returned when the backing file does not exist.
type StoreNotFoundError struct {
	Path string
}

func (e *StoreNotFoundError) Error() string {
	return fmt.Sprintf("store not found: %s", e.Path)
}

// Is reports whether target is ErrStoreNotFound.
func (e *StoreNotFoundError) Is(target error) bool {
	return target == ErrStoreNotFound
}

// EncodeError is returned when the collection cannot be serialized or written.
type EncodeError struct {
	Format string
	Path   string
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encoding %s store %s: %v", e.Format, e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// DecodeError is returned when stored content cannot be deserialized.
type DecodeError struct {
	Format string
	Path   string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s store %s: %v", e.Format, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
