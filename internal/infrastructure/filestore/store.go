// Package filestore implements domain.Store over a single text file in YAML,
// XML or JSON. Writes replace the whole file atomically.
package filestore

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/zjrosen/recipebook/internal/domain"
	"github.com/zjrosen/recipebook/internal/fsutil"
	"github.com/zjrosen/recipebook/internal/log"
)

// Store persists recipes to one file using a fixed codec.
type Store struct {
	path  string
	codec codec
}

// Ensure Store implements domain.Store.
var _ domain.Store = (*Store)(nil)

// NewYAML creates a store that reads and writes YAML at path.
func NewYAML(path string) *Store {
	return &Store{path: path, codec: yamlCodec{}}
}

// NewXML creates a store that reads and writes XML at path.
func NewXML(path string) *Store {
	return &Store{path: path, codec: xmlCodec{}}
}

// NewJSON creates a store that reads and writes JSON at path.
func NewJSON(path string) *Store {
	return &Store{path: path, codec: jsonCodec{}}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Format returns the wire format name ("yaml", "xml" or "json").
func (s *Store) Format() string { return s.codec.name() }

// Write serializes recipes and replaces the backing file.
// Returns EncodeError if serialization or the write fails.
func (s *Store) Write(recipes []*domain.Recipe) error {
	data, err := s.codec.marshal(toRecords(recipes))
	if err != nil {
		return &domain.EncodeError{Format: s.codec.name(), Path: s.path, Err: err}
	}
	if err := fsutil.WriteFileAtomic(s.path, data); err != nil {
		return &domain.EncodeError{Format: s.codec.name(), Path: s.path, Err: err}
	}
	log.Debug(log.CatStore, "Wrote store", "format", s.codec.name(), "path", s.path, "bytes", len(data))
	return nil
}

// Read loads the collection from the backing file.
// Returns StoreNotFoundError if the file does not exist and DecodeError if
// its content is malformed. An empty file holds an empty collection.
func (s *Store) Read() ([]*domain.Recipe, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &domain.StoreNotFoundError{Path: s.path}
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	records, err := s.codec.unmarshal(data)
	if err != nil {
		return nil, &domain.DecodeError{Format: s.codec.name(), Path: s.path, Err: err}
	}
	log.Debug(log.CatStore, "Read store", "format", s.codec.name(), "path", s.path, "recipes", len(records))
	return toDomain(records), nil
}
