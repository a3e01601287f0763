// Package jsonfile keeps animals in memory and mirrors them to a single
// JSON document of the form {"animals": [...]}.
//
// The document is read once by Open and rewritten in full, pretty-printed,
// after every Append. There is no temp-file rename and no fsync: a failed
// write leaves the in-memory append in place and the file behind it.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"sync"

	"github.com/jroosing/zooapi/internal/pool"
	"github.com/jroosing/zooapi/internal/zoo"
)

var bufPool = pool.New(func() *bytes.Buffer { return new(bytes.Buffer) }, (*bytes.Buffer).Reset)

// Document is the persisted layout.
type Document struct {
	Animals []zoo.Animal `json:"animals"`
}

// Store is the JSON document backed store.
type Store struct {
	path string

	mu      sync.RWMutex
	animals []zoo.Animal
}

// Open loads the document at path. A missing file yields an empty store
// that creates the file on first Append. An empty path keeps everything
// in memory.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	s.animals = doc.Animals
	return s, nil
}

// NewMemory returns an in-memory store seeded with animals.
func NewMemory(animals []zoo.Animal) *Store {
	return &Store{animals: slices.Clone(animals)}
}

// Path returns the backing file, empty for in-memory stores.
func (s *Store) Path() string { return s.path }

// List returns a copy of every animal in insertion order.
func (s *Store) List(ctx context.Context) ([]zoo.Animal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.animals), nil
}

// Get returns the first animal with the given id or zoo.ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (zoo.Animal, error) {
	if err := ctx.Err(); err != nil {
		return zoo.Animal{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := zoo.FindByID(id, s.animals)
	if !ok {
		return zoo.Animal{}, zoo.ErrNotFound
	}
	return a, nil
}

// Append assigns the next id, appends the animal and rewrites the document.
// On a write error the animal stays in memory and is returned with the error.
func (s *Store) Append(ctx context.Context, a zoo.Animal) (zoo.Animal, error) {
	if err := ctx.Err(); err != nil {
		return zoo.Animal{}, err
	}
	if a.PersonalityTraits == nil {
		a.PersonalityTraits = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = strconv.Itoa(len(s.animals))
	s.animals = append(s.animals, a)

	if err := s.writeLocked(); err != nil {
		return a, err
	}
	return a, nil
}

// Count returns the number of animals held in memory.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.animals), nil
}

// Health reports only context cancellation; the document is not reread.
func (s *Store) Health(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op; every Append has already written the document.
func (s *Store) Close() error { return nil }

// writeLocked rewrites the whole document. Callers hold s.mu.
func (s *Store) writeLocked() error {
	if s.path == "" {
		return nil
	}
	animals := s.animals
	if animals == nil {
		animals = []zoo.Animal{}
	}
	buf := bufPool.Get()
	defer bufPool.Put(buf)
	enc := json.NewEncoder(buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Document{Animals: animals}); err != nil {
		return fmt.Errorf("failed to encode animals: %w", err)
	}
	data := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}
