// Package store defines the animal record store and selects a backend.
//
// Every backend keeps the same semantics: records come back in insertion
// order, a new record's id is the stringified number of records stored
// before it, and records are never updated or removed.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jroosing/zooapi/internal/store/badger"
	"github.com/jroosing/zooapi/internal/store/jsonfile"
	"github.com/jroosing/zooapi/internal/store/sqlite"
	"github.com/jroosing/zooapi/internal/zoo"
)

// Supported backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
)

// Store is an append-only, ordered collection of animals.
type Store interface {
	// List returns every animal in insertion order. The slice is owned by the caller.
	List(ctx context.Context) ([]zoo.Animal, error)
	// Get returns the animal with the given id or zoo.ErrNotFound.
	Get(ctx context.Context, id string) (zoo.Animal, error)
	// Append assigns the next id, stores the animal and returns it.
	Append(ctx context.Context, a zoo.Animal) (zoo.Animal, error)
	// Count returns the number of stored animals.
	Count(ctx context.Context) (int, error)
	// Health checks that the backend is usable.
	Health(ctx context.Context) error
	Close() error
}

// Config selects and locates a backend.
type Config struct {
	Backend string
	Path    string
}

// Open opens the configured backend.
func Open(cfg Config, logger *slog.Logger) (Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	backend := strings.ToLower(strings.TrimSpace(cfg.Backend))
	if backend == "" {
		backend = BackendJSON
	}

	var (
		s   Store
		err error
	)
	switch backend {
	case BackendJSON:
		s, err = jsonfile.Open(cfg.Path)
	case BackendSQLite:
		s, err = sqlite.Open(cfg.Path)
	case BackendBadger:
		s, err = badger.Open(badger.Config{Path: cfg.Path, InMemory: cfg.Path == "", Logger: logger})
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", backend, err)
	}

	if n, err := s.Count(context.Background()); err == nil {
		logger.Info("animal store opened", "backend", backend, "path", cfg.Path, "animals", n)
	}
	return s, nil
}
