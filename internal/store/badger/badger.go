// Package badger stores animals in an embedded BadgerDB key-value store.
//
// Each animal is a JSON value under "animal/<position>", with the position
// zero padded so key order is insertion order. Since positions and ids are
// both the count of earlier records, Get is a single key lookup.
package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/jroosing/zooapi/internal/zoo"
)

var animalPrefix = []byte("animal/")

// Config holds configuration for the BadgerDB store.
type Config struct {
	// Path is the directory for BadgerDB files. Ignored when InMemory is true.
	Path string

	// InMemory enables in-memory mode (no disk persistence).
	InMemory bool

	// Logger receives BadgerDB's internal logs. If nil they are discarded.
	Logger *slog.Logger
}

// Store is the BadgerDB backed store.
type Store struct {
	db *badger.DB

	mu    sync.Mutex // Serializes appends
	count int
}

// Open opens the database and counts the stored animals.
func Open(cfg Config) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, errors.New("badger store requires a path unless in-memory")
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(true).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}

	s := &Store{db: db}
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: animalPrefix})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			s.count++
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to count animals: %w", err)
	}
	return s, nil
}

func animalKey(position int) []byte {
	return fmt.Appendf(append([]byte{}, animalPrefix...), "%010d", position)
}

// List returns every animal in key order, which is insertion order.
func (s *Store) List(ctx context.Context) ([]zoo.Animal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	animals := []zoo.Animal{}
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = animalPrefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			var a zoo.Animal
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &a)
			}); err != nil {
				return fmt.Errorf("failed to decode %s: %w", it.Item().Key(), err)
			}
			animals = append(animals, a)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return animals, nil
}

// Get returns the animal with the given id or zoo.ErrNotFound. Ids that
// are not canonical decimal positions never match.
func (s *Store) Get(ctx context.Context, id string) (zoo.Animal, error) {
	if err := ctx.Err(); err != nil {
		return zoo.Animal{}, err
	}
	// Only canonical decimal ids were ever assigned.
	position, err := strconv.Atoi(id)
	if err != nil || position < 0 || strconv.Itoa(position) != id {
		return zoo.Animal{}, zoo.ErrNotFound
	}

	var a zoo.Animal
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(animalKey(position))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &a)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return zoo.Animal{}, zoo.ErrNotFound
	}
	if err != nil {
		return zoo.Animal{}, fmt.Errorf("failed to get animal %s: %w", id, err)
	}
	return a, nil
}

// Append assigns the next id and stores the animal in one transaction.
func (s *Store) Append(ctx context.Context, a zoo.Animal) (zoo.Animal, error) {
	if err := ctx.Err(); err != nil {
		return zoo.Animal{}, err
	}
	if a.PersonalityTraits == nil {
		a.PersonalityTraits = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = strconv.Itoa(s.count)
	val, err := json.Marshal(a)
	if err != nil {
		return zoo.Animal{}, fmt.Errorf("failed to encode animal: %w", err)
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(animalKey(s.count), val)
	}); err != nil {
		return zoo.Animal{}, fmt.Errorf("failed to store animal %s: %w", a.Name, err)
	}
	s.count++
	return a, nil
}

// Count returns the number of stored animals.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count, nil
}

// Health reports whether the database is still open.
func (s *Store) Health(ctx context.Context) error {
	if s.db.IsClosed() {
		return errors.New("badger database is closed")
	}
	return ctx.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// badgerLogger adapts slog to badger.Logger.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...), "component", "badger")
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...), "component", "badger")
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...), "component", "badger")
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...), "component", "badger")
}
