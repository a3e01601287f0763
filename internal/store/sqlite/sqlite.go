// Package sqlite stores animals in a SQLite database.
//
// The schema is managed by golang-migrate from embedded migration files.
// Row position is the insertion order and the source of new ids.
// Personality traits are stored as a JSON array in a TEXT column.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jroosing/zooapi/internal/zoo"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store is the SQLite backed store.
type Store struct {
	conn *sql.DB
	mu   sync.Mutex // Serializes appends so positions and ids stay dense
}

// Open opens or creates the database at path and applies migrations.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("sqlite store requires a path")
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)", path)

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(time.Hour)

	if err := migrateUp(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &Store{conn: conn}, nil
}

// migrateUp applies pending migrations. The migrate instance is not closed
// because its database driver would close conn with it.
func migrateUp(conn *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}
	defer src.Close()

	driver, err := migratesqlite.WithInstance(conn, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// List returns every animal ordered by insertion position.
func (s *Store) List(ctx context.Context) ([]zoo.Animal, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, name, species, diet, personality_traits
		FROM animals
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query animals: %w", err)
	}
	defer rows.Close()

	animals := []zoo.Animal{}
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		animals = append(animals, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate animals: %w", err)
	}
	return animals, nil
}

// Get returns the first animal with the given id or zoo.ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (zoo.Animal, error) {
	row := s.conn.QueryRowContext(ctx, `
		SELECT id, name, species, diet, personality_traits
		FROM animals
		WHERE id = ?
		ORDER BY position
		LIMIT 1
	`, id)
	a, err := scanAnimal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return zoo.Animal{}, zoo.ErrNotFound
	}
	return a, err
}

// Append assigns the next id and inserts the animal in one transaction.
func (s *Store) Append(ctx context.Context, a zoo.Animal) (zoo.Animal, error) {
	if a.PersonalityTraits == nil {
		a.PersonalityTraits = []string{}
	}
	traits, err := json.Marshal(a.PersonalityTraits)
	if err != nil {
		return zoo.Animal{}, fmt.Errorf("failed to encode traits: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return zoo.Animal{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM animals").Scan(&count); err != nil {
		return zoo.Animal{}, fmt.Errorf("failed to count animals: %w", err)
	}
	a.ID = strconv.Itoa(count)

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO animals (position, id, name, species, diet, personality_traits)
		VALUES (?, ?, ?, ?, ?, ?)
	`, count, a.ID, a.Name, a.Species, a.Diet, string(traits)); err != nil {
		return zoo.Animal{}, fmt.Errorf("failed to insert animal %s: %w", a.Name, err)
	}

	if err := tx.Commit(); err != nil {
		return zoo.Animal{}, fmt.Errorf("failed to commit animal: %w", err)
	}
	return a, nil
}

// Count returns the number of stored animals.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM animals").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count animals: %w", err)
	}
	return n, nil
}

// Health checks database connectivity.
func (s *Store) Health(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnimal(r rowScanner) (zoo.Animal, error) {
	var (
		a      zoo.Animal
		traits string
	)
	if err := r.Scan(&a.ID, &a.Name, &a.Species, &a.Diet, &traits); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zoo.Animal{}, err
		}
		return zoo.Animal{}, fmt.Errorf("failed to scan animal: %w", err)
	}
	if err := json.Unmarshal([]byte(traits), &a.PersonalityTraits); err != nil {
		return zoo.Animal{}, fmt.Errorf("failed to decode traits of animal %s: %w", a.ID, err)
	}
	if a.PersonalityTraits == nil {
		a.PersonalityTraits = []string{}
	}
	return a, nil
}
