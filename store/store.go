// Package store provides the SQLite-backed project catalog: named designer
// documents saved and reloaded across sessions.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/aether-xyz/go-aether/model"
	"github.com/aether-xyz/go-aether/parser"
)

// ErrProjectNotFound is returned when a named project is absent.
var ErrProjectNotFound = errors.New("project not found")

// Info describes one catalog entry.
type Info struct {
	Name      string    `json:"name"`
	Size      int       `json:"size"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store handles SQLite database operations for the project catalog.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open creates a store at the given database path, creating the schema on
// first use.
func Open(dbPath string, log zerolog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &Store{db: db, log: log}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS projects (
		name TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save serializes and upserts a document under the given name.
func (s *Store) Save(name string, doc *model.Document) error {
	data, err := parser.ToJSON(doc)
	if err != nil {
		return fmt.Errorf("serialize project: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO projects (name, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
	`, name, data)
	if err != nil {
		return fmt.Errorf("save project %q: %w", name, err)
	}
	s.log.Debug().Str("project", name).Int("bytes", len(data)).Msg("project saved")
	return nil
}

// Load deserializes the named project.
func (s *Store) Load(name string) (*model.Document, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM projects WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("load project %q: %w", name, err)
	}
	return parser.FromJSON(data)
}

// List returns catalog entries ordered by most recent update.
func (s *Store) List() ([]Info, error) {
	rows, err := s.db.Query(`
		SELECT name, LENGTH(data), created_at, updated_at
		FROM projects ORDER BY updated_at DESC, name
	`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var infos []Info
	for rows.Next() {
		var info Info
		if err := rows.Scan(&info.Name, &info.Size, &info.CreatedAt, &info.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project row: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Delete removes the named project.
func (s *Store) Delete(name string) error {
	res, err := s.db.Exec(`DELETE FROM projects WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete project %q: %w", name, err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrProjectNotFound, name)
	}
	s.log.Debug().Str("project", name).Msg("project deleted")
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
