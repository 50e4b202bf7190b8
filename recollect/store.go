package recollect

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Store is a persisted key-value map for widget state. Every save also
// appends a history row so recent values can be inspected or recovered.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the store at path and brings its schema
// up to date.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open recollections: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)
	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate recollections: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save records value under key, replacing any previous value and appending
// a history row.
func (s *Store) Save(key, value string) error {
	if key == "" {
		return fmt.Errorf("recollection key cannot be empty")
	}
	return withTx(s.db, func(tx *sql.Tx) error {
		stamp := now().Format(time.RFC3339)
		if _, err := tx.Exec(`
			INSERT INTO recollections (key, value, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`, key, value, stamp); err != nil {
			return err
		}
		_, err := tx.Exec(`
			INSERT INTO recollection_history (id, key, value, saved_at)
			VALUES (?, ?, ?, ?)
		`, uuid.NewString(), key, value, stamp)
		return err
	})
}

// Load returns the value remembered under key, or ok=false if nothing was
// ever saved there.
func (s *Store) Load(key string) (value string, ok bool, err error) {
	row := s.db.QueryRow(`SELECT value FROM recollections WHERE key = ?`, key)
	switch err := row.Scan(&value); err {
	case nil:
		return value, true, nil
	case sql.ErrNoRows:
		return "", false, nil
	default:
		return "", false, fmt.Errorf("load %q: %w", key, err)
	}
}

// Forget drops the current value for key. History rows are kept.
func (s *Store) Forget(key string) error {
	_, err := s.db.Exec(`DELETE FROM recollections WHERE key = ?`, key)
	return err
}

// Revision is one historical save of a key.
type Revision struct {
	ID      string
	Value   string
	SavedAt time.Time
}

// History returns up to limit recent revisions of key, newest first.
func (s *Store) History(key string, limit int) ([]Revision, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(`
		SELECT id, value, saved_at
		FROM recollection_history
		WHERE key = ?
		ORDER BY saved_at DESC, rowid DESC
		LIMIT ?
	`, key, limit)
	if err != nil {
		return nil, fmt.Errorf("history %q: %w", key, err)
	}
	defer rows.Close()

	var out []Revision
	for rows.Next() {
		var rev Revision
		var stamp string
		if err := rows.Scan(&rev.ID, &rev.Value, &stamp); err != nil {
			return nil, err
		}
		if rev.SavedAt, err = time.Parse(time.RFC3339, stamp); err != nil {
			return nil, fmt.Errorf("history %q: bad timestamp %q", key, stamp)
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}

// withTx runs fn in a transaction.
func withTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// now returns UTC time truncated to seconds (consistent with SQLite default).
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
