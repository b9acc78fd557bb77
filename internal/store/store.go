// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists settings, the current draft, and the bounded
// generation history in a local SQLite database.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/proposal-engine/internal/proposal"
	"github.com/pdiddy/proposal-engine/pkg/types"
)

// historyLimit bounds the number of retained snapshots; inserting the
// eleventh evicts the oldest.
const historyLimit = 10

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Settings keys used by the CLI.
const (
	SettingTheme    = "theme"
	SettingProvider = "provider"
)

// Store wraps the proposal-engine SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at cfg.Path and ensures the schema
// exists.
func Open(cfg types.StoreConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = "proposal-engine.db"
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS draft (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			body TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			saved_at TEXT NOT NULL,
			title TEXT NOT NULL,
			body TEXT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SetSetting stores one settings key.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("saving setting %s: %w", key, err)
	}
	return nil
}

// Setting reads one settings key; missing keys return "".
func (s *Store) Setting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading setting %s: %w", key, err)
	}
	return value, nil
}

// SaveDraft replaces the current draft.
func (s *Store) SaveDraft(draft types.Draft) error {
	body, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("marshaling draft: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO draft (id, body, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		string(body), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	return nil
}

// LoadDraft returns the current draft. When none has been saved yet, a
// fresh empty draft is returned.
func (s *Store) LoadDraft() (types.Draft, error) {
	var body string
	err := s.db.QueryRow(`SELECT body FROM draft WHERE id = 1`).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return proposal.NewDraft(), nil
	}
	if err != nil {
		return types.Draft{}, fmt.Errorf("loading draft: %w", err)
	}

	var draft types.Draft
	if err := json.Unmarshal([]byte(body), &draft); err != nil {
		return types.Draft{}, fmt.Errorf("parsing stored draft: %w", err)
	}
	if draft.Fields == nil {
		draft.Fields = proposal.NewFieldMap()
	}
	if len(draft.Schedule) == 0 {
		draft.Schedule = proposal.DefaultSchedule()
	}
	return draft, nil
}

// SaveHistory snapshots a draft. The history is bounded; saving past
// the limit evicts the oldest entries in the same transaction.
func (s *Store) SaveHistory(draft types.Draft) (int64, error) {
	body, err := json.Marshal(draft)
	if err != nil {
		return 0, fmt.Errorf("marshaling snapshot: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO history (saved_at, title, body) VALUES (?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339Nano), draft.Input.Title, string(body))
	if err != nil {
		return 0, fmt.Errorf("inserting snapshot: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading snapshot id: %w", err)
	}

	_, err = tx.Exec(
		`DELETE FROM history WHERE id NOT IN (
			SELECT id FROM history ORDER BY id DESC LIMIT ?
		)`, historyLimit)
	if err != nil {
		return 0, fmt.Errorf("evicting old snapshots: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing snapshot: %w", err)
	}
	return id, nil
}

// ListHistory returns all snapshots, newest first. Bodies are included
// so callers can restore without a second query.
func (s *Store) ListHistory() ([]types.HistoryEntry, error) {
	rows, err := s.db.Query(`SELECT id, saved_at, title, body FROM history ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	var entries []types.HistoryEntry
	for rows.Next() {
		entry, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// History returns one snapshot by id.
func (s *Store) History(id int64) (types.HistoryEntry, error) {
	row := s.db.QueryRow(`SELECT id, saved_at, title, body FROM history WHERE id = ?`, id)
	entry, err := scanHistory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.HistoryEntry{}, fmt.Errorf("history %d: %w", id, ErrNotFound)
	}
	return entry, err
}

// DeleteHistory removes one snapshot by id.
func (s *Store) DeleteHistory(id int64) error {
	res, err := s.db.Exec(`DELETE FROM history WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting history %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("history %d: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHistory(row rowScanner) (types.HistoryEntry, error) {
	var entry types.HistoryEntry
	var savedAt, body string
	if err := row.Scan(&entry.ID, &savedAt, &entry.Title, &body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.HistoryEntry{}, err
		}
		return types.HistoryEntry{}, fmt.Errorf("scanning snapshot: %w", err)
	}

	ts, err := time.Parse(time.RFC3339Nano, savedAt)
	if err != nil {
		return types.HistoryEntry{}, fmt.Errorf("parsing snapshot timestamp: %w", err)
	}
	entry.SavedAt = ts

	if err := json.Unmarshal([]byte(body), &entry.Draft); err != nil {
		return types.HistoryEntry{}, fmt.Errorf("parsing snapshot body: %w", err)
	}
	return entry, nil
}
