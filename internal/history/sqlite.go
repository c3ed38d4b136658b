package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/jdprep/jdprep/internal/analyzer"
)

type sqliteStore struct {
	db *sql.DB
}

// openSQLite opens (or creates) the local history database.
func openSQLite(path string) (*sqliteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("history: mkdir %s: %w", filepath.Dir(path), err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer
	if err := initSQLiteSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: init schema: %w", err)
	}
	return &sqliteStore{db: db}, nil
}

func initSQLiteSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS analyses (
		id         TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		record     TEXT NOT NULL
	)`)
	return err
}

func (s *sqliteStore) Add(ctx context.Context, a *analyzer.Analysis) error {
	raw, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("history: marshal record: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO analyses (id, created_at, updated_at, record) VALUES (?, ?, ?, ?)`,
		a.ID, a.CreatedAt, a.UpdatedAt, string(raw),
	)
	if err != nil {
		return fmt.Errorf("history: insert: %w", err)
	}
	return nil
}

func (s *sqliteStore) List(ctx context.Context, limit int) ([]*analyzer.Analysis, int, error) {
	analyzer.IncrHistoryReads()
	rows, err := s.db.QueryContext(ctx,
		`SELECT record FROM analyses ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		clampLimit(limit),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var out []*analyzer.Analysis
	corrupted := 0
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			corrupted++
			continue
		}
		a, ok := decodeRow([]byte(raw))
		if !ok {
			corrupted++
			continue
		}
		out = append(out, a)
	}
	return out, corrupted, rows.Err()
}

func (s *sqliteStore) Get(ctx context.Context, id string) (*analyzer.Analysis, error) {
	analyzer.IncrHistoryReads()
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT record FROM analyses WHERE id = ?`, id).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("history: get %s: %w", id, err)
	}
	a, ok := decodeRow([]byte(raw))
	if !ok {
		return nil, ErrNotFound
	}
	return a, nil
}

func (s *sqliteStore) SetConfidence(ctx context.Context, id, skill string, c analyzer.Confidence) (*analyzer.Analysis, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyConfidence(a, skill, c); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("history: marshal record: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE analyses SET record = ?, updated_at = ? WHERE id = ?`,
		string(raw), a.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("history: update %s: %w", id, err)
	}
	return a, nil
}

func (s *sqliteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM analyses`); err != nil {
		return fmt.Errorf("history: clear: %w", err)
	}
	return nil
}

func (s *sqliteStore) Close() error { return s.db.Close() }
