package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jdprep/jdprep/internal/analyzer"
)

type postgresStore struct {
	pool *pgxpool.Pool
}

// openPostgres creates a pgx pool and ensures the schema.
func openPostgres(ctx context.Context, databaseURL string) (*postgresStore, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("history: parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("history: create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("history: ping postgres: %w", err)
	}

	// seq breaks created_at ties so listing stays strict insertion
	// order even within one second.
	_, err = pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS analyses (
		seq        BIGSERIAL,
		id         TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		record     JSONB NOT NULL
	)`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("history: init schema: %w", err)
	}
	return &postgresStore{pool: pool}, nil
}

func (s *postgresStore) Add(ctx context.Context, a *analyzer.Analysis) error {
	raw, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("history: marshal record: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO analyses (id, created_at, updated_at, record) VALUES ($1, $2, $3, $4)`,
		a.ID, a.CreatedAt, a.UpdatedAt, raw,
	)
	if err != nil {
		return fmt.Errorf("history: insert: %w", err)
	}
	return nil
}

func (s *postgresStore) List(ctx context.Context, limit int) ([]*analyzer.Analysis, int, error) {
	analyzer.IncrHistoryReads()
	rows, err := s.pool.Query(ctx,
		`SELECT record FROM analyses ORDER BY created_at DESC, seq DESC LIMIT $1`,
		clampLimit(limit),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var out []*analyzer.Analysis
	corrupted := 0
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			corrupted++
			continue
		}
		a, ok := decodeRow(raw)
		if !ok {
			corrupted++
			continue
		}
		out = append(out, a)
	}
	return out, corrupted, rows.Err()
}

func (s *postgresStore) Get(ctx context.Context, id string) (*analyzer.Analysis, error) {
	analyzer.IncrHistoryReads()
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT record FROM analyses WHERE id = $1`, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("history: get %s: %w", id, err)
	}
	a, ok := decodeRow(raw)
	if !ok {
		return nil, ErrNotFound
	}
	return a, nil
}

func (s *postgresStore) SetConfidence(ctx context.Context, id, skill string, c analyzer.Confidence) (*analyzer.Analysis, error) {
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
	_, err = s.pool.Exec(ctx,
		`UPDATE analyses SET record = $1, updated_at = $2 WHERE id = $3`,
		raw, a.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("history: update %s: %w", id, err)
	}
	return a, nil
}

func (s *postgresStore) Clear(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM analyses`); err != nil {
		return fmt.Errorf("history: clear: %w", err)
	}
	return nil
}

func (s *postgresStore) Close() error {
	s.pool.Close()
	return nil
}
