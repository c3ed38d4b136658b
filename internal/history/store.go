// Package history persists analysis records newest-first, one JSON
// document per analysis. Three backends share one contract: SQLite
// (default, local file), Postgres (DATABASE_URL) and a Redis list
// (REDIS_URL). Corrupted rows are filtered on read and counted, never
// surfaced as errors.
package history

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jdprep/jdprep/internal/analyzer"
)

// ErrNotFound is returned by Get and SetConfidence for unknown ids.
var ErrNotFound = errors.New("history: record not found")

// Store is the persisted-analysis collaborator. SetConfidence performs
// read-modify-write against the latest persisted value, not a cached
// one, before writing back.
type Store interface {
	Add(ctx context.Context, a *analyzer.Analysis) error
	// List returns up to limit records newest-first, plus the number of
	// corrupted rows skipped.
	List(ctx context.Context, limit int) ([]*analyzer.Analysis, int, error)
	Get(ctx context.Context, id string) (*analyzer.Analysis, error)
	// SetConfidence updates one skill's rating on the stored record,
	// recomputes the final score, stamps updatedAt, and returns the
	// persisted result.
	SetConfidence(ctx context.Context, id, skill string, c analyzer.Confidence) (*analyzer.Analysis, error)
	Clear(ctx context.Context) error
	Close() error
}

// Config selects a backend. DatabaseURL wins over RedisURL; with
// neither set, the SQLite file at SQLitePath is used.
type Config struct {
	DatabaseURL string
	RedisURL    string
	SQLitePath  string
}

// Open connects the configured backend.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch {
	case cfg.DatabaseURL != "":
		slog.Info("history: using postgres store")
		return openPostgres(ctx, cfg.DatabaseURL)
	case cfg.RedisURL != "":
		slog.Info("history: using redis store")
		return openRedis(ctx, cfg.RedisURL)
	default:
		slog.Info("history: using sqlite store", slog.String("path", cfg.SQLitePath))
		return openSQLite(cfg.SQLitePath)
	}
}

// Overridable for tests that pin updatedAt.
var nowFn = time.Now

func timestamp() string {
	return nowFn().UTC().Format(time.RFC3339)
}

const defaultListLimit = 50

func clampLimit(limit int) int {
	if limit <= 0 || limit > 500 {
		return defaultListLimit
	}
	return limit
}

// decodeRow validates and migrates one raw stored document. Corrupted
// rows are counted against the metrics and dropped.
func decodeRow(raw []byte) (*analyzer.Analysis, bool) {
	a, ok := analyzer.DecodeStored(raw)
	if !ok {
		analyzer.IncrCorruptedSkipped(1)
	}
	return a, ok
}

// applyConfidence mutates a loaded record for SetConfidence and stamps
// updatedAt. Shared by all backends so the read-modify-write semantics
// stay identical.
func applyConfidence(a *analyzer.Analysis, skill string, c analyzer.Confidence) error {
	if err := a.SetConfidence(skill, c); err != nil {
		return err
	}
	a.UpdatedAt = timestamp()
	return nil
}
