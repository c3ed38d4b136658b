package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdprep/jdprep/internal/analyzer"
)

func newTestStore(t *testing.T) *sqliteStore {
	t.Helper()
	s, err := openSQLite(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// testAnalysis builds a record with a fixed id and createdAt so list
// ordering is deterministic.
func testAnalysis(id, createdAt, jd string) *analyzer.Analysis {
	a := analyzer.AnalyzeJD(analyzer.AnalyzeInput{Company: "Acme", Role: "SDE", JDText: jd})
	a.ID = id
	a.CreatedAt = createdAt
	a.UpdatedAt = createdAt
	return a
}

func TestSQLiteStore_AddListGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	older := testAnalysis("a-1", "2026-03-01T10:00:00Z", "Java and SQL")
	newer := testAnalysis("a-2", "2026-03-02T10:00:00Z", "Python and Docker")
	require.NoError(t, s.Add(ctx, older))
	require.NoError(t, s.Add(ctx, newer))

	list, corrupted, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, corrupted)
	require.Len(t, list, 2)
	assert.Equal(t, "a-2", list[0].ID, "newest first")
	assert.Equal(t, "a-1", list[1].ID)

	got, err := s.Get(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, older.ExtractedSkills, got.ExtractedSkills)
	assert.Equal(t, older.BaseScore, got.BaseScore)
}

func TestSQLiteStore_ListLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i, ts := range []string{
		"2026-03-01T10:00:00Z", "2026-03-02T10:00:00Z", "2026-03-03T10:00:00Z",
	} {
		require.NoError(t, s.Add(ctx, testAnalysis(string(rune('a'+i)), ts, "Java")))
	}

	list, _, err := s.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c", list[0].ID)
}

func TestSQLiteStore_SameSecondKeepsInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Identical created_at: ordering must fall back to insertion
	// order, newest first, not id order.
	const ts = "2026-03-01T10:00:00Z"
	for _, id := range []string{"z-1", "m-2", "a-3"} {
		require.NoError(t, s.Add(ctx, testAnalysis(id, ts, "Java")))
	}

	list, _, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a-3", list[0].ID)
	assert.Equal(t, "m-2", list[1].ID)
	assert.Equal(t, "z-1", list[2].ID)
}

func TestSQLiteStore_GetNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_SetConfidence(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	oldNow := nowFn
	nowFn = func() time.Time { return time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { nowFn = oldNow })

	a := testAnalysis("a-1", "2026-03-01T10:00:00Z", "Java and SQL")
	require.NoError(t, s.Add(ctx, a))

	updated, err := s.SetConfidence(ctx, "a-1", "Java", analyzer.ConfidenceKnow)
	require.NoError(t, err)
	assert.Equal(t, analyzer.ConfidenceKnow, updated.SkillConfidenceMap["Java"])
	assert.Equal(t, a.BaseScore, updated.FinalScore, "know cancels one practice")
	assert.Equal(t, "2026-03-05T12:00:00Z", updated.UpdatedAt)

	// The update is persisted, not just returned.
	got, err := s.Get(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, analyzer.ConfidenceKnow, got.SkillConfidenceMap["Java"])
	assert.Equal(t, updated.FinalScore, got.FinalScore)
}

func TestSQLiteStore_SetConfidenceErrors(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Add(ctx, testAnalysis("a-1", "2026-03-01T10:00:00Z", "Java")))

	_, err := s.SetConfidence(ctx, "missing", "Java", analyzer.ConfidenceKnow)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.SetConfidence(ctx, "a-1", "Rust", analyzer.ConfidenceKnow)
	assert.Error(t, err, "skill not extracted for this record")
}

func TestSQLiteStore_SkipsCorruptedRows(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Add(ctx, testAnalysis("a-1", "2026-03-01T10:00:00Z", "Java")))

	// Simulate a row written by a buggy or foreign writer.
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO analyses (id, created_at, updated_at, record) VALUES (?, ?, ?, ?)`,
		"bad-1", "2026-03-02T10:00:00Z", "2026-03-02T10:00:00Z", `{"id":""`,
	)
	require.NoError(t, err)

	list, corrupted, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, corrupted)
	require.Len(t, list, 1)
	assert.Equal(t, "a-1", list[0].ID)

	_, err = s.Get(ctx, "bad-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_Clear(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Add(ctx, testAnalysis("a-1", "2026-03-01T10:00:00Z", "Java")))
	require.NoError(t, s.Clear(ctx))

	list, _, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSQLiteStore_MigratesLegacyRecords(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Record persisted before the base/final score split.
	legacy := `{"id":"old-1","createdAt":"2025-11-02T10:00:00Z",
		"extractedSkills":{"Languages":["Java"]},"readinessScore":50}`
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO analyses (id, created_at, updated_at, record) VALUES (?, ?, ?, ?)`,
		"old-1", "2025-11-02T10:00:00Z", "2025-11-02T10:00:00Z", legacy,
	)
	require.NoError(t, err)

	got, err := s.Get(ctx, "old-1")
	require.NoError(t, err)
	assert.Equal(t, 50, got.BaseScore)
	assert.Equal(t, 48, got.FinalScore)
	assert.Equal(t, analyzer.ConfidencePractice, got.SkillConfidenceMap["Java"])
}
