package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jdprep/jdprep/internal/analyzer"
)

// redisStore keeps the whole history in one list key, one JSON
// document per element, LPUSH on add so index 0 is always the newest —
// structurally the same single-collection model as a browser-local
// store, which is where this record shape originated.
type redisStore struct {
	rdb *redis.Client
	key string
}

const redisHistoryKey = "jdprep:history"

func openRedis(ctx context.Context, redisURL string) (*redisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("history: parse REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("history: ping redis: %w", err)
	}
	return &redisStore{rdb: rdb, key: redisHistoryKey}, nil
}

func (s *redisStore) Add(ctx context.Context, a *analyzer.Analysis) error {
	raw, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("history: marshal record: %w", err)
	}
	if err := s.rdb.LPush(ctx, s.key, raw).Err(); err != nil {
		return fmt.Errorf("history: lpush: %w", err)
	}
	return nil
}

func (s *redisStore) List(ctx context.Context, limit int) ([]*analyzer.Analysis, int, error) {
	analyzer.IncrHistoryReads()
	vals, err := s.rdb.LRange(ctx, s.key, 0, int64(clampLimit(limit))-1).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("history: lrange: %w", err)
	}
	var out []*analyzer.Analysis
	corrupted := 0
	for _, v := range vals {
		a, ok := decodeRow([]byte(v))
		if !ok {
			corrupted++
			continue
		}
		out = append(out, a)
	}
	return out, corrupted, nil
}

func (s *redisStore) Get(ctx context.Context, id string) (*analyzer.Analysis, error) {
	a, _, err := s.find(ctx, id)
	return a, err
}

// find scans the list for id and returns the record with its index so
// SetConfidence can write back in place.
func (s *redisStore) find(ctx context.Context, id string) (*analyzer.Analysis, int64, error) {
	analyzer.IncrHistoryReads()
	vals, err := s.rdb.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("history: lrange: %w", err)
	}
	for i, v := range vals {
		a, ok := decodeRow([]byte(v))
		if !ok {
			continue
		}
		if a.ID == id {
			return a, int64(i), nil
		}
	}
	return nil, 0, ErrNotFound
}

func (s *redisStore) SetConfidence(ctx context.Context, id, skill string, c analyzer.Confidence) (*analyzer.Analysis, error) {
	a, idx, err := s.find(ctx, id)
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
	if err := s.rdb.LSet(ctx, s.key, idx, raw).Err(); err != nil {
		return nil, fmt.Errorf("history: lset %s: %w", id, err)
	}
	return a, nil
}

func (s *redisStore) Clear(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("history: clear: %w", err)
	}
	return nil
}

func (s *redisStore) Close() error { return s.rdb.Close() }
