package storage

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"local-business-dashboard/stats-svc/internal/domain"
)

const (
	keyTotals    = "stats:total"
	keyTemplates = "stats:templates"
	keyLocations = "stats:locations"
	dailyTTL     = 7 * 24 * time.Hour
)

func dailyKey(t time.Time) string {
	return "stats:daily:" + t.UTC().Format("2006-01-02")
}

type Store struct {
	rdb *redis.Client
	now func() time.Time
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{
		rdb: rdb,
		now: time.Now,
	}
}

// WithClock replaces the clock used for events without a timestamp and for
// "today" lookups.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) RecordEvent(ctx context.Context, event domain.GenerationEvent) error {
	at := event.Timestamp
	if at.IsZero() {
		at = s.now()
	}
	day := dailyKey(at)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, keyTotals, event.Type, 1)
		pipe.HIncrBy(ctx, day, event.Type, 1)
		pipe.Expire(ctx, day, dailyTTL)
		pipe.ZIncrBy(ctx, keyTemplates, 1, strconv.Itoa(event.TemplateIndex))
		if location := strings.TrimSpace(event.Location); location != "" {
			pipe.ZIncrBy(ctx, keyLocations, 1, location)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record %s event: %w", event.Type, err)
	}
	return nil
}

func (s *Store) Stats(ctx context.Context, limit int) (domain.UsageStats, error) {
	stats := domain.EmptyUsageStats()

	totals, err := s.counters(ctx, keyTotals)
	if err != nil {
		return stats, err
	}
	stats.Totals = totals

	today, err := s.counters(ctx, dailyKey(s.now()))
	if err != nil {
		return stats, err
	}
	stats.Today = today

	if stats.TopTemplates, err = s.top(ctx, keyTemplates, limit); err != nil {
		return stats, err
	}
	if stats.TopLocations, err = s.top(ctx, keyLocations, limit); err != nil {
		return stats, err
	}
	return stats, nil
}

func (s *Store) counters(ctx context.Context, key string) (map[string]int64, error) {
	raw, err := s.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	out := make(map[string]int64, len(raw))
	for field, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			continue
		}
		out[field] = n
	}
	return out, nil
}

func (s *Store) top(ctx context.Context, key string, limit int) ([]domain.RankedItem, error) {
	results, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	items := make([]domain.RankedItem, 0, len(results))
	for _, z := range results {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		items = append(items, domain.RankedItem{Name: member, Count: int64(z.Score)})
	}
	return items, nil
}
