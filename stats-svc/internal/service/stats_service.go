package service

import (
	"context"

	"go.uber.org/zap"

	"local-business-dashboard/stats-svc/internal/domain"
)

const (
	DefaultLimit = 5
	MaxLimit     = 50
)

type StatsService struct {
	store StoreInterface
	log   *zap.Logger
}

func NewStatsService(store StoreInterface, log *zap.Logger) *StatsService {
	if log == nil {
		log = zap.NewNop()
	}
	return &StatsService{store: store, log: log}
}

// Usage never fails: a store error yields empty statistics.
func (s *StatsService) Usage(ctx context.Context, limit int) domain.UsageStats {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	stats, err := s.store.Stats(ctx, limit)
	if err != nil {
		s.log.Warn("failed to read usage stats", zap.Error(err))
		return domain.EmptyUsageStats()
	}
	return stats
}
