package service

import (
	"context"

	"github.com/segmentio/kafka-go"

	"local-business-dashboard/stats-svc/internal/domain"
	"local-business-dashboard/stats-svc/internal/storage"
)

type StoreInterface interface {
	RecordEvent(ctx context.Context, event domain.GenerationEvent) error
	Stats(ctx context.Context, limit int) (domain.UsageStats, error)
}

type StatsInterface interface {
	Usage(ctx context.Context, limit int) domain.UsageStats
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessMessage(ctx context.Context, message kafka.Message) error
}

// MessageReader is the subset of *kafka.Reader the consumer needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ StatsInterface    = (*StatsService)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
