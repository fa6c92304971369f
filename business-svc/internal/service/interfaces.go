package service

import (
	"context"

	"local-business-dashboard/business-svc/internal/domain"
)

type BusinessServiceInterface interface {
	FetchBusinessData(ctx context.Context, query domain.BusinessQuery) (*domain.BusinessData, error)
	RegenerateHeadline(ctx context.Context, query domain.BusinessQuery) (*domain.HeadlineResponse, error)
	ReviewQRCode(query domain.BusinessQuery) ([]byte, error)
}

type MetricsRandomizer interface {
	Rating() float64
	Reviews() int
}

type HeadlineGenerator interface {
	Generate(name, location string) domain.Headline
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, event domain.GenerationEvent) error
}

type QRGenerator interface {
	Generate(name, location string) ([]byte, error)
}

var _ BusinessServiceInterface = (*BusinessService)(nil)
