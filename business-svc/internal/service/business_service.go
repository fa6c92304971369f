package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"local-business-dashboard/business-svc/internal/domain"
	"local-business-dashboard/metrics"
)

var (
	ErrMissingBusinessData = errors.New("name and location are required")
	ErrMissingQueryParams  = errors.New("name and location query parameters are required")
)

type BusinessService struct {
	randomizer MetricsRandomizer
	headlines  HeadlineGenerator
	qrcodes    QRGenerator
	publisher  EventPublisher
	log        *zap.Logger
	now        func() time.Time
}

// NewBusinessService wires the generators. publisher may be nil, in which
// case no generation events are emitted.
func NewBusinessService(randomizer MetricsRandomizer, headlines HeadlineGenerator, qrcodes QRGenerator, publisher EventPublisher, log *zap.Logger) *BusinessService {
	if log == nil {
		log = zap.NewNop()
	}
	return &BusinessService{
		randomizer: randomizer,
		headlines:  headlines,
		qrcodes:    qrcodes,
		publisher:  publisher,
		log:        log,
		now:        time.Now,
	}
}

func (s *BusinessService) FetchBusinessData(ctx context.Context, query domain.BusinessQuery) (*domain.BusinessData, error) {
	if !query.Complete() {
		return nil, ErrMissingBusinessData
	}

	rating := s.randomizer.Rating()
	reviews := s.randomizer.Reviews()
	headline := s.headlines.Generate(query.Name, query.Location)
	metrics.BusinessGenerations.WithLabelValues("business_data").Inc()

	s.publish(ctx, domain.GenerationEvent{
		Type:          domain.EventBusinessDataGenerated,
		Name:          query.Name,
		Location:      query.Location,
		TemplateIndex: headline.TemplateIndex,
		Rating:        &rating,
		Reviews:       &reviews,
	})

	return &domain.BusinessData{
		Rating:   rating,
		Reviews:  reviews,
		Headline: headline.Text,
	}, nil
}

func (s *BusinessService) RegenerateHeadline(ctx context.Context, query domain.BusinessQuery) (*domain.HeadlineResponse, error) {
	if !query.Complete() {
		return nil, ErrMissingQueryParams
	}

	headline := s.headlines.Generate(query.Name, query.Location)
	metrics.BusinessGenerations.WithLabelValues("headline").Inc()

	s.publish(ctx, domain.GenerationEvent{
		Type:          domain.EventHeadlineRegenerated,
		Name:          query.Name,
		Location:      query.Location,
		TemplateIndex: headline.TemplateIndex,
	})

	return &domain.HeadlineResponse{Headline: headline.Text}, nil
}

func (s *BusinessService) ReviewQRCode(query domain.BusinessQuery) ([]byte, error) {
	if !query.Complete() {
		return nil, ErrMissingQueryParams
	}
	return s.qrcodes.Generate(query.Name, query.Location)
}

// publish never fails the caller; the response does not depend on delivery.
func (s *BusinessService) publish(ctx context.Context, event domain.GenerationEvent) {
	if s.publisher == nil {
		return
	}
	event.Timestamp = s.now().UTC()
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		s.log.Warn("failed to publish generation event",
			zap.String("type", event.Type),
			zap.Error(err),
		)
	}
}
