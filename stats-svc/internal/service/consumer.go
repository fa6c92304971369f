package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"local-business-dashboard/metrics"
	"local-business-dashboard/stats-svc/internal/domain"
)

var ErrUnknownEvent = errors.New("unknown event type")

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Log    *zap.Logger
}

func NewConsumer(reader MessageReader, store StoreInterface, log *zap.Logger) *Consumer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Consumer{
		Reader: reader,
		Store:  store,
		Log:    log,
	}
}

// Start reads until ctx is cancelled. Bad messages are logged and skipped.
func (c *Consumer) Start(ctx context.Context) {
	c.logger().Info("starting generation event consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger().Info("consumer stopped")
				return
			}
			c.logger().Error("error reading message", zap.Error(err))
			continue
		}

		if err := c.ProcessMessage(ctx, message); err != nil && !errors.Is(err, ErrUnknownEvent) {
			c.logger().Error("error processing message",
				zap.Int64("offset", message.Offset),
				zap.Error(err),
			)
		}
	}
}

func (c *Consumer) ProcessMessage(ctx context.Context, message kafka.Message) error {
	var event domain.GenerationEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		metrics.StatsEventsProcessed.WithLabelValues("invalid", "error").Inc()
		return fmt.Errorf("failed to decode event: %w", err)
	}

	if !event.Known() {
		metrics.StatsEventsProcessed.WithLabelValues("unknown", "skipped").Inc()
		c.logger().Debug("skipping event", zap.String("type", event.Type))
		return ErrUnknownEvent
	}

	if err := c.Store.RecordEvent(ctx, event); err != nil {
		metrics.StatsEventsProcessed.WithLabelValues(event.Type, "error").Inc()
		return err
	}

	metrics.StatsEventsProcessed.WithLabelValues(event.Type, "ok").Inc()
	c.logger().Debug("recorded event",
		zap.String("type", event.Type),
		zap.String("location", event.Location),
		zap.Int("template_index", event.TemplateIndex),
	)
	return nil
}

func (c *Consumer) logger() *zap.Logger {
	if c.Log == nil {
		return zap.NewNop()
	}
	return c.Log
}
