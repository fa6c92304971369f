package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httpapi "local-business-dashboard/business-svc/internal/api/http"
	"local-business-dashboard/business-svc/internal/generator"
	"local-business-dashboard/business-svc/internal/service"
	"local-business-dashboard/business-svc/internal/storage"
	"local-business-dashboard/config"
	"local-business-dashboard/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.ForService(cfg.Logging.Level, cfg.Logging.Format, "business-svc")
	defer log.Sync()

	var publisher service.EventPublisher
	if cfg.Kafka.Enabled() {
		writer := config.NewKafkaWriter(cfg.Kafka)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
		log.Info("publishing generation events", zap.String("broker", cfg.Kafka.Broker), zap.String("topic", cfg.Kafka.Topic))
	} else {
		log.Info("KAFKA_BROKER not set, generation events disabled")
	}

	src := generator.DefaultSource()
	businessService := service.NewBusinessService(
		generator.NewRandomizer(src),
		generator.NewHeadlineGenerator(src),
		service.DefaultQRGenerator{SearchURL: cfg.Business.ReviewSearchURL},
		publisher,
		log,
	)

	handler := httpapi.NewRouter(httpapi.NewHandler(businessService), log)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Business.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Business Service starting", zap.String("addr", srv.Addr))
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
