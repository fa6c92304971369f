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

	"local-business-dashboard/config"
	"local-business-dashboard/logger"
	httpapi "local-business-dashboard/stats-svc/internal/api/http"
	"local-business-dashboard/stats-svc/internal/service"
	"local-business-dashboard/stats-svc/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.ForService(cfg.Logging.Level, cfg.Logging.Format, "stats-svc")
	defer log.Sync()

	rdb, err := config.InitRedis(cfg.Redis)
	if err != nil {
		log.Fatal("redis unavailable", zap.Error(err))
	}
	defer rdb.Close()

	store := storage.NewStore(rdb)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Kafka.Enabled() {
		reader := config.NewKafkaReader(cfg.Kafka)
		defer reader.Close()
		consumer := service.NewConsumer(reader, store, log)
		go consumer.Start(ctx)
		log.Info("consuming generation events",
			zap.String("broker", cfg.Kafka.Broker),
			zap.String("topic", cfg.Kafka.Topic),
			zap.String("group_id", cfg.Kafka.GroupID),
		)
	} else {
		log.Info("KAFKA_BROKER not set, serving stats without a consumer")
	}

	handler := httpapi.NewRouter(httpapi.NewHandler(service.NewStatsService(store, log)), log)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Stats.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Stats Service starting", zap.String("addr", srv.Addr))
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

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
