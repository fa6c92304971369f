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
	"local-business-dashboard/dashboard-svc/internal/dashboard"
	"local-business-dashboard/dashboard-svc/internal/gateway"
	"local-business-dashboard/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.ForService(cfg.Logging.Level, cfg.Logging.Format, "dashboard-svc")
	defer log.Sync()

	httpClient := &http.Client{Timeout: 10 * time.Second}

	gw := gateway.NewGateway(gateway.Config{
		BusinessSvcURL: cfg.Dashboard.BusinessSvcURL,
		StatsSvcURL:    cfg.Dashboard.StatsSvcURL,
	}, httpClient, log)
	pages := dashboard.NewPages(dashboard.NewClient(cfg.Dashboard.BusinessSvcURL, httpClient), log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Dashboard.Port),
		Handler:           gw.SetupRoutes(pages),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Dashboard starting",
			zap.String("addr", srv.Addr),
			zap.String("business_svc", cfg.Dashboard.BusinessSvcURL),
		)
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
