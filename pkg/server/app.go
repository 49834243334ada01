package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	pkgch "RegimeCast/pkg/clickhouse"
	"RegimeCast/pkg/config"
	xhttp "RegimeCast/pkg/http"
	pkgkafka "RegimeCast/pkg/kafka"
	applogger "RegimeCast/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	httpServer *xhttp.Server
	chClient   *pkgch.Client
	producer   *pkgkafka.Producer
}

// New creates a new App instance with all dependencies. chClient and
// producer may be nil depending on configuration.
func New(cfg *config.Config, logger *applogger.Logger, handler xhttp.Handler, chClient *pkgch.Client, producer *pkgkafka.Producer) *App {
	httpServer := xhttp.NewServer(handler,
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithRequestMetrics(logger, 2*time.Second),
	)

	return &App{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
		chClient:   chClient,
		producer:   producer,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("serving",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("data_source", a.cfg.DataSource.Type),
	)

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	if a.chClient != nil {
		if err := a.chClient.Close(); err != nil {
			a.logger.Warn("clickhouse close error", applogger.Error(err))
		}
	}
	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Warn("kafka producer close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
