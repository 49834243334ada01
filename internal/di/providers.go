package di

import (
	"context"
	"fmt"
	"time"

	domsvc "RegimeCast/internal/domain/service"
	"RegimeCast/internal/engine"
	"RegimeCast/internal/handler/api"
	"RegimeCast/internal/library"
	internalrepo "RegimeCast/internal/repository"
	"RegimeCast/internal/router"
	"RegimeCast/internal/service/ratelimit"
	"RegimeCast/internal/usecase"
	pkgch "RegimeCast/pkg/clickhouse"
	"RegimeCast/pkg/config"
	xhttp "RegimeCast/pkg/http"
	pkgkafka "RegimeCast/pkg/kafka"
	applogger "RegimeCast/pkg/logger"
	"RegimeCast/pkg/metrics"
	"RegimeCast/pkg/server"

	"github.com/redis/go-redis/v9"
)

// ProvideKafkaProducer creates a Kafka producer, or nil when Kafka is
// disabled.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvideLogger creates the application logger; when a Kafka producer and
// log topic are configured, aggregated error logs flow to that topic.
func ProvideLogger(cfg *config.Config, producer *pkgkafka.Producer) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		Output: cfg.Logger.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	if producer != nil && cfg.Kafka.LogTopic != "" {
		l.AddCollector(&applogger.CollectionConfig{
			TimeInterval:   30 * time.Second,
			CountThreshold: 100,
			Topic:          cfg.Kafka.LogTopic,
			Publisher:      internalrepo.NewKafkaLogPublisher(producer),
		})
	}
	return l, nil
}

// ProvideClickHouseClient creates a ClickHouse client when configured as the
// data source, otherwise nil.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	if cfg.DataSource.Type != "clickhouse" {
		return nil, nil
	}
	ch := cfg.DataSource.ClickHouse
	client, err := pkgch.NewClient(
		pkgch.WithHost(ch.Host),
		pkgch.WithPort(ch.Port),
		pkgch.WithDatabase(ch.Database),
		pkgch.WithCredentials(ch.User, ch.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(ch.UseHTTP),
		pkgch.WithTimeouts(ch.DialTimeout, ch.ReadTimeout, ch.WriteTimeout),
		pkgch.WithMaxExecutionTime(ch.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.InitSchema(ctx, []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", ch.Database),
		fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (symbol String, tf String, bucket DateTime, close Float64) ENGINE=MergeTree ORDER BY (symbol, tf, bucket)", ch.Table),
	}); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}
	return client, nil
}

// ProvidePriceSource selects the configured price data backend.
func ProvidePriceSource(cfg *config.Config, chClient *pkgch.Client, l *applogger.Logger) (domsvc.PriceSource, error) {
	switch cfg.DataSource.Type {
	case "clickhouse":
		src := internalrepo.NewCHPriceSource(chClient, cfg.DataSource.ClickHouse.Table, cfg.DataSource.Timeframe)
		src.SetLogger(l)
		return src, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.DataSource.Redis.Addr,
			Password: cfg.DataSource.Redis.Password,
			DB:       cfg.DataSource.Redis.DB,
		})
		return internalrepo.NewRedisPriceSource(client, cfg.DataSource.Timeframe), nil
	case "synthetic":
		return internalrepo.NewSyntheticPriceSource(cfg.DataSource.Seed), nil
	default:
		return nil, fmt.Errorf("unknown data source type %q", cfg.DataSource.Type)
	}
}

// ProvideRouter creates the deterministic keyword intent router.
func ProvideRouter() domsvc.IntentRouter {
	return router.NewKeywordRouter()
}

// ProvideEngine assembles the execution engine with the frozen registry.
func ProvideEngine(cfg *config.Config, intents domsvc.IntentRouter, source domsvc.PriceSource) *engine.Engine {
	registry := engine.NewRegistry(library.Functions())
	resolver := engine.NewAssetResolver(source)
	return engine.New(intents, registry, resolver,
		engine.WithDefaultAsset(cfg.Engine.DefaultAsset),
		engine.WithSeriesLimit(cfg.Engine.SeriesLimit),
		engine.WithSmoother(library.SmoothRegime, cfg.Engine.SmoothingWindow),
		engine.WithMaxIterationsCap(cfg.Engine.MaxIterations),
		engine.WithStabilityThreshold(cfg.Engine.StabilityThreshold),
	)
}

// ProvideOrchestrator wraps the engine with logging, metrics, and auditing.
func ProvideOrchestrator(cfg *config.Config, eng *engine.Engine, l *applogger.Logger, producer *pkgkafka.Producer) *usecase.Orchestrator {
	orch := usecase.NewOrchestrator(eng, l)
	if cfg.Metrics.Enabled {
		orch.SetMetrics(metrics.New())
	}
	if producer != nil && cfg.Kafka.AuditTopic != "" {
		orch.SetAuditPublisher(internalrepo.NewKafkaAuditPublisher(producer, cfg.Kafka.AuditTopic))
	}
	return orch
}

// ProvideHandler creates the Echo HTTP handler with optional rate limiting.
func ProvideHandler(cfg *config.Config, l *applogger.Logger, orch *usecase.Orchestrator) xhttp.Handler {
	var limiter *ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		limiter = ratelimit.New()
	}
	return api.NewQueryEchoHandler(l, orch, limiter, api.RateConfig{
		Capacity:     cfg.RateLimit.Capacity,
		RefillPerSec: cfg.RateLimit.RefillPerSec,
	})
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, handler xhttp.Handler, chClient *pkgch.Client, producer *pkgkafka.Producer) *server.App {
	return server.New(cfg, l, handler, chClient, producer)
}
