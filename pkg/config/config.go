package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logger struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logger"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Engine struct {
		DefaultAsset       string  `yaml:"default_asset"`
		SeriesLimit        int     `yaml:"series_limit"`
		SmoothingWindow    int     `yaml:"smoothing_window"`
		MaxIterations      int     `yaml:"max_iterations"`
		StabilityThreshold float64 `yaml:"stability_threshold"`
	} `yaml:"engine"`
	DataSource struct {
		Type       string `yaml:"type"` // synthetic, clickhouse, redis
		Timeframe  string `yaml:"timeframe"`
		Seed       int64  `yaml:"seed"`
		ClickHouse struct {
			Host             string        `yaml:"host"`
			Port             int           `yaml:"port"`
			Database         string        `yaml:"database"`
			Table            string        `yaml:"table"`
			User             string        `yaml:"user"`
			Password         string        `yaml:"password"`
			UseHTTP          bool          `yaml:"use_http"`
			DialTimeout      time.Duration `yaml:"dial_timeout"`
			ReadTimeout      time.Duration `yaml:"read_timeout"`
			WriteTimeout     time.Duration `yaml:"write_timeout"`
			MaxExecutionTime time.Duration `yaml:"max_execution_time"`
		} `yaml:"clickhouse"`
		Redis struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"data_source"`
	Kafka struct {
		Enabled      bool     `yaml:"enabled"`
		Brokers      []string `yaml:"brokers"`
		AuditTopic   string   `yaml:"audit_topic"`
		LogTopic     string   `yaml:"log_topic"`
		RequiredAcks int      `yaml:"required_acks"`
		Compression  string   `yaml:"compression"`
		Producer     struct {
			MaxAttempts  int           `yaml:"max_attempts"`
			Linger       time.Duration `yaml:"linger"`
			BatchBytes   int           `yaml:"batch_bytes"`
			BatchSize    int           `yaml:"batch_size"`
			WriteTimeout time.Duration `yaml:"write_timeout"`
			ReadTimeout  time.Duration `yaml:"read_timeout"`
			Async        bool          `yaml:"async"`
		} `yaml:"producer"`
	} `yaml:"kafka"`
	RateLimit struct {
		Enabled      bool    `yaml:"enabled"`
		Capacity     float64 `yaml:"capacity"`
		RefillPerSec float64 `yaml:"refill_per_sec"`
	} `yaml:"ratelimit"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("DATA_SOURCE"); v != "" {
		c.DataSource.Type = v
	}
	if v := os.Getenv("DEFAULT_ASSET"); v != "" {
		c.Engine.DefaultAsset = v
	}
	if v := os.Getenv("SERIES_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 1 {
			c.Engine.SeriesLimit = n
		}
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
		c.Kafka.Enabled = true
	}
	if v := os.Getenv("KAFKA_AUDIT_TOPIC"); v != "" {
		c.Kafka.AuditTopic = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.DataSource.Redis.Addr = v
	}
	if v := os.Getenv("CLICKHOUSE_HOST"); v != "" {
		c.DataSource.ClickHouse.Host = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Engine.DefaultAsset == "" {
		c.Engine.DefaultAsset = "BTC"
	}
	if c.Engine.SeriesLimit == 0 {
		c.Engine.SeriesLimit = 100
	}
	if c.Engine.SmoothingWindow == 0 {
		c.Engine.SmoothingWindow = 3
	}
	if c.Engine.MaxIterations == 0 {
		c.Engine.MaxIterations = 100
	}
	if c.Engine.StabilityThreshold == 0 {
		c.Engine.StabilityThreshold = 0.01
	}
	if c.DataSource.Type == "" {
		c.DataSource.Type = "synthetic"
	}
	if c.DataSource.Timeframe == "" {
		c.DataSource.Timeframe = "1d"
	}
	if c.DataSource.Seed == 0 {
		c.DataSource.Seed = 42
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Format == "" {
		c.Logger.Format = "console"
	}
	if c.Logger.Output == "" {
		c.Logger.Output = "stdout"
	}
	if c.RateLimit.Capacity == 0 {
		c.RateLimit.Capacity = 20
	}
	if c.RateLimit.RefillPerSec == 0 {
		c.RateLimit.RefillPerSec = 5
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	switch c.DataSource.Type {
	case "synthetic", "clickhouse", "redis":
	default:
		return fmt.Errorf("data_source.type must be 'synthetic', 'clickhouse' or 'redis', got '%s'", c.DataSource.Type)
	}
	if c.DataSource.Type == "clickhouse" && c.DataSource.ClickHouse.Host == "" {
		return fmt.Errorf("data_source.clickhouse.host is required")
	}
	if c.DataSource.Type == "redis" && c.DataSource.Redis.Addr == "" {
		return fmt.Errorf("data_source.redis.addr is required")
	}
	if c.Engine.SeriesLimit < 2 {
		return fmt.Errorf("engine.series_limit must be at least 2")
	}
	if c.Engine.MaxIterations < 1 {
		return fmt.Errorf("engine.max_iterations must be at least 1")
	}
	if c.Engine.StabilityThreshold <= 0 || c.Engine.StabilityThreshold > 1 {
		return fmt.Errorf("engine.stability_threshold must be in (0, 1]")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers cannot be empty when kafka is enabled")
	}
	return nil
}
