package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/viper"
)

// Config holds the settings shared by business-svc, stats-svc and dashboard-svc.
type Config struct {
	Business  BusinessConfig
	Dashboard DashboardConfig
	Stats     StatsConfig
	Kafka     KafkaConfig
	Redis     RedisConfig
	Logging   LoggingConfig
}

type BusinessConfig struct {
	Port            int
	ReviewSearchURL string
}

type DashboardConfig struct {
	Port           int
	BusinessSvcURL string
	StatsSvcURL    string
}

type StatsConfig struct {
	Port int
}

// KafkaConfig is disabled when Broker is empty.
type KafkaConfig struct {
	Broker  string
	Topic   string
	GroupID string
}

func (k KafkaConfig) Enabled() bool {
	return strings.TrimSpace(k.Broker) != ""
}

type RedisConfig struct {
	Host string
	Port string
}

func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

type LoggingConfig struct {
	Level  string
	Format string
}

var defaults = map[string]any{
	"PORT":              5001,
	"DASHBOARD_PORT":    3000,
	"STATS_PORT":        5002,
	"BUSINESS_SVC_URL":  "http://localhost:5001",
	"STATS_SVC_URL":     "http://localhost:5002",
	"REVIEW_SEARCH_URL": "https://www.google.com/search",
	"KAFKA_BROKER":      "",
	"KAFKA_TOPIC":       "business-events",
	"KAFKA_GROUP_ID":    "stats-svc",
	"REDIS_HOST":        "localhost",
	"REDIS_PORT":        "6379",
	"LOG_LEVEL":         "info",
	"LOG_FORMAT":        "json",
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := &Config{
		Business: BusinessConfig{
			Port:            v.GetInt("PORT"),
			ReviewSearchURL: v.GetString("REVIEW_SEARCH_URL"),
		},
		Dashboard: DashboardConfig{
			Port:           v.GetInt("DASHBOARD_PORT"),
			BusinessSvcURL: strings.TrimRight(v.GetString("BUSINESS_SVC_URL"), "/"),
			StatsSvcURL:    strings.TrimRight(v.GetString("STATS_SVC_URL"), "/"),
		},
		Stats: StatsConfig{
			Port: v.GetInt("STATS_PORT"),
		},
		Kafka: KafkaConfig{
			Broker:  v.GetString("KAFKA_BROKER"),
			Topic:   v.GetString("KAFKA_TOPIC"),
			GroupID: v.GetString("KAFKA_GROUP_ID"),
		},
		Redis: RedisConfig{
			Host: v.GetString("REDIS_HOST"),
			Port: v.GetString("REDIS_PORT"),
		},
		Logging: LoggingConfig{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	for name, port := range map[string]int{
		"PORT":           cfg.Business.Port,
		"DASHBOARD_PORT": cfg.Dashboard.Port,
		"STATS_PORT":     cfg.Stats.Port,
	} {
		if port <= 0 || port > 65535 {
			return fmt.Errorf("%s out of range: %d", name, port)
		}
	}
	if cfg.Dashboard.BusinessSvcURL == "" {
		return fmt.Errorf("BUSINESS_SVC_URL is required")
	}
	return nil
}

func InitRedis(cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr(), err)
	}

	return client, nil
}

func NewKafkaReader(cfg KafkaConfig) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   cfg.Topic,
		GroupID: cfg.GroupID,
	})
}

// NewKafkaWriter returns an async writer so publishing never delays a response.
func NewKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Broker),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		Async:        true,
	}
}
