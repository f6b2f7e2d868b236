package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the full service configuration, loaded from environment
// variables.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Events   EventsConfig
	NATS     NATSConfig
	Kafka    KafkaConfig
	Storage  StorageConfig
}

// ServerConfig holds service-level settings.
type ServerConfig struct {
	ServiceName  string
	Environment  string
	LogLevel     string
	ShutdownTime time.Duration
}

// DatabaseConfig holds Postgres settings.
type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Database     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// DSN builds the Postgres connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// EventsConfig selects the event transport.
type EventsConfig struct {
	// Backend is "nats" or "kafka".
	Backend string
}

// NATSConfig holds NATS JetStream settings.
type NATSConfig struct {
	URL           string
	Stream        string
	SubjectPrefix string
	// EncoderResultSubject is where the media encoder reports outcomes.
	EncoderResultSubject string
	EncoderResultQueue   string
}

// KafkaConfig holds Kafka settings.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// StorageConfig selects and configures the media resource storage.
type StorageConfig struct {
	// Type is "s3" or "local".
	Type      string
	LocalPath string
	S3        S3Config
}

// S3Config holds S3 settings.
type S3Config struct {
	Bucket string
	Region string
	Prefix string
}

// Load reads the configuration from the environment, applying defaults
// suitable for local development.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			ServiceName:  getEnv("SERVICE_NAME", "catalog"),
			Environment:  getEnv("ENVIRONMENT", "development"),
			LogLevel:     getEnv("LOG_LEVEL", "info"),
			ShutdownTime: getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnvInt("DB_PORT", 5432),
			User:         getEnv("DB_USER", "catalog"),
			Password:     getEnv("DB_PASSWORD", "catalog"),
			Database:     getEnv("DB_NAME", "catalog"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Events: EventsConfig{
			Backend: getEnv("EVENTS_BACKEND", "nats"),
		},
		NATS: NATSConfig{
			URL:                  getEnv("NATS_URL", "nats://localhost:4222"),
			Stream:               getEnv("NATS_STREAM", "CATALOG"),
			SubjectPrefix:        getEnv("NATS_SUBJECT_PREFIX", "catalog"),
			EncoderResultSubject: getEnv("NATS_ENCODER_RESULT_SUBJECT", "encoder.results"),
			EncoderResultQueue:   getEnv("NATS_ENCODER_RESULT_QUEUE", "catalog-encoder-results"),
		},
		Kafka: KafkaConfig{
			Brokers: getEnvList("KAFKA_BROKERS", []string{"localhost:9092"}),
			Topic:   getEnv("KAFKA_TOPIC", "catalog.events"),
		},
		Storage: StorageConfig{
			Type:      getEnv("STORAGE_TYPE", "local"),
			LocalPath: getEnv("STORAGE_LOCAL_PATH", "/var/lib/catalog/media"),
			S3: S3Config{
				Bucket: getEnv("STORAGE_S3_BUCKET", ""),
				Region: getEnv("STORAGE_S3_REGION", "us-east-1"),
				Prefix: getEnv("STORAGE_S3_PREFIX", "videos"),
			},
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return fallback
}
