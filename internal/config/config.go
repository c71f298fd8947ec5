package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Migrations Migrations

	Cache Cache `validate:"required"`

	Attachments Attachments

	Shipping Shipping `validate:"required"`

	Tracing Tracing
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	Enabled bool
	GroupID string   `validate:"required_if=Enabled true"`
	Brokers []string `validate:"required_if=Enabled true,dive,hostname_port"`
	Topic   string   `validate:"required_if=Enabled true"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
	ConnectTimeout  time.Duration `validate:"gt=0"`
}

type Migrations struct {
	Enabled bool
	Path    string `validate:"required_if=Enabled true"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type Attachments struct {
	// SkipUnresolved drops attachments whose URL matches no stored file instead
	// of passing an empty path to the mailer.
	SkipUnresolved bool
}

type Shipping struct {
	AssetsURL string `validate:"required,url"`
}

type Tracing struct {
	Enabled     bool
	ServiceName string `validate:"required_if=Enabled true"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			Enabled: envBool("KAFKA_ENABLED", true),
			GroupID: env("KAFKA_GROUP_ID", "checkout-addons"),
			Topic:   env("KAFKA_TOPIC", "checkout-events"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "shop"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
			ConnectTimeout:  envDuration("POSTGRES_CONNECT_TIMEOUT", time.Minute),
		},

		Migrations: Migrations{
			Enabled: envBool("MIGRATIONS_ENABLED", true),
			Path:    env("MIGRATIONS_PATH", "file://migrations"),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 64),
			TTL:      envDuration("CACHE_TTL", time.Minute),
		},

		Attachments: Attachments{
			SkipUnresolved: envBool("ATTACHMENTS_SKIP_UNRESOLVED", false),
		},

		Shipping: Shipping{
			AssetsURL: env("SHIPPING_ASSETS_URL", "http://localhost:8080/assets"),
		},

		Tracing: Tracing{
			Enabled:     envBool("TRACING_ENABLED", false),
			ServiceName: env("TRACING_SERVICE_NAME", "checkout-addons"),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
