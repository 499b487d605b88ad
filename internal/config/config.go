package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	// CatalogSourceFixture serves the compiled-in catalogue.
	CatalogSourceFixture = "fixture"
	// CatalogSourceMongo loads the catalogue from MongoDB once at startup.
	CatalogSourceMongo = "mongo"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr      string
	ServerLog *logrus.Logger

	CatalogSource                string
	MongoURI                     string
	MongoDatabase                string
	PropertyCollection           string
	AgentCollection              string
	InquiryCollection            string
	FailedNotificationCollection string
	Timeout                      time.Duration

	AllowedOrigins []string

	QueryCacheTTL  time.Duration
	QueryCacheSize int64
	RedisAddr      string
	RedisPassword  string
	MemcachedHost  string

	SendGridAPIKey    string
	SendGridFromEmail string
	OfficeEmail       string
	OrganizationName  string
	RabbitMQURL       string
	InquiryQueue      string

	ReceiptSecret       []byte
	ReceiptIssuer       string
	ReceiptTTL          time.Duration
	NotifyRetrySchedule string
	NotifyTimeout       time.Duration
}

// UsesMongo reports whether any component needs a MongoDB connection.
func (c Config) UsesMongo() bool {
	return c.CatalogSource == CatalogSourceMongo || c.MongoURI != ""
}

// Load reads a local .env file when present, then environment variables, and returns a fully populated Config.
func Load() (Config, error) {
	envErr := godotenv.Load()

	logger := NewLogger("listings-api")
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		logger.WithError(envErr).Warn("failed to read .env file")
	}

	timeout, err := parseDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	cacheTTL, err := parseDuration("QUERY_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return Config{}, err
	}
	receiptTTL, err := parseDuration("RECEIPT_TTL", 30*24*time.Hour)
	if err != nil {
		return Config{}, err
	}
	notifyTimeout, err := parseDuration("NOTIFY_TIMEOUT", 2*time.Second)
	if err != nil {
		return Config{}, err
	}
	cacheSize, err := parseInt("QUERY_CACHE_SIZE", 1000)
	if err != nil {
		return Config{}, err
	}

	source := strings.ToLower(envOrDefault("CATALOG_SOURCE", CatalogSourceFixture))
	if source != CatalogSourceFixture && source != CatalogSourceMongo {
		return Config{}, fmt.Errorf("CATALOG_SOURCE must be %q or %q, got %q", CatalogSourceFixture, CatalogSourceMongo, source)
	}
	mongoURI := strings.TrimSpace(os.Getenv("MONGO_URI"))
	if source == CatalogSourceMongo && mongoURI == "" {
		return Config{}, errors.New("CATALOG_SOURCE=mongo requires MONGO_URI")
	}

	receiptSecret := strings.TrimSpace(os.Getenv("RECEIPT_SECRET"))
	if receiptSecret == "" {
		receiptSecret = uuid.NewString()
		logger.Warn("RECEIPT_SECRET not set; inquiry receipts will not survive a restart")
	}

	cfg := Config{
		Addr:                         envOrDefault("HTTP_ADDR", ":8080"),
		ServerLog:                    logger,
		CatalogSource:                source,
		MongoURI:                     mongoURI,
		MongoDatabase:                envOrDefault("MONGO_DB", "haven-realty"),
		PropertyCollection:           envOrDefault("PROPERTY_COLLECTION", "properties"),
		AgentCollection:              envOrDefault("AGENT_COLLECTION", "agents"),
		InquiryCollection:            envOrDefault("INQUIRY_COLLECTION", "inquiries"),
		FailedNotificationCollection: envOrDefault("FAILED_NOTIFICATION_COLLECTION", "failed_notifications"),
		Timeout:                      timeout,
		AllowedOrigins:               parseList("API_ALLOWED_ORIGINS", []string{"*"}),
		QueryCacheTTL:                cacheTTL,
		QueryCacheSize:               int64(cacheSize),
		RedisAddr:                    strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword:                os.Getenv("REDIS_PASSWORD"),
		MemcachedHost:                strings.TrimSpace(os.Getenv("MEMCACHED_HOST")),
		SendGridAPIKey:               strings.TrimSpace(os.Getenv("SENDGRID_API_KEY")),
		SendGridFromEmail:            envOrDefault("SENDGRID_FROM_EMAIL", "listings@havenrealty.example"),
		OfficeEmail:                  envOrDefault("OFFICE_EMAIL", "office@havenrealty.example"),
		OrganizationName:             envOrDefault("ORGANIZATION_NAME", "Haven Realty"),
		RabbitMQURL:                  strings.TrimSpace(os.Getenv("RABBITMQ_URL")),
		InquiryQueue:                 envOrDefault("INQUIRY_QUEUE", "inquiries"),
		ReceiptSecret:                []byte(receiptSecret),
		ReceiptIssuer:                envOrDefault("RECEIPT_ISSUER", "listings-api"),
		ReceiptTTL:                   receiptTTL,
		NotifyRetrySchedule:          envOrDefault("NOTIFY_RETRY_SCHEDULE", "@every 5m"),
		NotifyTimeout:                notifyTimeout,
	}

	logger.WithFields(logrus.Fields{
		"addr":      cfg.Addr,
		"catalog":   cfg.CatalogSource,
		"mongo":     cfg.MongoURI != "",
		"redis":     cfg.RedisAddr != "",
		"memcached": cfg.MemcachedHost != "",
		"sendgrid":  cfg.SendGridAPIKey != "",
		"rabbitmq":  cfg.RabbitMQURL != "",
	}).Info("loaded config")

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, raw)
	}
	return parsed, nil
}

func parseInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return parsed, nil
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
