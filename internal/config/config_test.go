package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "CATALOG_SOURCE", "MONGO_URI", "QUERY_CACHE_TTL", "RECEIPT_SECRET", "API_ALLOWED_ORIGINS", "LOG_LEVEL", "NOTIFY_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, CatalogSourceFixture, cfg.CatalogSource)
	assert.False(t, cfg.UsesMongo())
	assert.Equal(t, 5*time.Minute, cfg.QueryCacheTTL)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "@every 5m", cfg.NotifyRetrySchedule)
	assert.Equal(t, 2*time.Second, cfg.NotifyTimeout)
	assert.NotEmpty(t, cfg.ReceiptSecret, "a random secret is generated")
	assert.Equal(t, logrus.InfoLevel, cfg.ServerLog.GetLevel())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "Mongo")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("API_ALLOWED_ORIGINS", "https://havenrealty.example, ,http://localhost:3000")
	t.Setenv("QUERY_CACHE_SIZE", "250")
	t.Setenv("RECEIPT_SECRET", "s3cret")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, CatalogSourceMongo, cfg.CatalogSource)
	assert.True(t, cfg.UsesMongo())
	assert.Equal(t, []string{"https://havenrealty.example", "http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, int64(250), cfg.QueryCacheSize)
	assert.Equal(t, []byte("s3cret"), cfg.ReceiptSecret)
	assert.Equal(t, logrus.DebugLevel, cfg.ServerLog.GetLevel())
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown source":       {"CATALOG_SOURCE": "csv"},
		"mongo source, no uri": {"CATALOG_SOURCE": "mongo", "MONGO_URI": ""},
		"bad duration":         {"QUERY_CACHE_TTL": "soon"},
		"negative cache size":  {"QUERY_CACHE_SIZE": "-1"},
		"zero notify timeout":  {"NOTIFY_TIMEOUT": "0s"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for key, value := range env {
				t.Setenv(key, value)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
