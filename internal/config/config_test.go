package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017/testdb")
	t.Setenv("MONGODB_DATABASE", "jazflix_test")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "mongodb://localhost:27017/testdb", cfg.MongoDB.URI)
	require.Equal(t, "jazflix_test", cfg.MongoDB.Database)
	require.Equal(t, "localhost:6380", cfg.Redis.Addr())
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGODB_DATABASE", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("STORE_TIMEOUT", "")
	t.Setenv("MEDIA_URL_TTL", "")
	t.Setenv("STRICT_ID_MATCH", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Empty(t, cfg.MongoDB.URI)
	require.Equal(t, "jazflix", cfg.MongoDB.Database)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, 5*time.Second, cfg.Server.StoreTimeout)
	require.Equal(t, 10*time.Second, cfg.MongoDB.Timeout)
	require.Equal(t, 15*time.Minute, cfg.MinIO.URLTTL)
	require.Equal(t, "jazflix-videos", cfg.MinIO.Bucket)
	require.False(t, cfg.StrictIDMatch)
}

func TestLoadConfig_StrictIDMatch(t *testing.T) {
	t.Setenv("STRICT_ID_MATCH", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.True(t, cfg.StrictIDMatch)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"port":        {"SERVER_PORT": "http"},
		"rate":        {"RATE_LIMIT_ENABLED": "true", "RATE_LIMIT_RPS": "-1"},
		"burst":       {"RATE_LIMIT_ENABLED": "true", "RATE_LIMIT_BURST": "0"},
		"window":      {"RATE_LIMIT_ENABLED": "true", "RATE_LIMIT_USE_REDIS": "true", "RATE_LIMIT_WINDOW_SECONDS": "0"},
		"media ttl":   {"MINIO_ENDPOINT": "localhost:9000", "MEDIA_URL_TTL": "-1m"},
		"store limit": {"STORE_TIMEOUT": "-1s"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}
