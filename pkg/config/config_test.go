package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("SERVER_PORT", "8081")
	os.Setenv("DB_HOST", "db.internal")
	os.Setenv("DB_PORT", "5433")
	os.Setenv("DB_USER", "testuser")
	os.Setenv("DB_PASSWORD", "testpass")
	os.Setenv("DB_NAME", "testdb")
	os.Setenv("REDIS_HOST", "cache.internal")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("JWT_SECRET", "test-secret")
	defer func() {
		for _, key := range []string{"SERVER_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "REDIS_HOST", "REDIS_PORT", "JWT_SECRET"} {
			os.Unsetenv(key)
		}
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.NotNil(t, cfg)
	assert.Equal(t, "8081", cfg.ServerPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "testuser", cfg.DBUser)
	assert.Equal(t, "testpass", cfg.DBPassword)
	assert.Equal(t, "testdb", cfg.DBName)
	assert.Equal(t, "cache.internal", cfg.RedisHost)
	assert.Equal(t, "6380", cfg.RedisPort)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "DB_HOST", "DB_PORT", "DB_NAME", "REDIS_DB", "S3_BUCKET_NAME", "RABBITMQ_HOST", "RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW_SECONDS"} {
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "guestbook", cfg.DBName)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 100, cfg.RateLimitRequests)
	assert.Equal(t, 60*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, "guestbook-avatars", cfg.S3BucketName)
	assert.Equal(t, "localhost", cfg.RabbitMQHost)
}

func TestLoadConfig_RedisDBParsing(t *testing.T) {
	os.Setenv("REDIS_DB", "3")
	defer os.Unsetenv("REDIS_DB")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 3, cfg.RedisDB)

	os.Setenv("REDIS_DB", "not-a-number")
	cfg, err = Load()
	assert.NoError(t, err)
	assert.Equal(t, 0, cfg.RedisDB)
}
