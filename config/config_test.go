package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	// Test with default values
	config := LoadConfig()
	assert.Equal(t, "http://localhost:8001/api", config.IngestBaseURL)
	assert.Equal(t, "localhost:6379", config.RedisAddr)
	assert.Equal(t, 0, config.RedisDB)
	assert.Equal(t, "localhost:11211", config.MemcacheAddr)
	assert.Equal(t, 100, config.PageSize)
	assert.Equal(t, 10*time.Second, config.IngestTimeout)
	assert.Equal(t, time.Hour, config.CrawlInterval)
	assert.True(t, config.Headless)
	assert.Len(t, config.Categories, 9)

	// Test with environment variables
	os.Setenv("INGEST_BASE_URL", "http://ingest.example.com/api")
	os.Setenv("REDIS_ADDR", "redis.example.com:6379")
	os.Setenv("SCRAPE_CATEGORIES", "gpu, cpu")
	os.Setenv("SCRAPE_PAGE_SIZE", "20")
	os.Setenv("SCRAPE_HEADLESS", "false")
	os.Setenv("CRAWL_INTERVAL_SECONDS", "30")

	config = LoadConfig()
	assert.Equal(t, "http://ingest.example.com/api", config.IngestBaseURL)
	assert.Equal(t, "redis.example.com:6379", config.RedisAddr)
	assert.Equal(t, []string{"gpu", "cpu"}, config.Categories)
	assert.Equal(t, 20, config.PageSize)
	assert.False(t, config.Headless)
	assert.Equal(t, 30*time.Second, config.CrawlInterval)

	// Clean up
	os.Unsetenv("INGEST_BASE_URL")
	os.Unsetenv("REDIS_ADDR")
	os.Unsetenv("SCRAPE_CATEGORIES")
	os.Unsetenv("SCRAPE_PAGE_SIZE")
	os.Unsetenv("SCRAPE_HEADLESS")
	os.Unsetenv("CRAWL_INTERVAL_SECONDS")
}

func TestValidate(t *testing.T) {
	config := LoadConfig()
	assert.NoError(t, config.Validate())

	config.IngestBaseURL = ""
	assert.Error(t, config.Validate())

	config = LoadConfig()
	config.PageSize = 0
	assert.Error(t, config.Validate())

	config = LoadConfig()
	config.Categories = nil
	assert.Error(t, config.Validate())
}
