package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents the application configuration
type Config struct {
	// Ingestion API configuration
	IngestBaseURL string
	IngestTimeout time.Duration

	// Price history store configuration
	SQLitePath string

	// Redis configuration
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamCount     int
	RedisStreamMaxLength int

	// Memcache configuration
	MemcacheAddr string

	// Scrape configuration
	Categories    []string
	StoreName     string
	PageSize      int
	PageLimit     int
	ItemLimit     int
	Headless      bool
	LocalResults  bool
	ResultsDir    string
	CrawlInterval time.Duration
	BlockTime     time.Duration

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	streamCount, _ := strconv.Atoi(getEnv("REDIS_STREAM_COUNT", "1"))
	streamMaxLen, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LENGTH", "500"))
	ingestTimeout, _ := strconv.Atoi(getEnv("INGEST_TIMEOUT_SECONDS", "10"))
	pageSize, _ := strconv.Atoi(getEnv("SCRAPE_PAGE_SIZE", "100"))
	pageLimit, _ := strconv.Atoi(getEnv("SCRAPE_PAGE_LIMIT", "5"))
	itemLimit, _ := strconv.Atoi(getEnv("SCRAPE_ITEM_LIMIT", "100"))
	crawlInterval, _ := strconv.Atoi(getEnv("CRAWL_INTERVAL_SECONDS", "3600"))
	blockTime, _ := strconv.Atoi(getEnv("CATEGORY_BLOCK_SECONDS", "1800"))

	return Config{
		IngestBaseURL:        getEnv("INGEST_BASE_URL", "http://localhost:8001/api"),
		IngestTimeout:        time.Duration(ingestTimeout) * time.Second,
		SQLitePath:           getEnv("SQLITE_PATH", "tracksave.db"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:              redisDB,
		RedisStream:          getEnv("REDIS_STREAM", "scraped-products"),
		RedisStreamCount:     streamCount,
		RedisStreamMaxLength: streamMaxLen,
		MemcacheAddr:         getEnv("MEMCACHE_ADDR", "localhost:11211"),
		Categories:           splitList(getEnv("SCRAPE_CATEGORIES", "gpu,cpu,ram,motherboard,keyboard,mouse,monitor,storage,computer")),
		StoreName:            getEnv("STORE_NAME", "Kabum"),
		PageSize:             pageSize,
		PageLimit:            pageLimit,
		ItemLimit:            itemLimit,
		Headless:             getEnv("SCRAPE_HEADLESS", "true") == "true",
		LocalResults:         getEnv("LOCAL_RESULTS", "false") == "true",
		ResultsDir:           getEnv("RESULTS_DIR", "results"),
		CrawlInterval:        time.Duration(crawlInterval) * time.Second,
		BlockTime:            time.Duration(blockTime) * time.Second,
		Environment:          getEnv("TRACKSAVE_ENVIRONMENT", "development"),
	}
}

// Validate checks that the configuration is usable
func (c Config) Validate() error {
	if c.IngestBaseURL == "" {
		return fmt.Errorf("INGEST_BASE_URL must not be empty")
	}
	if c.SQLitePath == "" {
		return fmt.Errorf("SQLITE_PATH must not be empty")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("SCRAPE_PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	if c.PageLimit <= 0 {
		return fmt.Errorf("SCRAPE_PAGE_LIMIT must be positive, got %d", c.PageLimit)
	}
	if c.ItemLimit <= 0 {
		return fmt.Errorf("SCRAPE_ITEM_LIMIT must be positive, got %d", c.ItemLimit)
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("SCRAPE_CATEGORIES must name at least one category")
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
