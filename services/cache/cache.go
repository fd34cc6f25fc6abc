package cache

import (
	"time"
)

// CacheService represents a generic cache service
type CacheService interface {
	// Get retrieves a value from the cache
	Get(key string) ([]byte, error)

	// Set stores a value in the cache with an expiration time
	Set(key string, value []byte, expiration time.Duration) error

	// Delete removes a value from the cache
	Delete(key string) error
}

// blockKeyPrefix namespaces the per-category crawl cooldown markers
const blockKeyPrefix = "tracksave_block_"

// BlockKey returns the cooldown marker key for a category
func BlockKey(category string) string {
	return blockKeyPrefix + category
}

// IsBlocked reports whether a category is inside its crawl cooldown window.
// Cache errors (including a plain miss) mean "not blocked": the cooldown is
// an optimization, never a gate that can wedge shut.
func IsBlocked(c CacheService, category string) bool {
	if c == nil {
		return false
	}
	_, err := c.Get(BlockKey(category))
	return err == nil
}

// Block marks a category as crawled for the cooldown duration.
func Block(c CacheService, category string, cooldown time.Duration) error {
	if c == nil {
		return nil
	}
	return c.Set(BlockKey(category), []byte("1"), cooldown)
}
