package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// mapCache is an in-memory CacheService for tests
type mapCache struct {
	values map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{values: make(map[string][]byte)}
}

func (m *mapCache) Get(key string) ([]byte, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return v, nil
}

func (m *mapCache) Set(key string, value []byte, _ time.Duration) error {
	m.values[key] = value
	return nil
}

func (m *mapCache) Delete(key string) error {
	delete(m.values, key)
	return nil
}

func TestBlockWindow(t *testing.T) {
	c := newMapCache()

	assert.False(t, IsBlocked(c, "gpu"))

	assert.NoError(t, Block(c, "gpu", 30*time.Minute))
	assert.True(t, IsBlocked(c, "gpu"))
	assert.False(t, IsBlocked(c, "cpu"))

	assert.NoError(t, c.Delete(BlockKey("gpu")))
	assert.False(t, IsBlocked(c, "gpu"))
}

func TestNilCacheNeverBlocks(t *testing.T) {
	assert.False(t, IsBlocked(nil, "gpu"))
	assert.NoError(t, Block(nil, "gpu", time.Minute))
}
