package cache

import (
	"time"

	"github.com/bradfitz/gomemcache/memcache"
)

// MemcacheService implements CacheService over memcache. It backs the
// per-category cooldown window: the only values it ever holds are the small
// block markers written by Block, so expiry does all the cleanup.
type MemcacheService struct {
	client *memcache.Client
}

var _ CacheService = (*MemcacheService)(nil)

// NewMemcacheService connects to the memcache server at serverAddr. The
// client is lazy; a wrong address surfaces on the first Get, which IsBlocked
// treats as "not blocked".
func NewMemcacheService(serverAddr string) *MemcacheService {
	return &MemcacheService{
		client: memcache.New(serverAddr),
	}
}

// Get retrieves a value, memcache.ErrCacheMiss when the key expired or was
// never set.
func (m *MemcacheService) Get(key string) ([]byte, error) {
	item, err := m.client.Get(key)
	if err != nil {
		return nil, err
	}
	return item.Value, nil
}

// Set stores a value for the given window. Cooldowns are far below the
// 30-day memcache expiration ceiling, so seconds-from-now is always valid.
func (m *MemcacheService) Set(key string, value []byte, expiration time.Duration) error {
	return m.client.Set(&memcache.Item{
		Key:        key,
		Value:      value,
		Expiration: int32(expiration.Seconds()),
	})
}

// Delete drops a key, ending its cooldown early.
func (m *MemcacheService) Delete(key string) error {
	return m.client.Delete(key)
}
