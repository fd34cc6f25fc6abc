package publisher

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisPublisher(t *testing.T) {
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   0,
	})
	defer client.Close()

	if _, err := client.Ping(ctx).Result(); err != nil {
		t.Skip("Redis is not available, skipping test")
	}

	// single shard so the stream name is deterministic
	pub := NewRedisPublisher(ctx, "localhost:6379", 0, "test_tracksave", 1, 100)
	defer pub.Close()

	stream := "test_tracksave:0"
	client.Del(ctx, stream)

	err := pub.Publish("gpu", []byte(`[{"name":"test"}]`))
	require.NoError(t, err)

	deadline := time.Now().Add(2 * time.Second)
	for {
		entries, err := client.XRange(ctx, stream, "-", "+").Result()
		require.NoError(t, err)
		if len(entries) > 0 {
			encoded, ok := entries[0].Values["gpu"].(string)
			require.True(t, ok)
			decoded, err := base64.StdEncoding.DecodeString(encoded)
			require.NoError(t, err)
			assert.Equal(t, `[{"name":"test"}]`, string(decoded))
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("Timed out waiting for stream entry")
		}
		time.Sleep(50 * time.Millisecond)
	}

	assert.NoError(t, pub.TrimStreams())
	client.Del(ctx, stream)
}
