package listings

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Cache stores raw provider responses keyed by search URL. The scraping APIs
// bill per request, so a repeated search should not hit the network twice.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// MemoryCache is a process-local Cache, good enough for a single CLI run and
// for tests.
type MemoryCache struct {
	data map[string]string
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string]string)}
}

func (m *MemoryCache) Get(key string) (string, bool) {
	val, ok := m.data[key]
	return val, ok
}

func (m *MemoryCache) Set(key string, value string) error {
	m.data[key] = value
	return nil
}

// RedisCache shares fetched responses across runs and machines.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ctx:    context.Background(),
	}
}

func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(key string, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}
