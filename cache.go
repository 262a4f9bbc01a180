package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = 30 * time.Minute

// ResultCache stores serialized calculation results keyed by CacheKey
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
}

// CacheKey hashes the namespace and the JSON form of the value.
// Identical parameter sets always map to the same key.
func CacheKey(namespace string, v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	h := xxhash.New()
	h.WriteString(namespace)
	h.WriteString(":")
	h.Write(data)
	return namespace + ":" + strconv.FormatUint(h.Sum64(), 16), nil
}

type memoryCacheEntry struct {
	createdAt time.Time
	value     []byte
}

// MemoryCache is an in-process cache with a fixed time-to-live
type MemoryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryCacheEntry
	now     func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &MemoryCache{
		ttl:     ttl,
		entries: map[string]memoryCacheEntry{},
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !c.now().Before(entry.createdAt.Add(c.ttl)) {
		delete(c.entries, key)
		return nil, false
	}
	value := make([]byte, len(entry.value))
	copy(value, entry.value)
	return value, true
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	c.mu.Lock()
	c.entries[key] = memoryCacheEntry{createdAt: c.now(), value: stored}
	c.mu.Unlock()
	return nil
}

// Len returns the number of entries, expired ones included
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// RedisCache shares results between server instances
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{client: rdb, ttl: ttl}
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("redis cache get %s: %v", key, err)
		}
		return nil, false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, r.ttl).Err()
}

// Ping checks the connection to the redis server
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}

// noCache never stores anything
type noCache struct{}

func (noCache) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (noCache) Set(context.Context, string, []byte) error { return nil }

// NewResultCache builds the cache selected by the config.
// An unreachable redis server falls back to the memory cache.
func NewResultCache(cfg CacheConfig) ResultCache {
	ttl := time.Duration(cfg.TTLMinutes) * time.Minute
	switch cfg.Backend {
	case "none":
		return noCache{}
	case "redis":
		rc := NewRedisCache(cfg.RedisAddr, ttl)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rc.Ping(ctx); err != nil {
			log.Printf("redis cache at %s unavailable (%v), using memory cache", cfg.RedisAddr, err)
			rc.Close()
			return NewMemoryCache(ttl)
		}
		log.Printf("Using redis cache at %s", cfg.RedisAddr)
		return rc
	default:
		return NewMemoryCache(ttl)
	}
}
