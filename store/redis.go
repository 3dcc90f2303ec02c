package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBlobStore keeps the collection blob under a single Redis key. Useful
// when several service instances should see the same collection; writes are
// still last-write-wins with no cross-instance coordination.
type RedisBlobStore struct {
	client *redis.Client
	key    string
}

// NewRedisBlobStore connects to Redis from a URL ("redis://host:port/db")
// and pings it before returning.
func NewRedisBlobStore(redisURL, key string) (*RedisBlobStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisBlobStore{client: client, key: key}, nil
}

func (r *RedisBlobStore) Load() ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := r.client.Get(ctx, r.key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (r *RedisBlobStore) Save(data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// No expiration: the blob is the system of record, not a cache entry.
	return r.client.Set(ctx, r.key, data, 0).Err()
}

// Close releases the underlying Redis connection.
func (r *RedisBlobStore) Close() error {
	return r.client.Close()
}
