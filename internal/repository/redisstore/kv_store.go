// Package redisstore backs the usage meter with Redis. All operations swallow
// connectivity errors: a read failure looks like a missing key and a write
// failure is fire-and-forget, matching the meter's degradation contract.
package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	opTimeout = 2 * time.Second
	// Usage records are day-keyed; anything older than two days is garbage.
	entryTTL = 48 * time.Hour
)

type KVStore struct {
	rdb *redis.Client
}

func NewKVStore(rdb *redis.Client) *KVStore {
	return &KVStore{rdb: rdb}
}

func (s *KVStore) Get(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	val, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (s *KVStore) Set(key string, value string) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_ = s.rdb.Set(ctx, key, value, entryTTL).Err()
}

func (s *KVStore) Delete(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_ = s.rdb.Del(ctx, key).Err()
}
