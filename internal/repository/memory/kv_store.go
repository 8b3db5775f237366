package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// KVStore is the in-memory twin of the Redis usage store, used in tests and
// single-node development. Entries expire after two days; day-keyed usage
// records are stale well before that.
type KVStore struct {
	cache *cache.Cache
}

func NewKVStore() *KVStore {
	c := cache.New(48*time.Hour, 1*time.Hour)
	return &KVStore{
		cache: c,
	}
}

func (s *KVStore) Get(key string) (string, bool) {
	if x, found := s.cache.Get(key); found {
		return x.(string), true
	}
	return "", false
}

func (s *KVStore) Set(key string, value string) {
	s.cache.Set(key, value, cache.DefaultExpiration)
}

func (s *KVStore) Delete(key string) {
	s.cache.Delete(key)
}
