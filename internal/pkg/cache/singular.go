package cache

import (
	"errors"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("cache: key not found")

// Singular caches exactly one value of T in process memory.
type Singular[T any] struct {
	// m serializes MutexGetSet misses so valueFunc runs once per expiry
	m sync.Mutex

	key string
	c   *cache.Cache
}

func NewSingular[T any](key string) *Singular[T] {
	return &Singular[T]{
		key: key,
		c:   cache.New(cache.NoExpiration, time.Minute*10),
	}
}

func (c *Singular[T]) Get() (T, error) {
	result, ok := c.c.Get(c.key)
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return result.(T), nil
}

func (c *Singular[T]) Set(value T, expire time.Duration) {
	c.c.Set(c.key, value, expire)
}

// MutexGetSet returns the cached value, or computes it with valueFunc, caches it for expire and
// returns it. Concurrent misses are serialized so valueFunc is called once.
func (c *Singular[T]) MutexGetSet(valueFunc func() (T, error), expire time.Duration) (T, error) {
	if value, err := c.Get(); err == nil {
		return value, nil
	}

	c.m.Lock()
	defer c.m.Unlock()

	if value, err := c.Get(); err == nil {
		return value, nil
	}

	value, err := valueFunc()
	if err != nil {
		log.Error().Err(err).Str("key", c.key).Msg("failed to get value from valueFunc() in MutexGetSet")
		var zero T
		return zero, err
	}

	c.Set(value, expire)
	return value, nil
}

func (c *Singular[T]) Delete() {
	c.c.Delete(c.key)
}
