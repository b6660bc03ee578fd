package cache

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/vmihailenco/msgpack/v5"
)

func NewSet[T any](client *redis.Client, prefix string) *Set[T] {
	return &Set[T]{
		client: client,
		prefix: prefix + ":",
	}
}

// Set is a redis-backed cache holding values of one shape under many keys.
// Values travel as msgpack.
type Set[T any] struct {
	// m is a mutex for MutexGetSet for concurrent prevention
	m sync.Mutex

	client *redis.Client
	prefix string
}

func (c *Set[T]) key(key string) string {
	return c.prefix + key
}

func (c *Set[T]) Get(key string) (T, error) {
	var value T
	key = c.key(key)
	resp, err := c.client.Get(context.Background(), key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Error().Err(err).Str("key", key).Msg("failed to get value from redis")
		}
		return value, err
	}
	if err := msgpack.Unmarshal(resp, &value); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to unmarshal value from msgpack from redis")
		return value, err
	}
	return value, nil
}

func (c *Set[T]) Set(key string, value T, expire time.Duration) error {
	key = c.key(key)
	b, err := msgpack.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to marshal value with msgpack")
		return err
	}
	if err := c.client.Set(context.Background(), key, b, expire).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to set value to redis")
		return err
	}
	return nil
}

// MutexGetSet returns the cached value under key, or if it does not exist,
// executes valueFunc exactly once among concurrent callers, caches the
// result, and returns it.
func (c *Set[T]) MutexGetSet(key string, valueFunc func() (T, error), expire time.Duration) (T, error) {
	value, err := c.Get(key)
	if err == nil {
		return value, nil
	} else if !errors.Is(err, redis.Nil) {
		log.Error().Err(err).Str("key", key).Msg("failed to get value from redis in MutexGetSet")
		return value, err
	}
	// onwards, cache key does not exist

	return c.slowMutexGetSet(key, valueFunc, expire)
}

func (c *Set[T]) slowMutexGetSet(key string, valueFunc func() (T, error), expire time.Duration) (T, error) {
	c.m.Lock()
	defer c.m.Unlock()
	value, err := c.Get(key)
	if err == nil {
		return value, nil
	} else if !errors.Is(err, redis.Nil) {
		log.Error().Err(err).Str("key", key).Msg("failed to get value from redis in MutexGetSet inner check")
		return value, err
	}

	value, err = valueFunc()
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to get value from valueFunc() in MutexGetSet")
		return value, err
	}

	if err := c.Set(key, value, expire); err != nil {
		return value, err
	}
	return value, nil
}

func (c *Set[T]) Delete(key string) error {
	key = c.key(key)
	if err := c.client.Del(context.Background(), key).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete value from redis")
		return err
	}
	return nil
}

func (c *Set[T]) Clear() error {
	script := redis.NewScript(`local keys = redis.call('keys', ARGV[1])
		for i=1,#keys,5000 do
			redis.call('del', unpack(keys, i, math.min(i+4999, #keys)))
		end
	return keys`)
	err := script.Eval(context.Background(), c.client, []string{}, []string{c.prefix + "*"}).Err()
	if err != nil {
		log.Error().Err(err).Str("prefix", c.prefix).Msg("failed to clear cache")
		return err
	}
	return nil
}
