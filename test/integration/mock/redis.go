package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisServer *miniredis.Miniredis
var redisConn *redis.Client

// NewRedis starts one in-process Redis for the suite and returns a client for it.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		s, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisServer = s
		redisConn = redis.NewClient(&redis.Options{Addr: s.Addr()})
	})
	return redisConn
}

// ClearRedis drops every key, including rate limit counters.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.Background()).Err()
}

// RedisKeys lists the keys currently stored.
func RedisKeys() []string {
	if redisServer == nil {
		return nil
	}
	return redisServer.Keys()
}
