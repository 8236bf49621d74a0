package middlewares

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// redisStorage adapts go-redis to fiber.Storage so limiter counters are
// shared across instances. Only used when REDIS_URL is set; otherwise the
// limiter falls back to its in-memory store.
type redisStorage struct {
	rdb *redis.Client
}

var (
	limiterStorage     fiber.Storage
	limiterStorageOnce sync.Once
)

func RedisLimiterStorage() fiber.Storage {
	limiterStorageOnce.Do(func() {
		url := os.Getenv("REDIS_URL")
		if url == "" {
			return
		}
		opt, err := redis.ParseURL(url)
		if err != nil {
			log.Printf("[WARN] invalid REDIS_URL, limiter falls back to memory: %v", err)
			return
		}
		rdb := redis.NewClient(opt)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("[WARN] redis unreachable, limiter falls back to memory: %v", err)
			return
		}
		log.Println("✅ Rate limiter backed by redis.")
		limiterStorage = &redisStorage{rdb: rdb}
	})
	return limiterStorage
}

func (s *redisStorage) Get(key string) ([]byte, error) {
	v, err := s.rdb.Get(context.Background(), key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return v, err
}

func (s *redisStorage) Set(key string, val []byte, exp time.Duration) error {
	return s.rdb.Set(context.Background(), key, val, exp).Err()
}

func (s *redisStorage) Delete(key string) error {
	return s.rdb.Del(context.Background(), key).Err()
}

func (s *redisStorage) Reset() error {
	return s.rdb.FlushDB(context.Background()).Err()
}

func (s *redisStorage) Close() error {
	return s.rdb.Close()
}
