package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"posadmin_server/config"
	"posadmin_server/structs"
	"strings"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
	redisCtx    = context.Background()
)

// CacheService provides Redis caching with connection pooling and retry logic.
// Cache misses and failures are soft: callers always fall back to the database.
type CacheService struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	return &CacheService{
		logger: logger,
		config: cfg,
		client: getRedisClient(),
	}
}

func getRedisClient() *redis.Client {
	redisOnce.Do(func() {
		cfg := config.GetConfig()
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Address,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,

			PoolSize:     cfg.Cache.PoolSize,
			MinIdleConns: cfg.Cache.MinIdleConns,

			DialTimeout:  cfg.Cache.DialTimeout,
			ReadTimeout:  cfg.Cache.ReadTimeout,
			WriteTimeout: cfg.Cache.WriteTimeout,
		})
	})
	return redisClient
}

// Close closes the Redis connection pool
func (cs *CacheService) Close() error {
	if redisClient != nil {
		return redisClient.Close()
	}
	return nil
}

// withRetry executes a Redis operation with exponential backoff retry logic
func (cs *CacheService) withRetry(operation func() error, maxRetries int) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		lastErr = err

		if attempt == maxRetries {
			break
		}

		if !isRetryableCacheError(err) {
			return err
		}

		backoff := 100 * (1 << attempt) // ms, exponential
		if backoff > 2000 {
			backoff = 2000
		}
		// jitter ±50%
		backoff = backoff/2 + rand.Intn(backoff/2+1)

		time.Sleep(time.Duration(backoff) * time.Millisecond)
	}

	return fmt.Errorf("redis operation failed after %d retries: %w", maxRetries, lastErr)
}

func isRetryableCacheError(err error) bool {
	if err == nil {
		return false
	}

	// Key not found is a result, not a failure
	if errors.Is(err, redis.Nil) {
		return false
	}

	errStr := err.Error()
	retryableErrors := []string{
		"connection refused",
		"connection reset",
		"timeout",
		"broken pipe",
		"no such host",
		"network is unreachable",
	}

	for _, retryableErr := range retryableErrors {
		if strings.Contains(errStr, retryableErr) {
			return true
		}
	}

	return false
}

// SetJSON marshals a value and stores it under key with a TTL
func (cs *CacheService) SetJSON(key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return cs.withRetry(func() error {
		return cs.client.Set(redisCtx, key, payload, ttl).Err()
	}, 3)
}

// GetJSON reads a key into dest. The boolean reports whether the key existed.
func (cs *CacheService) GetJSON(key string, dest any) (bool, error) {
	var payload string

	err := cs.withRetry(func() error {
		val, err := cs.client.Get(redisCtx, key).Result()
		if err != nil {
			return err
		}
		payload = val
		return nil
	}, 3)

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		return false, err
	}
	return true, nil
}

// IncrementRateLimit bumps the request counter for ip+endpoint and returns
// the count inside the current window. The key expires with the window.
func (cs *CacheService) IncrementRateLimit(ip, endpoint string, window time.Duration) (int, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", ip, endpoint)

	var count int64
	err := cs.withRetry(func() error {
		pipe := cs.client.TxPipeline()
		incr := pipe.Incr(redisCtx, key)
		pipe.Expire(redisCtx, key, window)
		if _, err := pipe.Exec(redisCtx); err != nil {
			return err
		}
		count = incr.Val()
		return nil
	}, 2)
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// Delete removes a key with automatic retry logic
func (cs *CacheService) Delete(key string) error {
	return cs.withRetry(func() error {
		return cs.client.Del(redisCtx, key).Err()
	}, 3)
}

// Health pings the cache
func (cs *CacheService) Health() error {
	return cs.client.Ping(redisCtx).Err()
}
