package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sportwearxpress/internal/models"

	"github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Key generation
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// Payout caching
func (s *CacheService) CachePayout(ctx context.Context, payout *models.Payout) error {
	key := s.GenerateKey("payout", "id", payout.PayoutID)
	return s.Set(ctx, key, payout)
}

func (s *CacheService) GetPayout(ctx context.Context, payoutID string) (*models.Payout, error) {
	key := s.GenerateKey("payout", "id", payoutID)
	var payout models.Payout
	found, err := s.Get(ctx, key, &payout)
	if err != nil || !found {
		return nil, err
	}
	return &payout, nil
}

func (s *CacheService) InvalidatePayout(ctx context.Context, payoutID string) error {
	return s.Delete(ctx, s.GenerateKey("payout", "id", payoutID))
}

// Stats caching. Stats are grouped rows, so they are cached under one key
// per scope (platform-wide or one seller) and invalidated on every write.
func (s *CacheService) CacheStats(ctx context.Context, sellerID uint, stats interface{}, ttl time.Duration) error {
	key := s.GenerateKey("payout", "stats", sellerID)
	return s.SetWithTTL(ctx, key, stats, ttl)
}

func (s *CacheService) GetStats(ctx context.Context, sellerID uint, dest interface{}) (bool, error) {
	key := s.GenerateKey("payout", "stats", sellerID)
	return s.Get(ctx, key, dest)
}

func (s *CacheService) InvalidateStats(ctx context.Context, sellerID uint) error {
	return s.Delete(ctx,
		s.GenerateKey("payout", "stats", sellerID),
		s.GenerateKey("payout", "stats", 0),
	)
}

// HealthCheck pings Redis.
func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

// FlushAll flushes all keys from the cache
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// Close closes the Redis client connection
func (s *CacheService) Close() error {
	return s.client.Close()
}
