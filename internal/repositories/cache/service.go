package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"custodia/internal/models"

	"github.com/redis/go-redis/v9"
)

// CacheService is a JSON-over-Redis read cache for wallet lookups. Entries
// are invalidated whenever the transaction service mutates a balance.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{client: client, ttl: defaultTTL}
}

func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

// Get unmarshals the cached value into dest. The bool reports whether the
// key was present.
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

func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

func (s *CacheService) Close() error {
	return s.client.Close()
}

func walletKey(address string) string {
	return "wallet:address:" + address
}

func (s *CacheService) CacheWallet(ctx context.Context, wallet *models.Wallet) error {
	return s.Set(ctx, walletKey(wallet.Address), wallet)
}

func (s *CacheService) GetWallet(ctx context.Context, address string) (*models.Wallet, bool, error) {
	var wallet models.Wallet
	found, err := s.Get(ctx, walletKey(address), &wallet)
	if err != nil || !found {
		return nil, false, err
	}
	return &wallet, true, nil
}

func (s *CacheService) InvalidateWallet(ctx context.Context, addresses ...string) error {
	keys := make([]string, 0, len(addresses))
	for _, address := range addresses {
		keys = append(keys, walletKey(address))
	}
	return s.Delete(ctx, keys...)
}
