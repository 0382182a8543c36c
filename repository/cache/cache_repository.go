package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisclient "github.com/muhammadheryan/gas-booking/cmd/redis"
	"github.com/muhammadheryan/gas-booking/model"
	"github.com/redis/go-redis/v9"
)

// Repository is a read-through cache for user profiles. Every method is a
// no-op returning a miss when no redis client is configured, so the service
// works identically with caching disabled.
type Repository interface {
	GetProfile(ctx context.Context, userID uint64) (*model.UserProfile, error)
	SetProfile(ctx context.Context, userID uint64, profile *model.UserProfile, ttl time.Duration) error
	DeleteProfile(ctx context.Context, userID uint64) error
}

type cacheRepo struct{}

// NewRepository returns a redis-backed cache Repository implementation
func NewRepository() Repository {
	return &cacheRepo{}
}

func profileKey(userID uint64) string {
	return fmt.Sprintf("profile:%d", userID)
}

// GetProfile returns the cached profile, or nil on a miss
func (r *cacheRepo) GetProfile(ctx context.Context, userID uint64) (*model.UserProfile, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}

	val, err := client.Get(ctx, profileKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var profile model.UserProfile
	if err := json.Unmarshal([]byte(val), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// SetProfile stores the profile with time-to-live
func (r *cacheRepo) SetProfile(ctx context.Context, userID uint64, profile *model.UserProfile, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}

	val, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return client.Set(ctx, profileKey(userID), val, ttl).Err()
}

// DeleteProfile removes a cached profile
func (r *cacheRepo) DeleteProfile(ctx context.Context, userID uint64) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, profileKey(userID)).Err()
}
