package redis

import (
	"context"
	"encoding/json"
	"time"

	redisclient "github.com/muhammadheryan/task-marketplace/cmd/redis"
	"github.com/muhammadheryan/task-marketplace/model"
	goredis "github.com/redis/go-redis/v9"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	GetDashboard(ctx context.Context, userID string) (*model.DashboardResponse, error)
	SetDashboard(ctx context.Context, userID string, dashboard *model.DashboardResponse, ttl time.Duration) error
	DeleteDashboard(ctx context.Context, userID string) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// Get retrieves a value by key from Redis
func (r *redis) Get(ctx context.Context, key string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, key).Result()
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetWithTTL stores a key/value pair with time-to-live
func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis
func (r *redis) Delete(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}

// GetDashboard returns the cached dashboard summary for a user, or nil on a
// cache miss.
func (r *redis) GetDashboard(ctx context.Context, userID string) (*model.DashboardResponse, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}
	raw, err := client.Get(ctx, dashboardKey(userID)).Result()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var dashboard model.DashboardResponse
	if err := json.Unmarshal([]byte(raw), &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

// SetDashboard caches a dashboard summary with TTL
func (r *redis) SetDashboard(ctx context.Context, userID string, dashboard *model.DashboardResponse, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	raw, err := json.Marshal(dashboard)
	if err != nil {
		return err
	}
	return client.Set(ctx, dashboardKey(userID), raw, ttl).Err()
}

// DeleteDashboard drops a user's cached dashboard summary
func (r *redis) DeleteDashboard(ctx context.Context, userID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, dashboardKey(userID)).Err()
}

func dashboardKey(userID string) string {
	return "dashboard:" + userID
}
