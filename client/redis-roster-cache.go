package client

import (
	"context"
	"encoding/json"
	"time"

	"tipovacka/logger"
	"tipovacka/repository"

	"github.com/redis/go-redis/v9"
)

type RedisRosterCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRosterCache(addr string, password string, ttl time.Duration) *RedisRosterCache {
	return &RedisRosterCache{
		client: redis.NewClient(&redis.Options{
			Addr:         addr,
			Password:     password,
			DB:           0,
			MaxRetries:   3,
			PoolSize:     10,
			MinIdleConns: 2,
			PoolTimeout:  5 * time.Second,
		}),
		ttl: ttl,
	}
}

func rosterKey(team string) string {
	return "tipovacka:roster:" + team
}

// GetRoster returns the cached roster. Any redis failure is a cache miss.
func (c *RedisRosterCache) GetRoster(ctx context.Context, team string) ([]*repository.Player, bool) {
	data, err := c.client.Get(ctx, rosterKey(team)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.WithService("roster-cache").WithError(err).Warn("redis get failed")
		}
		return nil, false
	}
	players := make([]*repository.Player, 0)
	if err := json.Unmarshal(data, &players); err != nil {
		return nil, false
	}
	return players, true
}

func (c *RedisRosterCache) SetRoster(ctx context.Context, team string, players []*repository.Player) {
	data, err := json.Marshal(players)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, rosterKey(team), data, c.ttl).Err(); err != nil {
		logger.WithService("roster-cache").WithError(err).Warn("redis set failed")
	}
}

func (c *RedisRosterCache) InvalidateRoster(ctx context.Context, team string) {
	if err := c.client.Del(ctx, rosterKey(team)).Err(); err != nil {
		logger.WithService("roster-cache").WithError(err).Warn("redis del failed")
	}
}

func (c *RedisRosterCache) Close() error {
	return c.client.Close()
}
