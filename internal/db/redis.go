package db

import (
	"github.com/redis/go-redis/v9"
	"github.com/ukuku360/RK-explore-sub000/internal/config"
)

// ConnectRedis returns nil when no address is configured; callers fall back
// to an in-process store.
func ConnectRedis(cfg config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
}
