package app

import (
	"github.com/redis/go-redis/v9"

	"github.com/villagekeep/villagekeep-backend/internal/platform/logger"
)

// wireRedis builds the optional index-cache client. A nil return disables
// caching; the loader handles that.
func wireRedis(cfg Config, log *logger.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Info("redis not configured, index caching disabled")
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
}
