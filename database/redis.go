package database

import (
	"context"
	"log"

	"resto_manager/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis opens the shared client used for the public-menu cache and
// the order-feed pub/sub. The app keeps working without redis; callers
// treat failures as cache misses.
func ConnectRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.ConfigOr("REDIS_ADDR", "localhost:6379"),
		Password: config.Config("REDIS_PASSWORD"),
	})

	if err := Redis.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis unreachable (%v), menu cache and live feed degraded", err)
	}
}
