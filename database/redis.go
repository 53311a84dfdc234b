package database

import (
	"context"
	"log"
	"pizzeria_manager/config"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client

func ConnectRedis() {
	RDB = redis.NewClient(&redis.Options{
		Addr: config.ConfigOr("REDIS_ADDR", "localhost:6379"),
	})

	if err := RDB.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis non raggiungibile: %v", err)
	}
}
