package cache

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

func ConnectRedis(addr, password string) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	log.Println("Redis connected (jaja-bff)")
	return rdb
}
