package rediscache

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Connect создает клиент redis. Принимает как redis:// URL, так и пару host:port,
// чтоб не плодить разные форматы конфигурации для локальной разработки и контейнеров.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(redisURL, "redis://") {
		opt, parseErr := redis.ParseURL(redisURL)
		if parseErr != nil {
			return nil, fmt.Errorf("parse redis url: %w", parseErr)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: redisURL})
	}

	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		return nil, fmt.Errorf("failed to connect to redis: %s", pingErr.Error())
	}
	return client, nil
}
