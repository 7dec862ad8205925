package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/redis/go-redis/v9"
)

const itemsKey = "items"

// ItemsCache хранит нормализованный каталог одним JSON блобом под ключом itemsKey.
type ItemsCache struct {
	client *redis.Client
}

func NewItemsCache(client *redis.Client) *ItemsCache {
	return &ItemsCache{client: client}
}

// GetItemSummaries возвращает закешированный каталог. Промах кеша - это (nil, nil),
// а не ошибка.
func (c *ItemsCache) GetItemSummaries(ctx context.Context) ([]domain.ItemSummary, error) {
	data, err := c.client.Get(ctx, itemsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("[cache] reading key %s: %s", itemsKey, err.Error())
	}

	var items []domain.ItemSummary
	if jsonErr := json.Unmarshal(data, &items); jsonErr != nil {
		return nil, fmt.Errorf("[cache] parsing key %s: %s", itemsKey, jsonErr.Error())
	}
	return items, nil
}

func (c *ItemsCache) SetItemSummaries(ctx context.Context, items []domain.ItemSummary, ttl time.Duration) error {
	data, jsonErr := json.Marshal(items)
	if jsonErr != nil {
		return fmt.Errorf("[cache] encoding key %s: %s", itemsKey, jsonErr.Error())
	}
	if err := c.client.Set(ctx, itemsKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("[cache] writing key %s: %s", itemsKey, err.Error())
	}
	return nil
}
