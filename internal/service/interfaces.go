package service

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

// PriceClient клиент прайсинг API. Возвращает полный сырой каталог предметов.
type PriceClient interface {
	GetItems(ctx context.Context) ([]domain.PricedItem, error)
}

// ItemsCache кеш нормализованного каталога. Промах кеша - (nil, nil).
type ItemsCache interface {
	GetItemSummaries(ctx context.Context) ([]domain.ItemSummary, error)
	SetItemSummaries(ctx context.Context, items []domain.ItemSummary, ttl time.Duration) error
}
