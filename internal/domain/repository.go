package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=repository.go -destination=mocks/mocks.go -package=mocks
type RepositoryName string

const (
	UserRepoName     RepositoryName = "user"
	PurchaseRepoName RepositoryName = "purchase"
)

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	// FindByIDForUpdate читает юзера с блокировкой строки (SELECT ... FOR UPDATE).
	// Имеет смысл только внутри транзакции.
	FindByIDForUpdate(ctx context.Context, id int64) (*User, error)
	UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error
	UpdatePassword(ctx context.Context, id int64, encryptedPassword string) error
}

type CreatePurchase struct {
	UserID int64
	ItemID int64
	Price  decimal.Decimal
}

type PurchaseRepository interface {
	Create(ctx context.Context, args CreatePurchase) (*Purchase, error)
}
