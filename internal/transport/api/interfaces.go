package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/service"
)

// AuthServicer интерфейс исключительно для моков.
type AuthServicer interface {
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
	ChangePassword(ctx context.Context, args service.ChangePasswordArgs) error
}

type ItemServicer interface {
	MinPrices(ctx context.Context) ([]domain.ItemSummary, error)
	Purchase(ctx context.Context, args service.PurchaseArgs) (decimal.Decimal, error)
}
