package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

type PurchaseRepository struct {
	db uow.DBTX
}

func NewPurchaseRepository(db uow.DBTX) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// Create добавляет запись о покупке. Таблица append-only, записи никогда не обновляются.
func (r *PurchaseRepository) Create(ctx context.Context, args domain.CreatePurchase) (*domain.Purchase, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO purchases (user_id, item_id, price) VALUES ($1, $2, $3)
		 RETURNING id, created_at, user_id, item_id, price`,
		args.UserID, args.ItemID, args.Price)

	var purchase domain.Purchase
	err := row.Scan(
		&purchase.ID,
		&purchase.CreatedAt,
		&purchase.UserID,
		&purchase.ItemID,
		&purchase.Price,
	)
	if err != nil {
		return nil, convertErr(err, "creating purchase for user %d", args.UserID)
	}
	return &purchase, nil
}
