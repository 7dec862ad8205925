package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

type User struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Username          string
	EncryptedPassword string
	Balance           decimal.Decimal
}

type Purchase struct {
	ID        int64
	CreatedAt time.Time
	UserID    int64
	ItemID    int64
	Price     decimal.Decimal
}

// ItemSummary агрегированная позиция каталога: минимальные цены по обеим категориям.
// Невалидный NullDecimal означает что цен данной категории у предмета нет вовсе,
// в JSON такое поле сериализуется как null.
type ItemSummary struct {
	ID                  int64               `json:"id"`
	Name                string              `json:"name"`
	MinTradablePrice    decimal.NullDecimal `json:"minTradablePrice"`
	MinNonTradablePrice decimal.NullDecimal `json:"minNonTradablePrice"`
}

// PricedItem сырой предмет каталога в том виде, в котором его отдает прайсинг API.
type PricedItem struct {
	ID     int64
	Name   string
	Prices []PriceEntry
}

type PriceEntry struct {
	Tradable bool
	Amount   decimal.Decimal
}
