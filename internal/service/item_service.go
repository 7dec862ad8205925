package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/pkg/uow"
	"github.com/shopspring/decimal"
)

// ItemsCacheTTL время жизни закешированного каталога.
const ItemsCacheTTL = 3600 * time.Second

type ItemService struct {
	uow         uow.UOW
	priceClient PriceClient
	cache       ItemsCache
}

func NewItemService(u uow.UOW, priceClient PriceClient, cache ItemsCache) *ItemService {
	return &ItemService{
		uow:         u,
		priceClient: priceClient,
		cache:       cache,
	}
}

type PurchaseArgs struct {
	UserID int64
	ItemID int64
	Price  decimal.Decimal
}

// Purchase списывает цену предмета с баланса юзера и записывает покупку. Обе записи выполняются
// в одной транзакции: либо произойдут и дебет и вставка, либо ни то ни другое.
// Строка юзера читается с блокировкой, так что конкурентные покупки одного юзера
// сериализуются и не могут обе пройти по одному и тому же стартовому балансу.
//
// Возвращает новый баланс и ошибку. Ошибки: domain.ErrRecordNotFound если юзера нет,
// domain.ErrNotEnoughBalance если баланс меньше цены, domain.ErrUnknown во всех других случаях.
func (s *ItemService) Purchase(ctx context.Context, args PurchaseArgs) (decimal.Decimal, error) {
	var newBalance decimal.Decimal

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[domain.UserRepository](tx, uow.RepositoryName(domain.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		purchaseRepo, purchaseRepoErr :=
			uow.GetAs[domain.PurchaseRepository](tx, uow.RepositoryName(domain.PurchaseRepoName))
		if purchaseRepoErr != nil {
			return purchaseRepoErr //nolint:wrapcheck
		}

		user, findErr := userRepo.FindByIDForUpdate(c, args.UserID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}

		if user.Balance.LessThan(args.Price) {
			return domain.ErrNotEnoughBalance //nolint:wrapcheck
		}

		newBalance = user.Balance.Sub(args.Price)
		if updErr := userRepo.UpdateBalance(c, user.ID, newBalance); updErr != nil {
			return updErr //nolint:wrapcheck
		}

		if _, createErr := purchaseRepo.Create(c, domain.CreatePurchase{
			UserID: args.UserID,
			ItemID: args.ItemID,
			Price:  args.Price,
		}); createErr != nil {
			return createErr //nolint:wrapcheck
		}

		return nil
	})

	if txErr != nil {
		return decimal.Zero, fmt.Errorf("purchasing item: %w", txErr)
	}
	return newBalance, nil
}

// MinPrices возвращает каталог минимальных цен. Сначала смотрит в кеш, при попадании
// прайсинг API не вызывается вообще. При промахе каталог запрашивается, нормализуется
// и кешируется на ItemsCacheTTL.
func (s *ItemService) MinPrices(ctx context.Context) ([]domain.ItemSummary, error) {
	cached, cacheErr := s.cache.GetItemSummaries(ctx)
	if cacheErr != nil {
		return nil, fmt.Errorf("getting min prices: %s", cacheErr.Error())
	}
	if cached != nil {
		return cached, nil
	}

	return s.RefreshMinPrices(ctx)
}

// RefreshMinPrices безусловно запрашивает прайсинг API, нормализует каталог и перезаписывает кеш.
// При недоступности или некорректном ответе апстрима возвращает ошибку
// domain.ErrUpstreamUnavailable, кеш при этом не трогается.
func (s *ItemService) RefreshMinPrices(ctx context.Context) ([]domain.ItemSummary, error) {
	items, fetchErr := s.priceClient.GetItems(ctx)
	if fetchErr != nil {
		return nil, fmt.Errorf("refreshing min prices: %w: %s", domain.ErrUpstreamUnavailable, fetchErr.Error())
	}

	summaries := normalizeItems(items)

	if setErr := s.cache.SetItemSummaries(ctx, summaries, ItemsCacheTTL); setErr != nil {
		return nil, fmt.Errorf("refreshing min prices: %s", setErr.Error())
	}
	return summaries, nil
}

// normalizeItems сводит каждый предмет к минимальным ценам по tradable и non-tradable категориям.
// Минимум пустого множества не определен: если у предмета нет цен какой-либо категории,
// соответствующее поле остается невалидным NullDecimal (null в JSON), а не нулем.
func normalizeItems(items []domain.PricedItem) []domain.ItemSummary {
	summaries := make([]domain.ItemSummary, len(items))
	for i, item := range items {
		var minTradable, minNonTradable decimal.NullDecimal
		for _, price := range item.Prices {
			if price.Tradable {
				minTradable = lesserOf(minTradable, price.Amount)
			} else {
				minNonTradable = lesserOf(minNonTradable, price.Amount)
			}
		}
		summaries[i] = domain.ItemSummary{
			ID:                  item.ID,
			Name:                item.Name,
			MinTradablePrice:    minTradable,
			MinNonTradablePrice: minNonTradable,
		}
	}
	return summaries
}

func lesserOf(current decimal.NullDecimal, candidate decimal.Decimal) decimal.NullDecimal {
	if !current.Valid || candidate.LessThan(current.Decimal) {
		return decimal.NullDecimal{Decimal: candidate, Valid: true}
	}
	return current
}
