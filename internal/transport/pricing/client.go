package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/shopspring/decimal"

	"io"
)

const RouteItems = "/v1/items"

type itemPayload struct {
	ID     int64          `json:"id"`
	Name   string         `json:"name"`
	Prices []pricePayload `json:"prices"`
}

type pricePayload struct {
	Tradable bool            `json:"tradable"`
	Amount   decimal.Decimal `json:"amount"`
}

// HTTPClient клиент прайсинг API. Реализует интерфейс service.PriceClient.
type HTTPClient struct {
	baseURL    string
	appID      string
	currency   string
	httpClient *http.Client
}

func NewHTTPClient(baseURL, appID, currency string) HTTPClient {
	return HTTPClient{
		baseURL:    baseURL,
		appID:      appID,
		currency:   currency,
		httpClient: http.DefaultClient,
	}
}

// GetItems запрашивает полный каталог предметов с ценами. В случае ошибки возвращает или StatusCodeError
// или не типизированную ошибку.
//
//nolint:nonamedreturns
func (c HTTPClient) GetItems(ctx context.Context) (items []domain.PricedItem, err error) {
	// Формируем URL запроса.
	query := url.Values{}
	query.Set("app_id", c.appID)
	query.Set("currency", c.currency)
	reqURL := c.baseURL + RouteItems + "?" + query.Encode()

	// Создаем запрос.
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}

	// Выполняем запрос.
	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %s", doErr.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	// Статус отличный от http.StatusOK нас не интересует.
	if resp.StatusCode != http.StatusOK {
		err = NewStatusCodeError(resp.StatusCode)
		return nil, err
	}

	// Парсим успешный ответ.
	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		err = fmt.Errorf("read response: %s", readErr.Error())
		return nil, err
	}

	var payload []itemPayload
	if jsonErr := json.Unmarshal(body, &payload); jsonErr != nil {
		err = fmt.Errorf("parse response: %s", jsonErr.Error())
		return nil, err
	}

	items = make([]domain.PricedItem, len(payload))
	for i, p := range payload {
		prices := make([]domain.PriceEntry, len(p.Prices))
		for j, price := range p.Prices {
			prices[j] = domain.PriceEntry{
				Tradable: price.Tradable,
				Amount:   price.Amount,
			}
		}
		items[i] = domain.PricedItem{
			ID:     p.ID,
			Name:   p.Name,
			Prices: prices,
		}
	}

	return items, nil
}
