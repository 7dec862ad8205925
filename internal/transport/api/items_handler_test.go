package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/logger"
	"github.com/fsdevblog/groph-market/internal/service"
	"github.com/fsdevblog/groph-market/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-market/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ItemsHandlerTestSuite struct {
	suite.Suite
	router          http.Handler
	mockItemService *mocks.MockItemServicer
}

func TestItemsHandlerSuite(t *testing.T) {
	suite.Run(t, new(ItemsHandlerTestSuite))
}

func (s *ItemsHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockItemService = mocks.NewMockItemServicer(mockCtrl)

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		ItemService:  s.mockItemService,
		JWTSecretKey: []byte("super secret key"),
	})
}

func (s *ItemsHandlerTestSuite) TestMinPrices() {
	summaries := []domain.ItemSummary{
		{
			ID:                  1,
			Name:                "AWP | Asiimov",
			MinTradablePrice:    decimal.NewNullDecimal(decimal.NewFromFloat(49.9)),
			MinNonTradablePrice: decimal.NewNullDecimal(decimal.NewFromInt(45)),
		},
		{
			ID:   2,
			Name: "AK-47 | Redline",
			// отсутствующие минимумы должны уйти клиенту как null.
		},
	}

	s.mockItemService.EXPECT().MinPrices(gomock.Any()).Return(summaries, nil)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    ItemsRouteGroup + MinPricesRoute,
	})
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusOK, resp.StatusCode)

	var body []map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Require().Len(body, 2)

	s.InDelta(49.9, body[0]["minTradablePrice"], 0.001)
	s.InDelta(45, body[0]["minNonTradablePrice"], 0.001)

	s.Equal("AK-47 | Redline", body[1]["name"])
	s.Nil(body[1]["minTradablePrice"])
	s.Nil(body[1]["minNonTradablePrice"])
}

func (s *ItemsHandlerTestSuite) TestMinPricesServerError() {
	s.mockItemService.EXPECT().
		MinPrices(gomock.Any()).
		Return(nil, fmt.Errorf("refreshing min prices: %w", domain.ErrUpstreamUnavailable))

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    ItemsRouteGroup + MinPricesRoute,
	})
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("Server error", body["message"])
}

func (s *ItemsHandlerTestSuite) TestBuy() {
	s.mockItemService.EXPECT().
		Purchase(gomock.Any(), service.PurchaseArgs{
			UserID: 1,
			ItemID: 7,
			Price:  decimal.NewFromInt(30),
		}).
		Return(decimal.NewFromInt(70), nil)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    ItemsRouteGroup + BuyRoute,
		Body:   bytes.NewBufferString(`{"userId":1,"itemId":7,"price":30}`),
	})
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Message    string  `json:"message"`
		NewBalance float64 `json:"newBalance"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("Purchase successful", body.Message)
	s.InDelta(70, body.NewBalance, 0.001)
}

func (s *ItemsHandlerTestSuite) TestBuyFailures() {
	cases := []struct {
		name        string
		svcErr      error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "user not found",
			svcErr:      fmt.Errorf("purchasing item: %w", domain.ErrRecordNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: "User not found",
		},
		{
			name:        "insufficient balance",
			svcErr:      fmt.Errorf("purchasing item: %w", domain.ErrNotEnoughBalance),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Insufficient balance",
		},
		{
			name:        "unexpected error",
			svcErr:      domain.ErrUnknown,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Server error",
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockItemService.EXPECT().
				Purchase(gomock.Any(), gomock.Any()).
				Return(decimal.Zero, t.svcErr)

			resp, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    ItemsRouteGroup + BuyRoute,
				Body:   bytes.NewBufferString(`{"userId":1,"itemId":7,"price":30}`),
			})
			s.Require().NoError(err)
			defer func() { _ = resp.Body.Close() }()

			s.Equal(t.wantStatus, resp.StatusCode)

			var body map[string]string
			s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
			s.Equal(t.wantMessage, body["message"])
		})
	}
}

func (s *ItemsHandlerTestSuite) TestBuyNegativePrice() {
	// отрицательная цена отбивается до обращения к сервисному слою.
	s.mockItemService.EXPECT().Purchase(gomock.Any(), gomock.Any()).Times(0)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    ItemsRouteGroup + BuyRoute,
		Body:   bytes.NewBufferString(`{"userId":1,"itemId":7,"price":-5}`),
	})
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("Price must be non-negative", body["message"])
}
