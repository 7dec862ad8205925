package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ItemsHandler struct {
	svs ItemServicer
}

func NewItemsHandler(svs ItemServicer) *ItemsHandler {
	return &ItemsHandler{
		svs: svs,
	}
}

type ItemResponse struct {
	ID                  int64    `json:"id"`
	Name                string   `json:"name"`
	MinTradablePrice    *float64 `json:"minTradablePrice"`
	MinNonTradablePrice *float64 `json:"minNonTradablePrice"`
}

// MinPrices GET ItemsRouteGroup + MinPricesRoute. Каталог минимальных цен.
// Отсутствующий минимум (у предмета нет цен данной категории) сериализуется как null.
func (h *ItemsHandler) MinPrices(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	summaries, err := h.svs.MinPrices(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]ItemResponse, len(summaries))
	for i, summary := range summaries {
		response[i] = ItemResponse{
			ID:                  summary.ID,
			Name:                summary.Name,
			MinTradablePrice:    nullDecimalToFloat(summary.MinTradablePrice),
			MinNonTradablePrice: nullDecimalToFloat(summary.MinNonTradablePrice),
		}
	}

	c.JSON(http.StatusOK, response)
}

type BuyParams struct {
	UserID int64           `binding:"required" json:"userId"`
	ItemID int64           `binding:"required" json:"itemId"`
	Price  decimal.Decimal `json:"price"`
}

// Buy POST ItemsRouteGroup + BuyRoute. Списывает цену с баланса и записывает покупку.
func (h *ItemsHandler) Buy(c *gin.Context) {
	var params BuyParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	if params.Price.IsNegative() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Price must be non-negative"})
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	newBalance, err := h.svs.Purchase(reqCtx, service.PurchaseArgs{
		UserID: params.UserID,
		ItemID: params.ItemID,
		Price:  params.Price,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "User not found"})
		case errors.Is(err, domain.ErrNotEnoughBalance):
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Insufficient balance"})
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Purchase successful",
		"newBalance": newBalance.InexactFloat64(),
	})
}

func nullDecimalToFloat(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()
	return &f
}
