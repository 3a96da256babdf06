package conversion

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type IHandler interface {
	Convert(c *gin.Context)
	GetRates(c *gin.Context)
	// GetExchangeRate prices a single currency pair
	GetExchangeRate(c *gin.Context)
	CompareFees(c *gin.Context)
}

type ConvertRequest struct {
	Amount   *decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"10000"`
	Currency string           `json:"currency" binding:"required" example:"USDT"`
}
