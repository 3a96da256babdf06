package transaction

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type IHandler interface {
	// Register starts tracking a client supplied transaction
	Register(c *gin.Context)
	// Status advances and returns the tracked transaction
	Status(c *gin.Context)
	// Await polls the transaction until it is confirmed or failed, bounded by the configured timeout
	Await(c *gin.Context)
	MarkFailed(c *gin.Context)
	// Send creates a simulated transfer and tracks it
	Send(c *gin.Context)
}

type MarkFailedRequest struct {
	Reason string `json:"reason" example:"dropped from mempool"`
}

type SendRequest struct {
	FromAddress string           `json:"fromAddress" binding:"required" example:"0x52908400098527886E0F7030069857D2E4169EE7"`
	ToAddress   string           `json:"toAddress" binding:"required" example:"0x8617E340B3D01FA5F11F306F4090FD50E238070D"`
	Amount      *decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"1.5"`
	Currency    string           `json:"currency" example:"USDT"`
}
