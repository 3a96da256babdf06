package http

import (
	"github.com/gin-gonic/gin"

	"github.com/dwarvesf/swiftchain-backend/internal/handler"
)

func loadV1Routes(r *gin.Engine, h *handler.Handler) {
	v1 := r.Group("/api/v1")

	v1.POST("/convert", h.ConversionHandler.Convert)
	v1.GET("/rates", h.ConversionHandler.GetRates)
	v1.GET("/fee-comparison", h.ConversionHandler.CompareFees)
	v1.GET("/exchange-rate/:from/:to", h.ConversionHandler.GetExchangeRate)

	transactions := v1.Group("/transactions")
	{
		transactions.POST("/register", h.TransactionHandler.Register)
		transactions.GET("/:hash", h.TransactionHandler.Status)
		transactions.GET("/:hash/await", h.TransactionHandler.Await)
		transactions.POST("/:hash/fail", h.TransactionHandler.MarkFailed)
	}

	crypto := v1.Group("/crypto")
	{
		crypto.POST("/send", h.TransactionHandler.Send)
	}

	v1.GET("/wallets/:address/balance", h.WalletHandler.Balance)

	withdrawals := v1.Group("/withdrawals")
	{
		withdrawals.POST("", h.WithdrawalHandler.Submit)
		withdrawals.GET("/:id", h.WithdrawalHandler.Get)
	}

	health := v1.Group("/health")
	{
		health.GET("/db", h.HealthHandler.Database)
		health.GET("/external", h.HealthHandler.External)
		health.GET("/jobs", h.HealthHandler.Jobs)
	}
}
