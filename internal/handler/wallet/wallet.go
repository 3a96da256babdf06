package wallet

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dwarvesf/swiftchain-backend/internal/consts"
	"github.com/dwarvesf/swiftchain-backend/internal/errs"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/logger"
	"github.com/dwarvesf/swiftchain-backend/internal/view"
	"github.com/dwarvesf/swiftchain-backend/internal/walletrpc"
)

type handler struct {
	wallet walletrpc.IWalletRPC
	logger *logger.Logger
}

func New(wallet walletrpc.IWalletRPC, logger *logger.Logger) IHandler {
	return &handler{
		wallet: wallet,
		logger: logger,
	}
}

// Balance godoc
// @Summary Wallet balance
// @Description Balance of address in ETH or USDT, read from the configured chain endpoint
// @id walletBalance
// @Tags Wallet
// @Produce json
// @Param address path string true "Wallet address"
// @Param asset query string false "ETH or USDT" default(ETH)
// @Success 200 {object} view.WalletBalance
// @Failure 400 {object} view.ErrorResponse
// @Failure 503 {object} view.ErrorResponse
// @Router /wallets/{address}/balance [get]
func (h *handler) Balance(c *gin.Context) {
	address := c.Param("address")
	asset := consts.NormalizeCurrency(c.DefaultQuery("asset", consts.CurrencyETH))

	balance, err := h.wallet.GetBalance(c.Request.Context(), address, asset)
	if err != nil {
		h.logger.Error("[Balance][GetBalance]", map[string]string{
			"error":   err.Error(),
			"address": address,
			"asset":   asset,
		})
		req := map[string]string{"address": address, "asset": asset}
		c.JSON(errs.HTTPStatus(err), view.CreateErrorResponse(errs.Code(err), err, req, "failed to get balance"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse[any](view.ToWalletBalance(address, asset, balance), nil, nil, ""))
}
