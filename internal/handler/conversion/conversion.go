package conversion

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/dwarvesf/swiftchain-backend/internal/conversion"
	"github.com/dwarvesf/swiftchain-backend/internal/errs"
	"github.com/dwarvesf/swiftchain-backend/internal/feecompare"
	"github.com/dwarvesf/swiftchain-backend/internal/ratesource"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/logger"
	"github.com/dwarvesf/swiftchain-backend/internal/view"
)

type handler struct {
	calculator conversion.ICalculator
	comparator feecompare.IComparator
	rates      ratesource.IRateSource
	logger     *logger.Logger
}

func New(
	calculator conversion.ICalculator,
	comparator feecompare.IComparator,
	rates ratesource.IRateSource,
	logger *logger.Logger,
) IHandler {
	return &handler{
		calculator: calculator,
		comparator: comparator,
		rates:      rates,
		logger:     logger,
	}
}

// Convert godoc
// @Summary Quote an INR to crypto conversion
// @Description Converts an INR amount to USDT or ETH at the current rate, fees included
// @id convert
// @Tags Conversion
// @Accept json
// @Produce json
// @Param request body ConvertRequest true "Conversion request"
// @Success 200 {object} view.ConversionQuote
// @Failure 400 {object} view.ErrorResponse
// @Failure 500 {object} view.ErrorResponse
// @Router /convert [post]
func (h *handler) Convert(c *gin.Context) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		err = errs.FromBinding(err)
		h.logger.Error("[Convert][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(errs.HTTPStatus(err), view.CreateErrorResponse(errs.Code(err), err, req, "invalid request"))
		return
	}

	quote, err := h.calculator.Convert(c.Request.Context(), *req.Amount, req.Currency)
	if err != nil {
		h.logger.Error("[Convert][Convert]", map[string]string{
			"error":    err.Error(),
			"currency": req.Currency,
		})
		c.JSON(errs.HTTPStatus(err), view.CreateErrorResponse(errs.Code(err), err, req, "failed to convert"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse[any](view.ToConversionQuote(quote), nil, nil, ""))
}

// GetRates godoc
// @Summary Current exchange rates
// @Description Spot prices of every supported asset in INR and USD. Falls back to static rates when the price feed is down
// @id getRates
// @Tags Conversion
// @Produce json
// @Success 200 {object} view.Rates
// @Router /rates [get]
func (h *handler) GetRates(c *gin.Context) {
	snapshot := h.rates.GetRates(c.Request.Context())
	message := ""
	if snapshot.IsFallback {
		message = snapshot.Note
	}
	c.JSON(http.StatusOK, view.CreateResponse[any](view.ToRates(snapshot), nil, nil, message))
}

// GetExchangeRate godoc
// @Summary Exchange rate of a currency pair
// @Description Price of one unit of from in to. Supports INR, USD, USDT, ETH and BTC
// @id getExchangeRate
// @Tags Conversion
// @Produce json
// @Param from path string true "Source currency" example(ETH)
// @Param to path string true "Target currency" example(INR)
// @Success 200 {object} view.ExchangeRate
// @Failure 400 {object} view.ErrorResponse
// @Failure 503 {object} view.ErrorResponse
// @Router /exchange-rate/{from}/{to} [get]
func (h *handler) GetExchangeRate(c *gin.Context) {
	from, to := c.Param("from"), c.Param("to")

	rate, err := ratesource.PairRate(h.rates.GetRates(c.Request.Context()), from, to)
	if err != nil {
		h.logger.Error("[GetExchangeRate][PairRate]", map[string]string{
			"error": err.Error(),
			"from":  from,
			"to":    to,
		})
		c.JSON(errs.HTTPStatus(err), view.CreateErrorResponse(errs.Code(err), err, map[string]string{"from": from, "to": to}, "exchange rate not found"))
		return
	}

	message := ""
	if rate.IsFallback {
		message = rate.Note
	}
	c.JSON(http.StatusOK, view.CreateResponse[any](view.ToExchangeRate(rate), nil, nil, message))
}

// CompareFees godoc
// @Summary Compare traditional bank and platform fees
// @Description Cost of sending amount INR abroad through a bank versus the platform. amount defaults to 10000
// @id compareFees
// @Tags Conversion
// @Produce json
// @Param amount query number false "Transfer amount in INR"
// @Success 200 {object} view.FeeComparison
// @Failure 400 {object} view.ErrorResponse
// @Router /fee-comparison [get]
func (h *handler) CompareFees(c *gin.Context) {
	amount := parseAmount(c.Query("amount"))

	report, err := h.comparator.Compare(amount)
	if err != nil {
		h.logger.Error("[CompareFees][Compare]", map[string]string{
			"error":  err.Error(),
			"amount": amount.String(),
		})
		c.JSON(errs.HTTPStatus(err), view.CreateErrorResponse(errs.Code(err), err, map[string]string{"amount": amount.String()}, "failed to compare fees"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse[any](view.ToFeeComparison(report), nil, nil, ""))
}

// parseAmount falls back to the default amount when raw is absent, unparsable or zero.
func parseAmount(raw string) decimal.Decimal {
	amount, err := decimal.NewFromString(raw)
	if err != nil || amount.IsZero() {
		return feecompare.DefaultAmount
	}
	return amount
}
