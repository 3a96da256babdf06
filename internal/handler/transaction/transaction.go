package transaction

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dwarvesf/swiftchain-backend/internal/consts"
	"github.com/dwarvesf/swiftchain-backend/internal/errs"
	"github.com/dwarvesf/swiftchain-backend/internal/model"
	"github.com/dwarvesf/swiftchain-backend/internal/tracker"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/logger"
	"github.com/dwarvesf/swiftchain-backend/internal/view"
	"github.com/dwarvesf/swiftchain-backend/internal/walletrpc"
)

type transactionHandler struct {
	tracker      tracker.ITracker
	wallet       walletrpc.IWalletRPC
	pollInterval time.Duration
	pollTimeout  time.Duration
	logger       *logger.Logger
}

// NewTransactionHandler creates a new instance of TransactionHandler.
// pollInterval and pollTimeout bound the Await endpoint.
func NewTransactionHandler(
	tracker tracker.ITracker,
	wallet walletrpc.IWalletRPC,
	pollInterval, pollTimeout time.Duration,
	logger *logger.Logger,
) IHandler {
	return &transactionHandler{
		tracker:      tracker,
		wallet:       wallet,
		pollInterval: pollInterval,
		pollTimeout:  pollTimeout,
		logger:       logger,
	}
}

// Register godoc
// @Summary Track a transaction
// @Description Registers a transaction hash as pending with zero confirmations
// @id registerTransaction
// @Tags Transaction
// @Accept json
// @Produce json
// @Param request body model.RegisterTransactionInput true "Transaction to track"
// @Success 201 {object} model.TransactionRecord
// @Failure 400 {object} view.ErrorResponse
// @Failure 409 {object} view.ErrorResponse
// @Router /transactions/register [post]
func (h *transactionHandler) Register(c *gin.Context) {
	var req model.RegisterTransactionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		err = errs.FromBinding(err)
		h.logger.Error("[Register][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(errs.HTTPStatus(err), view.CreateErrorResponse(errs.Code(err), err, req, "invalid request"))
		return
	}

	record, err := h.tracker.Register(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("[Register][Register]", map[string]string{
			"error": err.Error(),
			"hash":  req.Hash,
		})
		c.JSON(errs.HTTPStatus(err), view.CreateErrorResponse(errs.Code(err), err, req, "failed to register transaction"))
		return
	}

	c.JSON(http.StatusCreated, view.CreateResponse[any](record, nil, nil, ""))
}

// Status godoc
// @Summary Transaction status
// @Description Returns the tracked transaction. Each call on a pending transaction adds one confirmation
// @id transactionStatus
// @Tags Transaction
// @Produce json
// @Param hash path string true "Transaction hash"
// @Success 200 {object} model.TransactionRecord
// @Failure 404 {object} view.ErrorResponse
// @Router /transactions/{hash} [get]
func (h *transactionHandler) Status(c *gin.Context) {
	hash := c.Param("hash")

	record, err := h.tracker.Poll(c.Request.Context(), hash)
	if err != nil {
		h.logger.Error("[Status][Poll]", map[string]string{
			"error": err.Error(),
			"hash":  hash,
		})
		c.JSON(errs.HTTPStatus(err), view.CreateErrorResponse(errs.Code(err), err, map[string]string{"hash": hash}, "transaction not found"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse[any](record, nil, nil, ""))
}

// Await godoc
// @Summary Wait for a transaction to settle
// @Description Polls the transaction until it is confirmed or failed. Returns 504 with the last known record when the timeout elapses first
// @id awaitTransaction
// @Tags Transaction
// @Produce json
// @Param hash path string true "Transaction hash"
// @Success 200 {object} model.TransactionRecord
// @Failure 404 {object} view.ErrorResponse
// @Failure 504 {object} view.ErrorResponse
// @Router /transactions/{hash}/await [get]
func (h *transactionHandler) Await(c *gin.Context) {
	hash := c.Param("hash")

	record, err := h.tracker.Await(c.Request.Context(), hash, h.pollInterval, h.pollTimeout)
	if err != nil {
		h.logger.Error("[Await][Await]", map[string]string{
			"error": err.Error(),
			"hash":  hash,
		})
		resp := view.CreateErrorResponse(errs.Code(err), err, map[string]string{"hash": hash}, "transaction did not settle")
		if record != nil {
			resp.Data = record
		}
		c.JSON(errs.HTTPStatus(err), resp)
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse[any](record, nil, nil, ""))
}

// MarkFailed godoc
// @Summary Mark a transaction failed
// @Description Moves a pending transaction to failed. Confirmed or failed transactions are returned unchanged
// @id markTransactionFailed
// @Tags Transaction
// @Accept json
// @Produce json
// @Param hash path string true "Transaction hash"
// @Param request body MarkFailedRequest false "Failure reason"
// @Success 200 {object} model.TransactionRecord
// @Failure 404 {object} view.ErrorResponse
// @Router /transactions/{hash}/fail [post]
func (h *transactionHandler) MarkFailed(c *gin.Context) {
	hash := c.Param("hash")

	var req MarkFailedRequest
	// the body is optional
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			err = errs.FromBinding(err)
			c.JSON(errs.HTTPStatus(err), view.CreateErrorResponse(errs.Code(err), err, req, "invalid request"))
			return
		}
	}

	record, err := h.tracker.MarkFailed(c.Request.Context(), hash, req.Reason)
	if err != nil {
		h.logger.Error("[MarkFailed][MarkFailed]", map[string]string{
			"error": err.Error(),
			"hash":  hash,
		})
		c.JSON(errs.HTTPStatus(err), view.CreateErrorResponse(errs.Code(err), err, map[string]string{"hash": hash}, "failed to mark transaction"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse[any](record, nil, nil, ""))
}

// Send godoc
// @Summary Send crypto
// @Description Creates a simulated transfer through the wallet connector and starts tracking it
// @id sendCrypto
// @Tags Transaction
// @Accept json
// @Produce json
// @Param request body SendRequest true "Transfer"
// @Success 201 {object} model.TransactionRecord
// @Failure 400 {object} view.ErrorResponse
// @Failure 503 {object} view.ErrorResponse
// @Router /crypto/send [post]
func (h *transactionHandler) Send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		err = errs.FromBinding(err)
		h.logger.Error("[Send][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(errs.HTTPStatus(err), view.CreateErrorResponse(errs.Code(err), err, req, "invalid request"))
		return
	}
	if req.Currency == "" {
		req.Currency = consts.CurrencyUSDT
	}

	sent, err := h.wallet.SendTransaction(c.Request.Context(), req.FromAddress, req.ToAddress, *req.Amount, req.Currency)
	if err != nil {
		h.logger.Error("[Send][SendTransaction]", map[string]string{
			"error": err.Error(),
			"from":  req.FromAddress,
			"to":    req.ToAddress,
		})
		c.JSON(errs.HTTPStatus(err), view.CreateErrorResponse(errs.Code(err), err, req, "failed to send transaction"))
		return
	}

	record, err := h.tracker.Register(c.Request.Context(), model.RegisterTransactionInput{
		Hash:     sent.Hash,
		From:     sent.From,
		To:       sent.To,
		Amount:   sent.Amount,
		Currency: sent.Currency,
		GasUsed:  sent.GasUsed,
		GasPrice: sent.GasPrice,
	})
	if err != nil {
		h.logger.Error("[Send][Register]", map[string]string{
			"error": err.Error(),
			"hash":  sent.Hash,
		})
		c.JSON(errs.HTTPStatus(err), view.CreateErrorResponse(errs.Code(err), err, req, "failed to track transaction"))
		return
	}

	h.logger.Info("[Send] transaction submitted", map[string]string{
		"hash":     record.Hash,
		"currency": record.Currency,
	})
	c.JSON(http.StatusCreated, view.CreateResponse[any](record, nil, nil, ""))
}
