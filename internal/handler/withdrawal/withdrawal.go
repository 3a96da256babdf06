package withdrawal

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dwarvesf/swiftchain-backend/internal/errs"
	"github.com/dwarvesf/swiftchain-backend/internal/model"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/logger"
	"github.com/dwarvesf/swiftchain-backend/internal/view"
	"github.com/dwarvesf/swiftchain-backend/internal/withdrawal"
)

type handler struct {
	withdrawal withdrawal.IWithdrawal
	logger     *logger.Logger
}

func New(withdrawal withdrawal.IWithdrawal, logger *logger.Logger) IHandler {
	return &handler{
		withdrawal: withdrawal,
		logger:     logger,
	}
}

// Submit godoc
// @Summary Request a bank withdrawal
// @Description Records an INR withdrawal as processing. It completes on its own after a short delay
// @id submitWithdrawal
// @Tags Withdrawal
// @Accept json
// @Produce json
// @Param request body model.SubmitWithdrawalInput true "Withdrawal request"
// @Success 201 {object} view.Withdrawal
// @Failure 400 {object} view.ErrorResponse
// @Router /withdrawals [post]
func (h *handler) Submit(c *gin.Context) {
	var req model.SubmitWithdrawalInput
	if err := c.ShouldBindJSON(&req); err != nil {
		err = errs.FromBinding(err)
		h.logger.Error("[Submit][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(errs.HTTPStatus(err), view.CreateErrorResponse(errs.Code(err), err, req, "invalid request"))
		return
	}

	request, err := h.withdrawal.Submit(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("[Submit][Submit]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(errs.HTTPStatus(err), view.CreateErrorResponse(errs.Code(err), err, req, "failed to submit withdrawal"))
		return
	}

	c.JSON(http.StatusCreated, view.CreateResponse[any](view.ToWithdrawal(request), nil, nil, ""))
}

// Get godoc
// @Summary Withdrawal status
// @id getWithdrawal
// @Tags Withdrawal
// @Produce json
// @Param id path string true "Withdrawal id"
// @Success 200 {object} view.Withdrawal
// @Failure 404 {object} view.ErrorResponse
// @Router /withdrawals/{id} [get]
func (h *handler) Get(c *gin.Context) {
	id := c.Param("id")

	request, err := h.withdrawal.Get(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("[Get][Get]", map[string]string{
			"error": err.Error(),
			"id":    id,
		})
		c.JSON(errs.HTTPStatus(err), view.CreateErrorResponse(errs.Code(err), err, map[string]string{"id": id}, "withdrawal not found"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse[any](view.ToWithdrawal(request), nil, nil, ""))
}
