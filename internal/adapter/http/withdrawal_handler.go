package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"office-nexus-backend/internal/usecase/withdrawal"
)

type WithdrawalHandler struct{ uc *withdrawal.Usecase }

func NewWithdrawalHandler(uc *withdrawal.Usecase) *WithdrawalHandler {
	return &WithdrawalHandler{uc: uc}
}

type requestWithdrawalReq struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *WithdrawalHandler) RequestWithdrawal(c echo.Context) error {
	lockID := c.Param("lock_id")
	if lockID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing lock_id path param"})
	}
	var req requestWithdrawalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Request(c.Request().Context(), withdrawal.RequestInput{
		LockID: lockID,
		Reason: req.Reason,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type resolveWithdrawalReq struct {
	Approve *bool `json:"approve" validate:"required"`
}

func (h *WithdrawalHandler) ResolveWithdrawal(c echo.Context) error {
	requestID := c.Param("request_id")
	if requestID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing request_id path param"})
	}
	var req resolveWithdrawalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Resolve(c.Request().Context(), withdrawal.ResolveInput{
		RequestID: requestID,
		Approve:   *req.Approve,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *WithdrawalHandler) GetWithdrawal(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("request_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
