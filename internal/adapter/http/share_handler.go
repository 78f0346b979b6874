package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	shareDomain "office-nexus-backend/internal/domain/share"
	"office-nexus-backend/internal/usecase/share"
)

type ShareHandler struct{ uc *share.Usecase }

func NewShareHandler(uc *share.Usecase) *ShareHandler { return &ShareHandler{uc: uc} }

type transferSharesReq struct {
	FromPositionID    string `json:"from_position_id"     validate:"required,hex32"`
	ToPositionID      string `json:"to_position_id"       validate:"omitempty,hex32"`
	NewHolderPersonID string `json:"new_holder_person_id" validate:"omitempty,hex32"`
	NewHolderName     string `json:"new_holder_name"`
	Shares            int64  `json:"shares"               validate:"required,gt=0"`
	Mode              string `json:"mode"                 validate:"omitempty,oneof=legacy issued_total"`
	TotalIssuedShares int64  `json:"total_issued_shares"  validate:"omitempty,gt=0"`
}

func (h *ShareHandler) TransferShares(c echo.Context) error {
	var req transferSharesReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	res, err := h.uc.Transfer(c.Request().Context(), share.TransferInput{
		FromPositionID:    req.FromPositionID,
		ToPositionID:      req.ToPositionID,
		NewHolderPersonID: req.NewHolderPersonID,
		NewHolderName:     req.NewHolderName,
		Shares:            req.Shares,
		Mode:              shareDomain.RecalcMode(req.Mode),
		TotalIssuedShares: req.TotalIssuedShares,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *ShareHandler) ListCompanyPositions(c echo.Context) error {
	positions, err := h.uc.ListByCompany(c.Request().Context(), c.Param("company_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, positions)
}
