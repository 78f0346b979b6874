package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"office-nexus-backend/internal/usecase/capital"
)

type CapitalHandler struct{ uc *capital.Usecase }

func NewCapitalHandler(uc *capital.Usecase) *CapitalHandler { return &CapitalHandler{uc: uc} }

type lockCapitalReq struct {
	CompanyID        string  `json:"company_id"         validate:"required,hex32"`
	InvestorID       string  `json:"investor_id"        validate:"required,hex32"`
	InvestorName     string  `json:"investor_name"      validate:"required"`
	Principal        float64 `json:"principal"          validate:"required,gt=0,dec2"`
	Currency         string  `json:"currency"           validate:"required,oneof=RWF USD EUR"`
	LockPeriodMonths int     `json:"lock_period_months" validate:"required,lockperiod"`
	BaseROIRate      float64 `json:"base_roi_rate"      validate:"gte=0"`
	// Optional; canonical date `YYYY-MM-DD`, defaults to today.
	LockDate string `json:"lock_date" validate:"omitempty,datetime=2006-01-02"`
}

func (h *CapitalHandler) LockCapital(c echo.Context) error {
	var req lockCapitalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	in := capital.LockCapitalInput{
		CompanyID:        req.CompanyID,
		InvestorID:       req.InvestorID,
		InvestorName:     req.InvestorName,
		Principal:        req.Principal,
		Currency:         req.Currency,
		LockPeriodMonths: req.LockPeriodMonths,
		BaseROIRate:      req.BaseROIRate,
	}
	if req.LockDate != "" {
		d, _ := time.Parse("2006-01-02", req.LockDate)
		in.LockDate = d.UTC()
	}

	dto, err := h.uc.Lock(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *CapitalHandler) GetLock(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("lock_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CapitalHandler) ListCompanyLocks(c echo.Context) error {
	dtos, err := h.uc.ListByCompany(c.Request().Context(), c.Param("company_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

// MatureLock triggers the maturity check for one lock on demand; the sweeper
// does the same thing on a timer.
func (h *CapitalHandler) MatureLock(c echo.Context) error {
	dto, err := h.uc.CheckMaturity(c.Request().Context(), c.Param("lock_id"), time.Now().UTC())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
