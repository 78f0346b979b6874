package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"office-nexus-backend/internal/usecase/trialbalance"
)

type LedgerHandler struct{ uc *trialbalance.Usecase }

func NewLedgerHandler(uc *trialbalance.Usecase) *LedgerHandler { return &LedgerHandler{uc: uc} }

type ledgerEntryReq struct {
	EntryDate   string  `json:"entry_date"   validate:"omitempty,datetime=2006-01-02"`
	AccountCode string  `json:"account_code" validate:"required"`
	AccountName string  `json:"account_name" validate:"required"`
	Debit       float64 `json:"debit"        validate:"gte=0,dec2"`
	Credit      float64 `json:"credit"       validate:"gte=0,dec2"`
	Reference   string  `json:"reference"`
}

type postEntriesReq struct {
	Entries []ledgerEntryReq `json:"entries" validate:"required,min=1,dive"`
}

func (h *LedgerHandler) PostEntries(c echo.Context) error {
	companyID := c.Param("company_id")
	if !reHex32.MatchString(companyID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid company_id path param"})
	}
	var req postEntriesReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	inputs := make([]trialbalance.EntryInput, 0, len(req.Entries))
	for _, e := range req.Entries {
		in := trialbalance.EntryInput{
			AccountCode: e.AccountCode,
			AccountName: e.AccountName,
			Debit:       e.Debit,
			Credit:      e.Credit,
			Reference:   e.Reference,
		}
		if e.EntryDate != "" {
			d, _ := time.Parse("2006-01-02", e.EntryDate)
			in.EntryDate = d.UTC()
		}
		inputs = append(inputs, in)
	}

	entries, err := h.uc.PostEntries(c.Request().Context(), companyID, inputs)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"created": len(entries)})
}

func (h *LedgerHandler) GetTrialBalance(c echo.Context) error {
	companyID := c.Param("company_id")
	if !reHex32.MatchString(companyID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid company_id path param"})
	}
	rep, err := h.uc.Build(c.Request().Context(), companyID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"company_id":   rep.CompanyID,
		"rows":         rep.Rows,
		"total_debit":  rep.TotalDebit,
		"total_credit": rep.TotalCredit,
		"balanced":     rep.Balanced,
		"generated_at": rep.GeneratedAt,
	})
}
