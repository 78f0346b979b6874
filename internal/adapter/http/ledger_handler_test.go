package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	domain "office-nexus-backend/internal/domain/ledger"
	"office-nexus-backend/internal/testutil/ledgermock"
	uc "office-nexus-backend/internal/usecase/trialbalance"
)

func TestPostEntries_Success(t *testing.T) {
	e := newEchoWithValidator()
	var stored []domain.Entry
	h := NewLedgerHandler(uc.NewUsecase(&ledgermock.Repo{
		CreateBatchFn: func(ctx context.Context, entries []domain.Entry) error {
			stored = entries
			return nil
		},
	}))

	body := map[string]any{
		"entries": []map[string]any{
			{"account_code": "1001", "account_name": "Cash", "debit": 100, "entry_date": "2024-03-01"},
			{"account_code": "4001", "account_name": "Sales", "credit": 100, "entry_date": "2024-03-01"},
		},
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/companies/:company_id/ledger-entries")
	c.SetParamNames("company_id")
	c.SetParamValues(strings.Repeat("c", 32))

	if err := h.PostEntries(c); err != nil {
		t.Fatalf("PostEntries: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d (%s)", rec.Code, rec.Body.String())
	}
	if len(stored) != 2 {
		t.Fatalf("stored = %d entries", len(stored))
	}
}

func TestPostEntries_BadCompanyID(t *testing.T) {
	e := newEchoWithValidator()
	h := NewLedgerHandler(uc.NewUsecase(&ledgermock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodPost, "/", mustJSON(map[string]any{"entries": []map[string]any{{"account_code": "1001", "account_name": "Cash", "debit": 1}}}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/companies/:company_id/ledger-entries")
	c.SetParamNames("company_id")
	c.SetParamValues("not-a-company")

	if err := h.PostEntries(c); err != nil {
		t.Fatalf("PostEntries: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetTrialBalance(t *testing.T) {
	e := newEchoWithValidator()
	h := NewLedgerHandler(uc.NewUsecase(&ledgermock.Repo{
		ListByCompanyIDFn: func(ctx context.Context, companyID string) ([]domain.Entry, error) {
			return []domain.Entry{
				{AccountCode: "1001", AccountName: "Cash", Debit: 100},
				{AccountCode: "4001", AccountName: "Sales", Credit: 100},
			}, nil
		},
	}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/companies/:company_id/trial-balance")
	c.SetParamNames("company_id")
	c.SetParamValues(strings.Repeat("c", 32))

	if err := h.GetTrialBalance(c); err != nil {
		t.Fatalf("GetTrialBalance: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Rows     []domain.TrialBalanceRow `json:"rows"`
		Balanced bool                     `json:"balanced"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !resp.Balanced || len(resp.Rows) != 2 {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Rows[0].Balance != 100 || resp.Rows[1].Balance != -100 {
		t.Fatalf("balances = %v / %v", resp.Rows[0].Balance, resp.Rows[1].Balance)
	}
}
