package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	capitalDomain "office-nexus-backend/internal/domain/capital"
	"office-nexus-backend/internal/domain/uow"
	withdrawalDomain "office-nexus-backend/internal/domain/withdrawal"
	"office-nexus-backend/internal/testutil/capitalmock"
	"office-nexus-backend/internal/testutil/uowmock"
	"office-nexus-backend/internal/testutil/withdrawalmock"
	uc "office-nexus-backend/internal/usecase/withdrawal"
)

func withdrawalUsecase(l *capitalDomain.Lock, pending *withdrawalDomain.Request) *uc.Usecase {
	locks := &capitalmock.Repo{
		GetByLockIDForUpdateFn: func(ctx context.Context, lockID string) (*capitalDomain.Lock, error) {
			if l != nil && lockID == l.LockID {
				return l, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*capitalDomain.Lock, error) {
			if l != nil && id == l.ID {
				return l, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	wds := &withdrawalmock.Repo{
		GetPendingByLockedCapitalIDFn: func(ctx context.Context, id uint64) (*withdrawalDomain.Request, error) {
			return nil, gorm.ErrRecordNotFound
		},
		GetByRequestIDForUpdateFn: func(ctx context.Context, requestID string) (*withdrawalDomain.Request, error) {
			if pending != nil && requestID == pending.RequestID {
				return pending, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	return uc.NewUsecase(uowmock.Passthrough(uow.Repos{Locks: locks, Withdrawals: wds}), 5)
}

func testLock() *capitalDomain.Lock {
	lockDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &capitalDomain.Lock{
		ID:           11,
		LockID:       strings.Repeat("a", 32),
		CompanyID:    strings.Repeat("c", 32),
		Principal:    500_000,
		Currency:     capitalDomain.CurrencyRWF,
		LockDate:     lockDate,
		UnlockDate:   lockDate.AddDate(0, 12, 0),
		TotalROIRate: 10,
		Status:       capitalDomain.StatusLocked,
	}
}

func TestRequestWithdrawal_Success(t *testing.T) {
	e := newEchoWithValidator()
	l := testLock()
	h := NewWithdrawalHandler(withdrawalUsecase(l, nil))

	req := httptest.NewRequest(stdhttp.MethodPost, "/", mustJSON(map[string]any{"reason": "school fees"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/capital-locks/:lock_id/withdrawals")
	c.SetParamNames("lock_id")
	c.SetParamValues(l.LockID)

	if err := h.RequestWithdrawal(c); err != nil {
		t.Fatalf("RequestWithdrawal: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", rec.Code, rec.Body.String())
	}
	var got uc.RequestDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.PenaltyAmount != 25_000 || got.Status != "pending" {
		t.Fatalf("dto: %+v", got)
	}
}

func TestRequestWithdrawal_MissingReason(t *testing.T) {
	e := newEchoWithValidator()
	h := NewWithdrawalHandler(withdrawalUsecase(testLock(), nil))

	req := httptest.NewRequest(stdhttp.MethodPost, "/", mustJSON(map[string]any{}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/capital-locks/:lock_id/withdrawals")
	c.SetParamNames("lock_id")
	c.SetParamValues(strings.Repeat("a", 32))

	if err := h.RequestWithdrawal(c); err != nil {
		t.Fatalf("RequestWithdrawal: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestRequestWithdrawal_UnlockedLockConflicts(t *testing.T) {
	e := newEchoWithValidator()
	l := testLock()
	l.Status = capitalDomain.StatusUnlocked
	h := NewWithdrawalHandler(withdrawalUsecase(l, nil))

	req := httptest.NewRequest(stdhttp.MethodPost, "/", mustJSON(map[string]any{"reason": "x"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/capital-locks/:lock_id/withdrawals")
	c.SetParamNames("lock_id")
	c.SetParamValues(l.LockID)

	if err := h.RequestWithdrawal(c); err != nil {
		t.Fatalf("RequestWithdrawal: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409 (%s)", rec.Code, rec.Body.String())
	}
}

func TestResolveWithdrawal_ApproveThenSecondConflicts(t *testing.T) {
	e := newEchoWithValidator()
	l := testLock()
	pending, err := withdrawalDomain.NewRequest(l, strings.Repeat("f", 32), "x", 5, l.LockDate.AddDate(0, 2, 0))
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	h := NewWithdrawalHandler(withdrawalUsecase(l, pending))

	do := func(approve bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(stdhttp.MethodPost, "/", mustJSON(map[string]any{"approve": approve}))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/v1/withdrawals/:request_id/resolve")
		c.SetParamNames("request_id")
		c.SetParamValues(pending.RequestID)
		if err := h.ResolveWithdrawal(c); err != nil {
			t.Fatalf("ResolveWithdrawal: %v", err)
		}
		return rec
	}

	first := do(true)
	if first.Code != stdhttp.StatusOK {
		t.Fatalf("first resolve status = %d (%s)", first.Code, first.Body.String())
	}
	var got uc.RequestDTO
	if err := json.Unmarshal(first.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Status != "approved" || got.LockStatus != string(capitalDomain.StatusUnlocked) {
		t.Fatalf("dto: %+v", got)
	}

	second := do(false)
	if second.Code != stdhttp.StatusConflict {
		t.Fatalf("second resolve status = %d, want 409", second.Code)
	}
}

func TestResolveWithdrawal_MissingApprove(t *testing.T) {
	e := newEchoWithValidator()
	h := NewWithdrawalHandler(withdrawalUsecase(testLock(), nil))

	req := httptest.NewRequest(stdhttp.MethodPost, "/", mustJSON(map[string]any{}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/withdrawals/:request_id/resolve")
	c.SetParamNames("request_id")
	c.SetParamValues(strings.Repeat("f", 32))

	if err := h.ResolveWithdrawal(c); err != nil {
		t.Fatalf("ResolveWithdrawal: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}
