package share

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "office-nexus-backend/internal/domain/share"
	"office-nexus-backend/pkg/apperr"
	"office-nexus-backend/pkg/id"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type TransferInput struct {
	FromPositionID string
	// ToPositionID empty means the shares go to a brand-new holder; then
	// NewHolderPersonID/Name are required.
	ToPositionID      string
	NewHolderPersonID string
	NewHolderName     string
	Shares            int64
	Mode              domain.RecalcMode // empty defaults to legacy
	TotalIssuedShares int64             // required for issued_total mode
}

type TransferResult struct {
	From domain.Position `json:"from"`
	To   domain.Position `json:"to"`
}

// Transfer moves shares between two positions inside one transaction. Both
// rows are written or neither is; the percentage arithmetic itself is the
// pure share.Transfer function.
func (u *Usecase) Transfer(ctx context.Context, in TransferInput) (*TransferResult, error) {
	mode := in.Mode
	if mode == "" {
		mode = domain.RecalcModeLegacy
	}
	if !mode.Valid() {
		return nil, apperr.ValidationField("mode", "must be legacy or issued_total")
	}
	if in.ToPositionID == "" && in.NewHolderPersonID == "" {
		return nil, apperr.ValidationField("new_holder_person_id", "required when transferring to a new shareholder")
	}
	if in.ToPositionID != "" && in.ToPositionID == in.FromPositionID {
		return nil, apperr.Validation("cannot transfer shares to the same position")
	}

	var result *TransferResult
	err := u.repo.Tx(ctx, func(r domain.Repository) error {
		from, err := r.GetByPositionIDForUpdate(ctx, in.FromPositionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("shareholder position %s not found", in.FromPositionID)
			}
			return err
		}

		var to *domain.Position
		if in.ToPositionID != "" {
			to, err = r.GetByPositionIDForUpdate(ctx, in.ToPositionID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NotFound("shareholder position %s not found", in.ToPositionID)
				}
				return err
			}
			if to.CompanyID != from.CompanyID {
				return apperr.Validation("positions belong to different companies")
			}
		}

		newFrom, newTo, err := domain.Transfer(*from, to, in.Shares, mode, in.TotalIssuedShares)
		if err != nil {
			return err
		}

		if err := r.Save(ctx, &newFrom); err != nil {
			return err
		}
		if to == nil {
			newTo.PositionID = id.NewID32()
			newTo.CompanyID = from.CompanyID
			newTo.PersonID = in.NewHolderPersonID
			newTo.PersonName = in.NewHolderName
			if err := r.Create(ctx, &newTo); err != nil {
				return err
			}
		} else {
			if err := r.Save(ctx, &newTo); err != nil {
				return err
			}
		}
		result = &TransferResult{From: newFrom, To: newTo}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *Usecase) ListByCompany(ctx context.Context, companyID string) ([]domain.Position, error) {
	return u.repo.ListByCompanyID(ctx, companyID)
}
