package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/devisio-app/devisio-backend/pkg/config"
	"github.com/devisio-app/devisio-backend/pkg/db/models"
	pkgerrors "github.com/devisio-app/devisio-backend/pkg/errors"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes subscription billing operations.
type Service interface {
	AddCredit(ctx context.Context, userID int64, req AddCreditRequest) (*CreditResponse, error)
	GetAllForUser(ctx context.Context, userID int64) ([]PaymentResponse, error)
}

type service struct {
	repo    Repository
	tx      txRunner
	billing config.BillingConfig
	now     func() time.Time
}

// NewService builds a payments service with the required dependencies.
func NewService(repo Repository, tx txRunner, billing config.BillingConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("payments repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx, billing: billing, now: time.Now}, nil
}

// AddCredit records a completed payment and pushes the user's subscription
// expiry out by the plan duration. A still-running subscription is extended
// from its current expiry, a lapsed one restarts from now. Both writes share
// one transaction.
func (s *service) AddCredit(ctx context.Context, userID int64, req AddCreditRequest) (*CreditResponse, error) {
	if userID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	months, err := s.planMonths(Plan(req.Plan))
	if err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "amount cannot be negative")
	}

	var response *CreditResponse
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		user, err := repo.FindUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
		}

		now := s.now()
		base := now
		if user.ExpiresAt != nil && user.ExpiresAt.After(now) {
			base = *user.ExpiresAt
		}
		expiry := base.AddDate(0, months, 0)

		payment, err := repo.CreatePayment(ctx, &models.Payment{
			UserID:   userID,
			Amount:   req.Amount,
			IsValid:  true,
			StripePI: req.StripePI,
			Date:     now,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record payment")
		}

		if _, err := repo.UpdateUserExpiry(ctx, userID, map[string]any{"expires_at": expiry}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "extend subscription")
		}

		response = &CreditResponse{Payment: toResponse(payment), ExpiresAt: expiry}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (s *service) GetAllForUser(ctx context.Context, userID int64) ([]PaymentResponse, error) {
	if userID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	rows, err := s.repo.FindPaymentsForUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list payments")
	}
	out := make([]PaymentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *toResponse(&rows[i]))
	}
	return out, nil
}

func (s *service) planMonths(plan Plan) (int, error) {
	switch plan {
	case PlanShort:
		return s.billing.ShortPlanMonths, nil
	case PlanLong:
		return s.billing.LongPlanMonths, nil
	default:
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "plan must be short or long")
	}
}
