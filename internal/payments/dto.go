package payments

import (
	"time"

	"github.com/devisio-app/devisio-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// Plan identifies the subscription credit bundles sold to artisans.
type Plan string

const (
	PlanShort Plan = "short"
	PlanLong  Plan = "long"
)

// AddCreditRequest is the payload recording a completed payment. The
// payment intent id is an opaque reference from the provider.
type AddCreditRequest struct {
	Plan     string          `json:"plan" validate:"required"`
	Amount   decimal.Decimal `json:"amount"`
	StripePI string          `json:"stripe_pi" validate:"required,max=100"`
}

// CreditResponse returns the recorded payment and the new expiry.
type CreditResponse struct {
	Payment   *PaymentResponse `json:"payment"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// PaymentResponse is one billing record as returned to clients.
type PaymentResponse struct {
	ID       int64           `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	IsValid  bool            `json:"is_valid"`
	StripePI string          `json:"stripe_pi"`
	Date     time.Time       `json:"date"`
}

func toResponse(payment *models.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:       payment.ID,
		Amount:   payment.Amount,
		IsValid:  payment.IsValid,
		StripePI: payment.StripePI,
		Date:     payment.Date,
	}
}
