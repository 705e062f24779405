package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records one subscription credit purchase. The stripe_pi column
// carries the provider's payment intent id as an opaque reference.
type Payment struct {
	ID       int64           `gorm:"column:id;primaryKey;autoIncrement"`
	UserID   int64           `gorm:"column:user_id;not null;index"`
	Amount   decimal.Decimal `gorm:"column:amount;type:numeric(12,2);not null"`
	IsValid  bool            `gorm:"column:is_valid;not null;default:false"`
	StripePI string          `gorm:"column:stripe_pi;not null"`
	Date     time.Time       `gorm:"column:date;autoCreateTime"`
}
