package models

import (
	"time"

	"github.com/devisio-app/devisio-backend/pkg/enums"
)

// Quote is the root row of the quote aggregate.
type Quote struct {
	ID             int64             `gorm:"column:id;primaryKey;autoIncrement"`
	UserID         int64             `gorm:"column:user_id;not null;index"`
	CustomerID     *int64            `gorm:"column:customer_id"`
	GlobalDiscount float64           `gorm:"column:global_discount;not null;default:0"`
	Name           *string           `gorm:"column:name"`
	GeneralInfos   *string           `gorm:"column:general_infos"`
	Status         enums.QuoteStatus `gorm:"column:status;not null;default:'draft'"`
	ExpiresAt      *time.Time        `gorm:"column:expires_at"`
	CreatedAt      time.Time         `gorm:"column:created_at;autoCreateTime"`
}
