package models

import "github.com/devisio-app/devisio-backend/pkg/enums"

// QuoteElement is one line item of a quote, priced against a work catalog entry.
type QuoteElement struct {
	ID           int64         `gorm:"column:id;primaryKey;autoIncrement"`
	QuoteID      int64         `gorm:"column:quote_id;not null;index"`
	WorkID       int64         `gorm:"column:work_id;not null"`
	QuoteSection string        `gorm:"column:quote_section;not null"`
	VAT          enums.VATRate `gorm:"column:vat;not null"`
	Discount     float64       `gorm:"column:discount;not null;default:0"`
	Quantity     int           `gorm:"column:quantity;not null"`
}
