package quotes

import (
	"time"

	"github.com/devisio-app/devisio-backend/pkg/enums"
)

// quoteJoinRow is one row of the wide aggregate query. The customer,
// element and media columns are nullable because of the left joins, and the
// element/media cross product repeats them.
type quoteJoinRow struct {
	QuoteID        int64      `gorm:"column:quote_id"`
	UserID         int64      `gorm:"column:user_id"`
	GlobalDiscount float64    `gorm:"column:global_discount"`
	Name           *string    `gorm:"column:name"`
	GeneralInfos   *string    `gorm:"column:general_infos"`
	Status         string     `gorm:"column:status"`
	ExpiresAt      *time.Time `gorm:"column:expires_at"`
	CreatedAt      time.Time  `gorm:"column:created_at"`

	CustomerID *int64  `gorm:"column:customer_id"`
	FirstName  *string `gorm:"column:first_name"`
	LastName   *string `gorm:"column:last_name"`
	Street     *string `gorm:"column:street"`
	City       *string `gorm:"column:city"`
	Zip        *int    `gorm:"column:zip"`
	Phone      *string `gorm:"column:phone"`
	Email      *string `gorm:"column:email"`

	ElementID    *int64   `gorm:"column:element_id"`
	WorkID       *int64   `gorm:"column:work_id"`
	QuoteSection *string  `gorm:"column:quote_section"`
	VAT          *string  `gorm:"column:vat"`
	Discount     *float64 `gorm:"column:discount"`
	Quantity     *int     `gorm:"column:quantity"`

	MediaID  *int64  `gorm:"column:media_id"`
	PathName *string `gorm:"column:path_name"`
	AltText  *string `gorm:"column:alt_text"`
}

// buildDetail folds join rows back into one aggregate. Children are
// deduplicated by primary key and keep their first-occurrence order, so the
// element/media cross product collapses cleanly.
func buildDetail(rows []quoteJoinRow) *QuoteDetail {
	if len(rows) == 0 {
		return nil
	}

	head := rows[0]
	detail := &QuoteDetail{
		ID:             head.QuoteID,
		UserID:         head.UserID,
		GlobalDiscount: head.GlobalDiscount,
		Name:           head.Name,
		GeneralInfos:   head.GeneralInfos,
		Status:         enums.QuoteStatus(head.Status),
		ExpiresAt:      head.ExpiresAt,
		CreatedAt:      head.CreatedAt,
		Elements:       []ElementDetail{},
		Medias:         []MediaDetail{},
	}
	if head.CustomerID != nil {
		detail.Customer = &CustomerDetail{
			ID:        *head.CustomerID,
			FirstName: head.FirstName,
			LastName:  head.LastName,
			Street:    head.Street,
			City:      head.City,
			Zip:       head.Zip,
			Phone:     head.Phone,
			Email:     head.Email,
		}
	}

	seenElements := map[int64]bool{}
	seenMedias := map[int64]bool{}
	for _, row := range rows {
		if row.ElementID != nil && !seenElements[*row.ElementID] {
			seenElements[*row.ElementID] = true
			element := ElementDetail{ID: *row.ElementID}
			if row.WorkID != nil {
				element.WorkID = *row.WorkID
			}
			if row.QuoteSection != nil {
				element.QuoteSection = *row.QuoteSection
			}
			if row.VAT != nil {
				element.VAT = enums.VATRate(*row.VAT)
			}
			if row.Discount != nil {
				element.Discount = *row.Discount
			}
			if row.Quantity != nil {
				element.Quantity = *row.Quantity
			}
			detail.Elements = append(detail.Elements, element)
		}
		if row.MediaID != nil && !seenMedias[*row.MediaID] {
			seenMedias[*row.MediaID] = true
			media := MediaDetail{ID: *row.MediaID, AltText: row.AltText}
			if row.PathName != nil {
				media.PathName = *row.PathName
			}
			detail.Medias = append(detail.Medias, media)
		}
	}
	return detail
}
