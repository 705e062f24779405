package quotes

import (
	"time"

	"github.com/devisio-app/devisio-backend/pkg/enums"
)

// QuoteDetail is the full aggregate returned to clients: the quote row plus
// its customer, line elements and attached medias.
type QuoteDetail struct {
	ID             int64             `json:"id"`
	UserID         int64             `json:"user_id"`
	GlobalDiscount float64           `json:"global_discount"`
	Name           *string           `json:"name"`
	GeneralInfos   *string           `json:"general_infos"`
	Status         enums.QuoteStatus `json:"status"`
	ExpiresAt      *time.Time        `json:"expires_at"`
	CreatedAt      time.Time         `json:"created_at"`
	Customer       *CustomerDetail   `json:"customer"`
	Elements       []ElementDetail   `json:"quote_elements"`
	Medias         []MediaDetail     `json:"quote_medias"`
}

// CustomerDetail is the customer as embedded in a quote aggregate.
type CustomerDetail struct {
	ID        int64   `json:"id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Street    *string `json:"street"`
	City      *string `json:"city"`
	Zip       *int    `json:"zip"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}

// ElementDetail is one priced line of the quote.
type ElementDetail struct {
	ID           int64         `json:"id"`
	WorkID       int64         `json:"work_id"`
	QuoteSection string        `json:"quote_section"`
	VAT          enums.VATRate `json:"vat"`
	Discount     float64       `json:"discount"`
	Quantity     int           `json:"quantity"`
}

// MediaDetail is one illustration attached to the quote.
type MediaDetail struct {
	ID       int64   `json:"id"`
	PathName string  `json:"path_name"`
	AltText  *string `json:"alt_text"`
}

// CustomerInput is a nested customer payload. A non-nil ID targets an
// existing customer; a nil ID asks for a fresh row owned by the caller.
type CustomerInput struct {
	ID        *int64
	FirstName *string
	LastName  *string
	Street    *string
	City      *string
	Zip       *int
	Phone     *string
	Email     *string

	// Fields holds only the columns the payload actually carried, so an
	// update leaves the others untouched.
	Fields map[string]any
}

// ElementInput is one element of a create or sync payload. A non-nil ID
// updates the existing row; a nil ID inserts a new one.
type ElementInput struct {
	ID           *int64
	WorkID       int64
	QuoteSection string
	VAT          enums.VATRate
	Discount     float64
	Quantity     int
}

// MediaInput describes a media row. Creation requires a path; updates
// always target an existing row by ID.
type MediaInput struct {
	ID       *int64
	PathName *string
	AltText  *string

	// Fields holds only the columns the payload actually carried.
	Fields map[string]any
}

// CreateInput is the validated payload of a quote creation.
type CreateInput struct {
	Name           *string
	GeneralInfos   *string
	GlobalDiscount float64
	Status         enums.QuoteStatus
	ExpiresAt      *time.Time
	Customer       *CustomerInput
	Elements       []ElementInput
	Medias         []MediaInput
}

// UpdateInput is the validated payload of a quote update. Fields maps the
// quote columns the caller actually sent, so untouched columns stay as they
// are. SyncElements distinguishes "replace the element set" from "leave the
// elements alone".
type UpdateInput struct {
	Fields       map[string]any
	Customer     *CustomerInput
	Elements     []ElementInput
	SyncElements bool
	Medias       []MediaInput
}
