package works

import (
	"time"

	"github.com/devisio-app/devisio-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// CreateWorkRequest is the payload for adding a catalog entry.
type CreateWorkRequest struct {
	Name        string          `json:"name" validate:"required,max=50"`
	Description *string         `json:"description" validate:"omitempty,max=500"`
	Unit        string          `json:"unit" validate:"required,max=10"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// UpdateWorkRequest carries only the fields the caller wants to change.
type UpdateWorkRequest struct {
	Name        *string          `json:"name" validate:"omitempty,max=50"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Unit        *string          `json:"unit" validate:"omitempty,max=10"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
}

// WorkResponse is the catalog entry as returned to clients.
type WorkResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func toResponse(work *models.Work) *WorkResponse {
	return &WorkResponse{
		ID:          work.ID,
		Name:        work.Name,
		Description: work.Description,
		Unit:        work.Unit,
		UnitPrice:   work.UnitPrice,
		CreatedAt:   work.CreatedAt,
		UpdatedAt:   work.UpdatedAt,
	}
}
