package quotes

import (
	"context"

	"github.com/devisio-app/devisio-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the quote aggregate tables.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateQuote(ctx context.Context, quote *models.Quote) (*models.Quote, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	CreateElements(ctx context.Context, elements []models.QuoteElement) error
	CreateMedias(ctx context.Context, medias []models.QuoteMedia) error
	FindQuoteForUser(ctx context.Context, quoteID, userID int64) (*models.Quote, error)
	FindDetail(ctx context.Context, quoteID int64) (*QuoteDetail, error)
	FindDetailForUser(ctx context.Context, quoteID, userID int64) (*QuoteDetail, error)
	FindQuoteIDsForUser(ctx context.Context, userID int64) ([]int64, error)
	UpdateQuote(ctx context.Context, quoteID, userID int64, updates map[string]any) (int64, error)
	UpdateCustomer(ctx context.Context, customerID, userID int64, updates map[string]any) (int64, error)
	UpdateElement(ctx context.Context, elementID, quoteID int64, updates map[string]any) (int64, error)
	DeleteElementsExcept(ctx context.Context, quoteID int64, keepIDs []int64) error
	UpdateMedia(ctx context.Context, mediaID, quoteID int64, updates map[string]any) (int64, error)
	DeleteQuoteForUser(ctx context.Context, quoteID, userID int64) (int64, error)
}
