package quotes

import (
	"context"
	"errors"

	"github.com/devisio-app/devisio-backend/pkg/db/models"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a quotes repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CreateQuote(ctx context.Context, quote *models.Quote) (*models.Quote, error) {
	if err := r.db.WithContext(ctx).Create(quote).Error; err != nil {
		return nil, err
	}
	return quote, nil
}

func (r *repository) CreateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *repository) CreateElements(ctx context.Context, elements []models.QuoteElement) error {
	if len(elements) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&elements).Error
}

func (r *repository) CreateMedias(ctx context.Context, medias []models.QuoteMedia) error {
	if len(medias) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&medias).Error
}

func (r *repository) FindQuoteForUser(ctx context.Context, quoteID, userID int64) (*models.Quote, error) {
	var quote models.Quote
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", quoteID, userID).
		First(&quote).Error
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// aggregateSelect pulls the quote, its customer and all elements and medias
// in a single round trip. The element/media cross product is collapsed by
// the mapper.
const aggregateSelect = `
SELECT
  q.id AS quote_id,
  q.user_id AS user_id,
  q.global_discount AS global_discount,
  q.name AS name,
  q.general_infos AS general_infos,
  q.status AS status,
  q.expires_at AS expires_at,
  q.created_at AS created_at,
  c.id AS customer_id,
  c.first_name AS first_name,
  c.last_name AS last_name,
  c.street AS street,
  c.city AS city,
  c.zip AS zip,
  c.phone AS phone,
  c.email AS email,
  e.id AS element_id,
  e.work_id AS work_id,
  e.quote_section AS quote_section,
  e.vat AS vat,
  e.discount AS discount,
  e.quantity AS quantity,
  m.id AS media_id,
  m.path_name AS path_name,
  m.alt_text AS alt_text
FROM quotes q
LEFT JOIN customers c ON c.id = q.customer_id
LEFT JOIN quote_elements e ON e.quote_id = q.id
LEFT JOIN quote_medias m ON m.quote_id = q.id
`

const aggregateOrder = ` ORDER BY e.id ASC, m.id ASC`

func (r *repository) FindDetail(ctx context.Context, quoteID int64) (*QuoteDetail, error) {
	return r.scanDetail(ctx, aggregateSelect+`WHERE q.id = ?`+aggregateOrder, quoteID)
}

func (r *repository) FindDetailForUser(ctx context.Context, quoteID, userID int64) (*QuoteDetail, error) {
	return r.scanDetail(ctx, aggregateSelect+`WHERE q.id = ? AND q.user_id = ?`+aggregateOrder, quoteID, userID)
}

func (r *repository) scanDetail(ctx context.Context, query string, args ...any) (*QuoteDetail, error) {
	var rows []quoteJoinRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	detail := buildDetail(rows)
	if detail == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return detail, nil
}

func (r *repository) FindQuoteIDsForUser(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&models.Quote{}).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *repository) UpdateQuote(ctx context.Context, quoteID, userID int64, updates map[string]any) (int64, error) {
	if len(updates) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&models.Quote{}).
		Where("id = ? AND user_id = ?", quoteID, userID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *repository) UpdateCustomer(ctx context.Context, customerID, userID int64, updates map[string]any) (int64, error) {
	if len(updates) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ? AND user_id = ?", customerID, userID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *repository) UpdateElement(ctx context.Context, elementID, quoteID int64, updates map[string]any) (int64, error) {
	if len(updates) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&models.QuoteElement{}).
		Where("id = ? AND quote_id = ?", elementID, quoteID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// DeleteElementsExcept removes every element of the quote whose id is not in
// keepIDs. With an empty keep list the whole element set is cleared.
func (r *repository) DeleteElementsExcept(ctx context.Context, quoteID int64, keepIDs []int64) error {
	query := r.db.WithContext(ctx).Where("quote_id = ?", quoteID)
	if len(keepIDs) > 0 {
		query = query.Where("id NOT IN ?", keepIDs)
	}
	return query.Delete(&models.QuoteElement{}).Error
}

func (r *repository) UpdateMedia(ctx context.Context, mediaID, quoteID int64, updates map[string]any) (int64, error) {
	if len(updates) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&models.QuoteMedia{}).
		Where("id = ? AND quote_id = ?", mediaID, quoteID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// DeleteQuoteForUser removes the quote, its owned customer and its children.
// Children are deleted explicitly so the behavior does not depend on FK
// cascade support. The customer id is read before the quote row goes away.
func (r *repository) DeleteQuoteForUser(ctx context.Context, quoteID, userID int64) (int64, error) {
	var quote models.Quote
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", quoteID, userID).
		First(&quote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	res := r.db.WithContext(ctx).Where("id = ?", quote.ID).Delete(&models.Quote{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, nil
	}
	if err := r.db.WithContext(ctx).Where("quote_id = ?", quoteID).Delete(&models.QuoteElement{}).Error; err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Where("quote_id = ?", quoteID).Delete(&models.QuoteMedia{}).Error; err != nil {
		return 0, err
	}
	if quote.CustomerID != nil {
		err := r.db.WithContext(ctx).
			Where("id = ? AND user_id = ?", *quote.CustomerID, userID).
			Delete(&models.Customer{}).Error
		if err != nil {
			return 0, err
		}
	}
	return res.RowsAffected, nil
}
