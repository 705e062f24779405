package quotes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/devisio-app/devisio-backend/internal/schema"
	"github.com/devisio-app/devisio-backend/pkg/db/models"
	pkgerrors "github.com/devisio-app/devisio-backend/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// detailFanOutLimit caps the parallel aggregate reads of a listing.
const detailFanOutLimit = 4

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes the quote aggregate operations. Every write touches the
// aggregate as a whole inside one transaction.
type Service interface {
	Create(ctx context.Context, userID int64, body map[string]any) (*QuoteDetail, error)
	GetByIDForUser(ctx context.Context, userID, quoteID int64) (*QuoteDetail, error)
	GetAllForUser(ctx context.Context, userID int64) ([]QuoteDetail, error)
	UpdateByIDForUser(ctx context.Context, userID, quoteID int64, body map[string]any) (*QuoteDetail, error)
	DeleteByIDForUser(ctx context.Context, userID, quoteID int64) error
}

type service struct {
	repo Repository
	tx   txRunner
	now  func() time.Time
}

// NewService builds a quote service with the required dependencies.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("quotes repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx, now: time.Now}, nil
}

func (s *service) Create(ctx context.Context, userID int64, body map[string]any) (*QuoteDetail, error) {
	if userID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	validated, err := schema.Validate(createSchema(s.now()), body)
	if err != nil {
		return nil, validationError(err)
	}
	input := bindCreateInput(validated)

	var quoteID int64
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		var customerID *int64
		if input.Customer != nil {
			customer, err := repo.CreateCustomer(ctx, customerModel(userID, input.Customer))
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create customer")
			}
			customerID = &customer.ID
		}

		quote, err := repo.CreateQuote(ctx, &models.Quote{
			UserID:         userID,
			CustomerID:     customerID,
			GlobalDiscount: input.GlobalDiscount,
			Name:           input.Name,
			GeneralInfos:   input.GeneralInfos,
			Status:         input.Status,
			ExpiresAt:      input.ExpiresAt,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create quote")
		}
		quoteID = quote.ID

		if err := repo.CreateElements(ctx, elementModels(quote.ID, input.Elements)); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create quote elements")
		}

		medias := make([]models.QuoteMedia, 0, len(input.Medias))
		for _, media := range input.Medias {
			row := models.QuoteMedia{QuoteID: quote.ID, AltText: media.AltText}
			if media.PathName != nil {
				row.PathName = *media.PathName
			}
			medias = append(medias, row)
		}
		if err := repo.CreateMedias(ctx, medias); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create quote medias")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetByIDForUser(ctx, userID, quoteID)
}

func (s *service) GetByIDForUser(ctx context.Context, userID, quoteID int64) (*QuoteDetail, error) {
	if userID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	detail, err := s.repo.FindDetailForUser(ctx, quoteID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "quote not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load quote")
	}
	return detail, nil
}

// GetAllForUser lists the full aggregates of a user. Each aggregate is one
// wide query; the per-quote reads run concurrently with a bounded fan-out
// and the listing keeps the repository ordering.
func (s *service) GetAllForUser(ctx context.Context, userID int64) ([]QuoteDetail, error) {
	if userID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	ids, err := s.repo.FindQuoteIDsForUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list quotes")
	}

	details := make([]*QuoteDetail, len(ids))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(detailFanOutLimit)
	for i, id := range ids {
		i, id := i, id
		group.Go(func() error {
			detail, err := s.repo.FindDetailForUser(groupCtx, id, userID)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load quote")
			}
			details[i] = detail
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	out := make([]QuoteDetail, 0, len(details))
	for _, detail := range details {
		if detail != nil {
			out = append(out, *detail)
		}
	}
	return out, nil
}

func (s *service) UpdateByIDForUser(ctx context.Context, userID, quoteID int64, body map[string]any) (*QuoteDetail, error) {
	if userID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	validated, err := schema.Validate(updateSchema(), body)
	if err != nil {
		return nil, validationError(err)
	}
	input := bindUpdateInput(validated)

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		quote, err := repo.FindQuoteForUser(ctx, quoteID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "quote not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load quote")
		}

		if len(input.Fields) > 0 {
			if _, err := repo.UpdateQuote(ctx, quote.ID, userID, input.Fields); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update quote")
			}
		}

		if input.Customer != nil {
			if err := s.applyCustomer(ctx, repo, quote, userID, input.Customer); err != nil {
				return err
			}
		}

		if input.SyncElements {
			if err := s.syncElements(ctx, repo, quote.ID, input.Elements); err != nil {
				return err
			}
		}

		for _, media := range input.Medias {
			if media.ID == nil || len(media.Fields) == 0 {
				continue
			}
			rows, err := repo.UpdateMedia(ctx, *media.ID, quote.ID, media.Fields)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update quote media")
			}
			if rows == 0 {
				return pkgerrors.New(pkgerrors.CodeNotFound, "quote media not found")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetByIDForUser(ctx, userID, quoteID)
}

// applyCustomer updates the targeted customer when the payload carries an
// id, otherwise inserts a fresh one and relinks the quote to it.
func (s *service) applyCustomer(ctx context.Context, repo Repository, quote *models.Quote, userID int64, input *CustomerInput) error {
	if input.ID != nil {
		if len(input.Fields) == 0 {
			return nil
		}
		rows, err := repo.UpdateCustomer(ctx, *input.ID, userID, input.Fields)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update customer")
		}
		if rows == 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil
	}

	customer, err := repo.CreateCustomer(ctx, customerModel(userID, input))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create customer")
	}
	if _, err := repo.UpdateQuote(ctx, quote.ID, userID, map[string]any{"customer_id": customer.ID}); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "link customer")
	}
	return nil
}

// syncElements makes the stored element set match the payload: elements with
// an id are updated in place, elements without one are inserted, and rows
// absent from the payload are deleted.
func (s *service) syncElements(ctx context.Context, repo Repository, quoteID int64, elements []ElementInput) error {
	keep := make([]int64, 0, len(elements))
	inserts := make([]ElementInput, 0, len(elements))

	for _, element := range elements {
		if element.ID == nil {
			inserts = append(inserts, element)
			continue
		}
		rows, err := repo.UpdateElement(ctx, *element.ID, quoteID, map[string]any{
			"work_id":       element.WorkID,
			"quote_section": element.QuoteSection,
			"vat":           element.VAT,
			"discount":      element.Discount,
			"quantity":      element.Quantity,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update quote element")
		}
		if rows == 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "quote element not found")
		}
		keep = append(keep, *element.ID)
	}

	created := elementModels(quoteID, inserts)
	if err := repo.CreateElements(ctx, created); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create quote elements")
	}
	for _, row := range created {
		keep = append(keep, row.ID)
	}

	if err := repo.DeleteElementsExcept(ctx, quoteID, keep); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "prune quote elements")
	}
	return nil
}

func (s *service) DeleteByIDForUser(ctx context.Context, userID, quoteID int64) error {
	if userID <= 0 {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		rows, err := s.repo.WithTx(tx).DeleteQuoteForUser(ctx, quoteID, userID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete quote")
		}
		if rows == 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "quote not found")
		}
		return nil
	})
}

func customerModel(userID int64, input *CustomerInput) *models.Customer {
	return &models.Customer{
		UserID:    userID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Street:    input.Street,
		City:      input.City,
		Zip:       input.Zip,
		Phone:     input.Phone,
		Email:     input.Email,
	}
}

func elementModels(quoteID int64, inputs []ElementInput) []models.QuoteElement {
	out := make([]models.QuoteElement, 0, len(inputs))
	for _, input := range inputs {
		out = append(out, models.QuoteElement{
			QuoteID:      quoteID,
			WorkID:       input.WorkID,
			QuoteSection: input.QuoteSection,
			VAT:          input.VAT,
			Discount:     input.Discount,
			Quantity:     input.Quantity,
		})
	}
	return out
}

func validationError(err error) error {
	if verr, ok := schema.AsError(err); ok {
		return pkgerrors.New(pkgerrors.CodeValidation, verr.Error()).WithDetails(verr.Details())
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payload")
}
