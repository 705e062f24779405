package works

import (
	"context"
	"errors"
	"fmt"

	"github.com/devisio-app/devisio-backend/pkg/db/models"
	pkgerrors "github.com/devisio-app/devisio-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes the personal pricing catalog operations.
type Service interface {
	Create(ctx context.Context, userID int64, req CreateWorkRequest) (*WorkResponse, error)
	GetAllForUser(ctx context.Context, userID int64) ([]WorkResponse, error)
	GetByIDForUser(ctx context.Context, userID, workID int64) (*WorkResponse, error)
	UpdateByIDForUser(ctx context.Context, userID, workID int64, req UpdateWorkRequest) (*WorkResponse, error)
	DeleteByIDForUser(ctx context.Context, userID, workID int64) error
}

type service struct {
	repo Repository
}

// NewService builds a works service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("works repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, userID int64, req CreateWorkRequest) (*WorkResponse, error) {
	if userID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if req.UnitPrice.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unit price cannot be negative")
	}

	work, err := s.repo.CreateWork(ctx, &models.Work{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Unit:        req.Unit,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create work")
	}
	return toResponse(work), nil
}

func (s *service) GetAllForUser(ctx context.Context, userID int64) ([]WorkResponse, error) {
	if userID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	rows, err := s.repo.FindWorksForUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list works")
	}
	out := make([]WorkResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *toResponse(&rows[i]))
	}
	return out, nil
}

func (s *service) GetByIDForUser(ctx context.Context, userID, workID int64) (*WorkResponse, error) {
	if userID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	work, err := s.repo.FindWorkForUser(ctx, workID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "work not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load work")
	}
	return toResponse(work), nil
}

func (s *service) UpdateByIDForUser(ctx context.Context, userID, workID int64, req UpdateWorkRequest) (*WorkResponse, error) {
	if userID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Unit != nil {
		updates["unit"] = *req.Unit
	}
	if req.UnitPrice != nil {
		if req.UnitPrice.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unit price cannot be negative")
		}
		updates["unit_price"] = *req.UnitPrice
	}
	if len(updates) == 0 {
		return s.GetByIDForUser(ctx, userID, workID)
	}

	rows, err := s.repo.UpdateWork(ctx, workID, userID, updates)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update work")
	}
	if rows == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "work not found")
	}
	return s.GetByIDForUser(ctx, userID, workID)
}

func (s *service) DeleteByIDForUser(ctx context.Context, userID, workID int64) error {
	if userID <= 0 {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	rows, err := s.repo.DeleteWork(ctx, workID, userID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete work")
	}
	if rows == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "work not found")
	}
	return nil
}
