package works

import (
	"context"

	"github.com/devisio-app/devisio-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the work catalog.
type Repository interface {
	CreateWork(ctx context.Context, work *models.Work) (*models.Work, error)
	FindWorksForUser(ctx context.Context, userID int64) ([]models.Work, error)
	FindWorkForUser(ctx context.Context, workID, userID int64) (*models.Work, error)
	UpdateWork(ctx context.Context, workID, userID int64, updates map[string]any) (int64, error)
	DeleteWork(ctx context.Context, workID, userID int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a works repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateWork(ctx context.Context, work *models.Work) (*models.Work, error) {
	if err := r.db.WithContext(ctx).Create(work).Error; err != nil {
		return nil, err
	}
	return work, nil
}

func (r *repository) FindWorksForUser(ctx context.Context, userID int64) ([]models.Work, error) {
	var works []models.Work
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC, id ASC").
		Find(&works).Error
	if err != nil {
		return nil, err
	}
	return works, nil
}

func (r *repository) FindWorkForUser(ctx context.Context, workID, userID int64) (*models.Work, error) {
	var work models.Work
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", workID, userID).
		First(&work).Error
	if err != nil {
		return nil, err
	}
	return &work, nil
}

func (r *repository) UpdateWork(ctx context.Context, workID, userID int64, updates map[string]any) (int64, error) {
	if len(updates) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&models.Work{}).
		Where("id = ? AND user_id = ?", workID, userID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteWork(ctx context.Context, workID, userID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", workID, userID).
		Delete(&models.Work{})
	return res.RowsAffected, res.Error
}
