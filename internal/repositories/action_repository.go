package repositories

import (
	"context"

	"orusconsole/internal/models"

	"gorm.io/gorm"
)

// ActionRepository is the admin action journal.
type ActionRepository interface {
	// Record stores a pending journal row and fills in its id
	Record(ctx context.Context, action *models.AdminAction) error

	// Complete sets the outcome of a recorded action
	Complete(ctx context.Context, id uint, outcome, errMsg string) error

	// ListByTarget returns the newest actions taken on an account
	ListByTarget(ctx context.Context, targetType, targetID string, limit int) ([]models.AdminAction, error)
}

type actionRepository struct {
	db *gorm.DB
}

func NewActionRepository(db *gorm.DB) ActionRepository {
	return &actionRepository{db: db}
}

func (r *actionRepository) Record(ctx context.Context, action *models.AdminAction) error {
	if err := r.db.WithContext(ctx).Create(action).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *actionRepository) Complete(ctx context.Context, id uint, outcome, errMsg string) error {
	return r.db.WithContext(ctx).Model(&models.AdminAction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"outcome": outcome, "error": errMsg}).Error
}

func (r *actionRepository) ListByTarget(ctx context.Context, targetType, targetID string, limit int) ([]models.AdminAction, error) {
	var actions []models.AdminAction
	err := r.db.WithContext(ctx).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Order("created_at DESC").
		Limit(limit).
		Find(&actions).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return actions, nil
}
