// internal/repository/checklist.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/DroneHQio/dronehq-app/internal/domain"
	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChecklistRepositoryIface interface {
	Create(ctx context.Context, checklist *model.Checklist) error
	FindByID(ctx context.Context, id uuid.UUID, scope ScopeFunc) (*model.Checklist, error)
	List(ctx context.Context, scope ScopeFunc, offset, limit int) ([]*model.Checklist, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ChecklistRepository struct {
	db *gorm.DB
}

func NewChecklistRepository(db *gorm.DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

func (r *ChecklistRepository) Create(ctx context.Context, checklist *model.Checklist) error {
	if err := r.db.WithContext(ctx).Create(checklist).Error; err != nil {
		return fmt.Errorf("creating checklist: %w", err)
	}
	return nil
}

func (r *ChecklistRepository) FindByID(ctx context.Context, id uuid.UUID, scope ScopeFunc) (*model.Checklist, error) {
	var checklist model.Checklist
	if err := r.db.WithContext(ctx).Scopes(scope).First(&checklist, "checklists.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrChecklistNotFound
		}
		return nil, fmt.Errorf("finding checklist: %w", err)
	}
	return &checklist, nil
}

func (r *ChecklistRepository) List(ctx context.Context, scope ScopeFunc, offset, limit int) ([]*model.Checklist, int64, error) {
	var checklists []*model.Checklist
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.Checklist{}).Scopes(scope).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting checklists: %w", err)
	}

	if err := r.db.WithContext(ctx).Scopes(scope).
		Order("completed_at DESC").
		Offset(offset).Limit(limit).
		Find(&checklists).Error; err != nil {
		return nil, 0, fmt.Errorf("listing checklists: %w", err)
	}

	return checklists, count, nil
}

func (r *ChecklistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.Checklist{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting checklist: %w", err)
	}
	return nil
}
