// internal/repository/inventory.go
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

type InventoryRepositoryIface interface {
	Create(ctx context.Context, item *model.InventoryItem) error
	CreateBatch(ctx context.Context, items []*model.InventoryItem) error
	FindByID(ctx context.Context, id uuid.UUID, scope ScopeFunc) (*model.InventoryItem, error)
	List(ctx context.Context, scope ScopeFunc, offset, limit int) ([]*model.InventoryItem, int64, error)
	Update(ctx context.Context, item *model.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) Create(ctx context.Context, item *model.InventoryItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("creating inventory item: %w", err)
	}
	return nil
}

// CreateBatch inserts items in chunks inside a single transaction, so a
// failed import leaves nothing behind.
func (r *InventoryRepository) CreateBatch(ctx context.Context, items []*model.InventoryItem) error {
	if len(items) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(items, 50).Error; err != nil {
		return fmt.Errorf("creating inventory batch: %w", err)
	}
	return nil
}

func (r *InventoryRepository) FindByID(ctx context.Context, id uuid.UUID, scope ScopeFunc) (*model.InventoryItem, error) {
	var item model.InventoryItem
	if err := r.db.WithContext(ctx).Scopes(scope).First(&item, "inventory.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("finding inventory item: %w", err)
	}
	return &item, nil
}

func (r *InventoryRepository) List(ctx context.Context, scope ScopeFunc, offset, limit int) ([]*model.InventoryItem, int64, error) {
	var items []*model.InventoryItem
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.InventoryItem{}).Scopes(scope).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting inventory items: %w", err)
	}

	if err := r.db.WithContext(ctx).Scopes(scope).
		Order("name ASC").
		Offset(offset).Limit(limit).
		Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("listing inventory items: %w", err)
	}

	return items, count, nil
}

func (r *InventoryRepository) Update(ctx context.Context, item *model.InventoryItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return fmt.Errorf("updating inventory item: %w", err)
	}
	return nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.InventoryItem{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting inventory item: %w", err)
	}
	return nil
}
