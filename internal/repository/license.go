// internal/repository/license.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DroneHQio/dronehq-app/internal/domain"
	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LicenseRepositoryIface interface {
	Create(ctx context.Context, license *model.License) error
	FindByID(ctx context.Context, id uuid.UUID, scope ScopeFunc) (*model.License, error)
	List(ctx context.Context, scope ScopeFunc, offset, limit int) ([]*model.License, int64, error)
	FindExpiring(ctx context.Context, scope ScopeFunc, within time.Duration) ([]*model.License, error)
	Update(ctx context.Context, license *model.License) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type LicenseRepository struct {
	db *gorm.DB
}

func NewLicenseRepository(db *gorm.DB) *LicenseRepository {
	return &LicenseRepository{db: db}
}

func (r *LicenseRepository) Create(ctx context.Context, license *model.License) error {
	if err := r.db.WithContext(ctx).Create(license).Error; err != nil {
		return fmt.Errorf("creating license: %w", err)
	}
	return nil
}

func (r *LicenseRepository) FindByID(ctx context.Context, id uuid.UUID, scope ScopeFunc) (*model.License, error) {
	var license model.License
	if err := r.db.WithContext(ctx).Scopes(scope).First(&license, "licenses.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLicenseNotFound
		}
		return nil, fmt.Errorf("finding license: %w", err)
	}
	return &license, nil
}

func (r *LicenseRepository) List(ctx context.Context, scope ScopeFunc, offset, limit int) ([]*model.License, int64, error) {
	var licenses []*model.License
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.License{}).Scopes(scope).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting licenses: %w", err)
	}

	if err := r.db.WithContext(ctx).Scopes(scope).
		Order("expiration_date ASC NULLS LAST").
		Offset(offset).Limit(limit).
		Find(&licenses).Error; err != nil {
		return nil, 0, fmt.Errorf("listing licenses: %w", err)
	}

	return licenses, count, nil
}

// FindExpiring returns in-scope licenses expiring within the window,
// expired ones included.
func (r *LicenseRepository) FindExpiring(ctx context.Context, scope ScopeFunc, within time.Duration) ([]*model.License, error) {
	cutoff := time.Now().UTC().Add(within)

	var licenses []*model.License
	if err := r.db.WithContext(ctx).Scopes(scope).
		Where("expiration_date IS NOT NULL AND expiration_date <= ?", cutoff).
		Order("expiration_date ASC").
		Find(&licenses).Error; err != nil {
		return nil, fmt.Errorf("finding expiring licenses: %w", err)
	}
	return licenses, nil
}

func (r *LicenseRepository) Update(ctx context.Context, license *model.License) error {
	if err := r.db.WithContext(ctx).Save(license).Error; err != nil {
		return fmt.Errorf("updating license: %w", err)
	}
	return nil
}

func (r *LicenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.License{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting license: %w", err)
	}
	return nil
}
