// internal/repository/class.go
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

type ClassRepositoryIface interface {
	Create(ctx context.Context, class *model.Class) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Class, error)
	FindByCode(ctx context.Context, code string) (*model.Class, error)
	FindByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*model.Class, error)
	FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Class, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	Update(ctx context.Context, class *model.Class) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ClassRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

func (r *ClassRepository) Create(ctx context.Context, class *model.Class) error {
	if err := r.db.WithContext(ctx).Create(class).Error; err != nil {
		return fmt.Errorf("creating class: %w", err)
	}
	return nil
}

func (r *ClassRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Class, error) {
	var class model.Class
	if err := r.db.WithContext(ctx).First(&class, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClassNotFound
		}
		return nil, fmt.Errorf("finding class: %w", err)
	}
	return &class, nil
}

func (r *ClassRepository) FindByCode(ctx context.Context, code string) (*model.Class, error) {
	var class model.Class
	if err := r.db.WithContext(ctx).First(&class, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClassNotFound
		}
		return nil, fmt.Errorf("finding class by code: %w", err)
	}
	return &class, nil
}

func (r *ClassRepository) FindByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*model.Class, error) {
	var classes []*model.Class
	if err := r.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Find(&classes).Error; err != nil {
		return nil, fmt.Errorf("finding teacher classes: %w", err)
	}
	return classes, nil
}

func (r *ClassRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Class, error) {
	var classes []*model.Class
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Find(&classes).Error; err != nil {
		return nil, fmt.Errorf("finding organization classes: %w", err)
	}
	return classes, nil
}

// CodeExists reports whether a class code is already taken.
func (r *ClassRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Class{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking class code: %w", err)
	}
	return count > 0, nil
}

func (r *ClassRepository) Update(ctx context.Context, class *model.Class) error {
	if err := r.db.WithContext(ctx).Save(class).Error; err != nil {
		return fmt.Errorf("updating class: %w", err)
	}
	return nil
}

func (r *ClassRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.Class{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting class: %w", err)
	}
	return nil
}
