// internal/repository/membership.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/DroneHQio/dronehq-app/internal/domain"
	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MembershipRepositoryIface interface {
	Create(ctx context.Context, m *model.Membership) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Membership, error)
	FindApprovedByUser(ctx context.Context, userID uuid.UUID) (*model.Membership, error)
	FindAnyByUser(ctx context.Context, userID uuid.UUID) (*model.Membership, error)
	FindPendingByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Membership, error)
	FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Membership, error)
	Approve(ctx context.Context, m *model.Membership, class *model.Class) error
	Update(ctx context.Context, m *model.Membership) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindSuperAdminByUser(ctx context.Context, userID uuid.UUID) (*model.Membership, error)
}

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) Create(ctx context.Context, m *model.Membership) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("creating membership: %w", err)
	}
	return nil
}

func (r *MembershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Membership, error) {
	var m model.Membership
	if err := r.db.WithContext(ctx).Preload("User").First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("finding membership: %w", err)
	}
	return &m, nil
}

// FindApprovedByUser returns the user's approved membership. Pending
// rows do not grant any organization access.
func (r *MembershipRepository) FindApprovedByUser(ctx context.Context, userID uuid.UUID) (*model.Membership, error) {
	var m model.Membership
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND approved = ?", userID, true).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("finding approved membership: %w", err)
	}
	return &m, nil
}

// FindAnyByUser returns the user's membership regardless of approval.
func (r *MembershipRepository) FindAnyByUser(ctx context.Context, userID uuid.UUID) (*model.Membership, error) {
	var m model.Membership
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("finding membership: %w", err)
	}
	return &m, nil
}

func (r *MembershipRepository) FindPendingByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Membership, error) {
	var ms []*model.Membership
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("organization_id = ? AND approved = ?", orgID, false).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("finding pending memberships: %w", err)
	}
	return ms, nil
}

func (r *MembershipRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Membership, error) {
	var ms []*model.Membership
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("organization_id = ?", orgID).
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("finding organization memberships: %w", err)
	}
	return ms, nil
}

// Approve persists an approval inside a single transaction. When the
// membership targets a class the class row is locked, the approved
// count is re-checked against max_students, and current_students is
// recomputed from the rows themselves, never from a cached column.
// Concurrent approvals of the last seat serialize on the row lock.
func (r *MembershipRepository) Approve(ctx context.Context, m *model.Membership, class *model.Class) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if class != nil {
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(class, "id = ?", class.ID).Error; err != nil {
				return fmt.Errorf("locking class: %w", err)
			}

			var approved int64
			if err := tx.Model(&model.Membership{}).
				Where("class_id = ? AND approved = ?", class.ID, true).
				Count(&approved).Error; err != nil {
				return fmt.Errorf("counting class members: %w", err)
			}
			if approved >= int64(class.MaxStudents) {
				return domain.ErrClassFull
			}

			class.CurrentStudents = int(approved) + 1
			if err := tx.Save(class).Error; err != nil {
				return fmt.Errorf("updating class: %w", err)
			}
		}

		if err := tx.Save(m).Error; err != nil {
			return fmt.Errorf("updating membership: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrClassFull) {
			return domain.ErrClassFull
		}
		return fmt.Errorf("approving membership: %w", err)
	}
	return nil
}

func (r *MembershipRepository) Update(ctx context.Context, m *model.Membership) error {
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("updating membership: %w", err)
	}
	return nil
}

func (r *MembershipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.Membership{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting membership: %w", err)
	}
	return nil
}

// FindSuperAdminByUser returns the user's super_admin membership if one exists.
func (r *MembershipRepository) FindSuperAdminByUser(ctx context.Context, userID uuid.UUID) (*model.Membership, error) {
	var m model.Membership
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND role = ?", userID, model.RoleSuperAdmin).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("finding super admin membership: %w", err)
	}
	return &m, nil
}
