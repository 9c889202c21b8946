// internal/repository/signup.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/DroneHQio/dronehq-app/internal/domain"
	"github.com/DroneHQio/dronehq-app/internal/model"
	"gorm.io/gorm"
)

// SignupRepositoryIface groups the multi-step account creation writes.
// Each method runs inside a single database transaction, so a failed
// signup never leaves a partial account behind.
type SignupRepositoryIface interface {
	CreateAccount(ctx context.Context, user *model.User, profile *model.Profile) error
	CreateAccountWithOrganization(ctx context.Context, user *model.User, profile *model.Profile, org *model.Organization, membership *model.Membership) error
	CreateAccountWithMembership(ctx context.Context, user *model.User, profile *model.Profile, membership *model.Membership) error
}

type SignupRepository struct {
	db *gorm.DB
}

func NewSignupRepository(db *gorm.DB) *SignupRepository {
	return &SignupRepository{db: db}
}

func createUserAndProfile(tx *gorm.DB, user *model.User, profile *model.Profile) error {
	var count int64
	if err := tx.Model(&model.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return fmt.Errorf("checking existing email: %w", err)
	}
	if count > 0 {
		return domain.ErrEmailAlreadyExists
	}

	if err := tx.Create(user).Error; err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	if profile != nil {
		profile.UserID = user.ID
		if err := tx.Create(profile).Error; err != nil {
			return fmt.Errorf("creating profile: %w", err)
		}
	}

	return nil
}

// CreateAccount creates a user and profile atomically.
func (r *SignupRepository) CreateAccount(ctx context.Context, user *model.User, profile *model.Profile) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return createUserAndProfile(tx, user, profile)
	})
	return signupErr(err)
}

// CreateAccountWithOrganization creates a user, profile, their new
// organization and the founding membership atomically.
func (r *SignupRepository) CreateAccountWithOrganization(ctx context.Context, user *model.User, profile *model.Profile, org *model.Organization, membership *model.Membership) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createUserAndProfile(tx, user, profile); err != nil {
			return err
		}

		org.CreatedByID = user.ID
		if err := tx.Create(org).Error; err != nil {
			return fmt.Errorf("creating organization: %w", err)
		}

		membership.UserID = user.ID
		membership.OrganizationID = &org.ID
		if err := tx.Create(membership).Error; err != nil {
			return fmt.Errorf("creating membership: %w", err)
		}

		return nil
	})
	return signupErr(err)
}

// CreateAccountWithMembership creates a user, profile and a membership
// in an existing organization atomically.
func (r *SignupRepository) CreateAccountWithMembership(ctx context.Context, user *model.User, profile *model.Profile, membership *model.Membership) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createUserAndProfile(tx, user, profile); err != nil {
			return err
		}

		membership.UserID = user.ID
		if err := tx.Create(membership).Error; err != nil {
			return fmt.Errorf("creating membership: %w", err)
		}

		return nil
	})
	return signupErr(err)
}

// signupErr keeps domain sentinels unwrapped for the service layer.
func signupErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		return domain.ErrEmailAlreadyExists
	}
	return fmt.Errorf("transaction failed: %w", err)
}
