// internal/repository/flight.go
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

type FlightRepositoryIface interface {
	Create(ctx context.Context, flight *model.FlightLog) error
	FindByID(ctx context.Context, id uuid.UUID, scope ScopeFunc) (*model.FlightLog, error)
	List(ctx context.Context, scope ScopeFunc, offset, limit int) ([]*model.FlightLog, int64, error)
	Update(ctx context.Context, flight *model.FlightLog) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountForUserInMonth(ctx context.Context, userID uuid.UUID, ref time.Time) (int64, error)

	CreateActive(ctx context.Context, flight *model.ActiveFlight) error
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*model.ActiveFlight, error)
	DeleteActive(ctx context.Context, id uuid.UUID) error
}

type FlightRepository struct {
	db *gorm.DB
}

func NewFlightRepository(db *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

func (r *FlightRepository) Create(ctx context.Context, flight *model.FlightLog) error {
	if err := r.db.WithContext(ctx).Create(flight).Error; err != nil {
		return fmt.Errorf("creating flight log: %w", err)
	}
	return nil
}

// FindByID looks up a flight within the caller's scope. A flight the
// scope excludes reads as not found, never as forbidden.
func (r *FlightRepository) FindByID(ctx context.Context, id uuid.UUID, scope ScopeFunc) (*model.FlightLog, error) {
	var flight model.FlightLog
	if err := r.db.WithContext(ctx).Scopes(scope).First(&flight, "flight_logs.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, fmt.Errorf("finding flight log: %w", err)
	}
	return &flight, nil
}

func (r *FlightRepository) List(ctx context.Context, scope ScopeFunc, offset, limit int) ([]*model.FlightLog, int64, error) {
	var flights []*model.FlightLog
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.FlightLog{}).Scopes(scope).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting flight logs: %w", err)
	}

	if err := r.db.WithContext(ctx).Scopes(scope).
		Order("date DESC, created_at DESC").
		Offset(offset).Limit(limit).
		Find(&flights).Error; err != nil {
		return nil, 0, fmt.Errorf("listing flight logs: %w", err)
	}

	return flights, count, nil
}

func (r *FlightRepository) Update(ctx context.Context, flight *model.FlightLog) error {
	if err := r.db.WithContext(ctx).Save(flight).Error; err != nil {
		return fmt.Errorf("updating flight log: %w", err)
	}
	return nil
}

func (r *FlightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.FlightLog{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting flight log: %w", err)
	}
	return nil
}

// CountForUserInMonth counts the user's logged flights in the calendar
// month containing ref. Used to enforce plan limits.
func (r *FlightRepository) CountForUserInMonth(ctx context.Context, userID uuid.UUID, ref time.Time) (int64, error) {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var count int64
	if err := r.db.WithContext(ctx).Model(&model.FlightLog{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting monthly flights: %w", err)
	}
	return count, nil
}

func (r *FlightRepository) CreateActive(ctx context.Context, flight *model.ActiveFlight) error {
	if err := r.db.WithContext(ctx).Create(flight).Error; err != nil {
		return fmt.Errorf("creating active flight: %w", err)
	}
	return nil
}

func (r *FlightRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*model.ActiveFlight, error) {
	var flight model.ActiveFlight
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&flight).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoActiveFlight
		}
		return nil, fmt.Errorf("finding active flight: %w", err)
	}
	return &flight, nil
}

func (r *FlightRepository) DeleteActive(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.ActiveFlight{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting active flight: %w", err)
	}
	return nil
}
