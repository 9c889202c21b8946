// internal/model/flight.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type FlightLog struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	OrganizationID *uuid.UUID `gorm:"type:uuid;index" json:"organization_id,omitempty"`
	Date           time.Time  `gorm:"type:date;not null" json:"date"`
	PilotName      string     `gorm:"type:text" json:"pilot_name"`
	DroneModel     string     `gorm:"type:text" json:"drone_model"`
	Location       string     `gorm:"type:text" json:"location"`
	Weather        string     `gorm:"type:text" json:"weather"`
	// FlightDuration is in minutes.
	FlightDuration int       `json:"flight_duration"`
	TakeoffTime    string    `gorm:"type:text" json:"takeoff_time"`
	LandingTime    string    `gorm:"type:text" json:"landing_time"`
	Notes          string    `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// ActiveFlight is an in-progress flight started from the field. Ending
// it materializes a FlightLog with the computed duration.
type ActiveFlight struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	OrganizationID *uuid.UUID `gorm:"type:uuid" json:"organization_id,omitempty"`
	DroneModel     string     `gorm:"type:text" json:"drone_model"`
	Location       string     `gorm:"type:text" json:"location"`
	Latitude       *float64   `json:"latitude,omitempty"`
	Longitude      *float64   `json:"longitude,omitempty"`
	StartedAt      time.Time  `gorm:"not null" json:"started_at"`
}

func (ActiveFlight) TableName() string {
	return "active_flights"
}
