// internal/model/license.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type License struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	OrganizationID   *uuid.UUID `gorm:"type:uuid;index" json:"organization_id,omitempty"`
	PilotName        string     `gorm:"type:text" json:"pilot_name"`
	LicenseType      string     `gorm:"type:text;not null" json:"license_type"`
	LicenseNumber    string     `gorm:"type:text" json:"license_number"`
	IssueDate        *time.Time `gorm:"type:date" json:"issue_date,omitempty"`
	ExpirationDate   *time.Time `gorm:"type:date" json:"expiration_date,omitempty"`
	IssuingAuthority string     `gorm:"type:text" json:"issuing_authority"`
	Notes            string     `gorm:"type:text" json:"notes"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
