// internal/model/checklist.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type ChecklistType string

const (
	ChecklistPreFlight  ChecklistType = "pre-flight"
	ChecklistPostFlight ChecklistType = "post-flight"
)

type ChecklistItem struct {
	Item      string `json:"item"`
	Completed bool   `json:"completed"`
}

// ChecklistItems is stored as JSONB.
type ChecklistItems []ChecklistItem

// Value implements the driver.Valuer interface
func (c ChecklistItems) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	return json.Marshal(c)
}

// Scan implements the sql.Scanner interface
func (c *ChecklistItems) Scan(value interface{}) error {
	if value == nil {
		*c = ChecklistItems{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	return json.Unmarshal(bytes, c)
}

type Checklist struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	OrganizationID *uuid.UUID     `gorm:"type:uuid;index" json:"organization_id,omitempty"`
	ChecklistType  ChecklistType  `gorm:"type:text;not null" json:"checklist_type"`
	PilotName      string         `gorm:"type:text" json:"pilot_name"`
	DroneModel     string         `gorm:"type:text" json:"drone_model"`
	Location       string         `gorm:"type:text" json:"location"`
	Date           time.Time      `gorm:"type:date;not null" json:"date"`
	Items          ChecklistItems `gorm:"type:jsonb;not null" json:"items"`
	Notes          string         `gorm:"type:text" json:"notes"`
	CompletedAt    time.Time      `gorm:"not null" json:"completed_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
