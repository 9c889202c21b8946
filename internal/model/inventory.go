// internal/model/inventory.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ConditionStatus string

const (
	ConditionExcellent   ConditionStatus = "excellent"
	ConditionGood        ConditionStatus = "good"
	ConditionFair        ConditionStatus = "fair"
	ConditionPoor        ConditionStatus = "poor"
	ConditionNeedsRepair ConditionStatus = "needs_repair"
	ConditionRetired     ConditionStatus = "retired"
)

type CheckoutStatus string

const (
	CheckoutAvailable   CheckoutStatus = "available"
	CheckoutCheckedOut  CheckoutStatus = "checked_out"
	CheckoutMaintenance CheckoutStatus = "maintenance"
	CheckoutRetired     CheckoutStatus = "retired"
)

type InventoryItem struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID     *uuid.UUID      `gorm:"type:uuid;index" json:"organization_id,omitempty"`
	CreatedByID        uuid.UUID       `gorm:"type:uuid;column:created_by;not null;index" json:"created_by"`
	Name               string          `gorm:"type:text;not null" json:"name"`
	Category           string          `gorm:"type:text" json:"category"`
	Model              string          `gorm:"type:text" json:"model"`
	SerialNumber       string          `gorm:"type:text" json:"serial_number"`
	Manufacturer       string          `gorm:"type:text" json:"manufacturer"`
	PurchaseDate       string          `gorm:"type:text" json:"purchase_date"`
	PurchasePrice      *float64        `json:"purchase_price,omitempty"`
	ConditionStatus    ConditionStatus `gorm:"type:text;not null;default:'excellent'" json:"condition_status"`
	CheckoutStatus     CheckoutStatus  `gorm:"type:text;not null;default:'available'" json:"checkout_status"`
	CheckedOutByID     *uuid.UUID      `gorm:"type:uuid;column:checked_out_by" json:"checked_out_by,omitempty"`
	CheckedOutAt       *time.Time      `json:"checked_out_at,omitempty"`
	CheckedInAt        *time.Time      `json:"checked_in_at,omitempty"`
	Location           string          `gorm:"type:text" json:"location"`
	Notes              string          `gorm:"type:text" json:"notes"`
	RegistrationNumber string          `gorm:"type:text" json:"registration_number"`
	ExpirationDate     string          `gorm:"type:text" json:"expiration_date"`
	MaintenanceDue     string          `gorm:"type:text" json:"maintenance_due"`
	InsuranceValue     *float64        `json:"insurance_value,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func (InventoryItem) TableName() string {
	return "inventory"
}
