// internal/model/organization.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type BillingStatus string

const (
	BillingTrial     BillingStatus = "trial"
	BillingActive    BillingStatus = "active"
	BillingSuspended BillingStatus = "suspended"
)

type SubscriptionPlan string

const (
	PlanStarter       SubscriptionPlan = "starter"
	PlanSoloBasic     SubscriptionPlan = "basic"
	PlanSoloUnlimited SubscriptionPlan = "unlimited"
)

// soloBasicFlightLimit is the number of flight logs a solo basic
// subscriber may create per calendar month.
const soloBasicFlightLimit = 15

type Organization struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name             string           `gorm:"type:text;not null" json:"name"`
	Code             string           `gorm:"type:text;uniqueIndex;not null" json:"code"`
	Settings         JSONMap          `gorm:"type:jsonb" json:"settings"`
	BillingStatus    BillingStatus    `gorm:"type:text;not null;default:'trial'" json:"billing_status"`
	SubscriptionPlan SubscriptionPlan `gorm:"type:text;not null;default:'starter'" json:"subscription_plan"`
	CreatedByID      uuid.UUID        `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`

	CreatedBy   User         `gorm:"foreignKey:CreatedByID" json:"-"`
	Memberships []Membership `gorm:"foreignKey:OrganizationID" json:"-"`
}

// FlightLimit returns the monthly flight-log cap for the organization's
// plan, or 0 when the plan is uncapped.
func (o *Organization) FlightLimit() int {
	if o.SubscriptionPlan == PlanSoloBasic {
		return soloBasicFlightLimit
	}
	return 0
}

// Suspended reports whether operational writes are blocked for members.
func (o *Organization) Suspended() bool {
	return o.BillingStatus == BillingSuspended
}

// JSONMap is a generic map stored as JSONB.
type JSONMap map[string]interface{}

// Value implements the driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
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

	return json.Unmarshal(bytes, m)
}
