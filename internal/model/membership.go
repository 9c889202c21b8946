// internal/model/membership.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleOrgAdmin   Role = "org_admin"
	RoleTeacher    Role = "teacher"
	RoleStudent    Role = "student"
	RoleSoloPilot  Role = "solo_pilot"
	// RolePilot is the unaffiliated default when no approved membership
	// exists. It never appears as a stored row.
	RolePilot Role = "pilot"
)

// Membership links a principal to an organization (and optionally a
// class) with a role and an approval state. An unapproved membership
// grants no elevated access anywhere in the system.
type Membership struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	// OrganizationID is nil only for super_admin rows, which are
	// platform wide rather than tenant scoped.
	OrganizationID *uuid.UUID `gorm:"type:uuid;index" json:"organization_id,omitempty"`
	Role           Role       `gorm:"type:text;not null" json:"role"`
	ClassID        *uuid.UUID `gorm:"type:uuid;index" json:"class_id,omitempty"`
	Approved       bool       `gorm:"not null;default:false" json:"approved"`
	ApprovedByID   *uuid.UUID `gorm:"type:uuid" json:"approved_by,omitempty"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	User         User          `gorm:"foreignKey:UserID" json:"-"`
	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"-"`
	Class        *Class        `gorm:"foreignKey:ClassID" json:"-"`
}

func (Membership) TableName() string {
	return "user_roles"
}
