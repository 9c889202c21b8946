// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type UserStatus string

const (
	StatusPending   UserStatus = "pending"
	StatusActive    UserStatus = "active"
	StatusSuspended UserStatus = "suspended"
)

type User struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email            string     `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FirstName        string     `gorm:"type:text;not null" json:"first_name"`
	LastName         string     `gorm:"type:text" json:"last_name"`
	Credential       string     `gorm:"type:text;not null" json:"-"`
	Status           UserStatus `gorm:"type:user_status;not null;default:'pending'" json:"status"`
	VerificationCode *string    `gorm:"type:text" json:"-"`
	VerifiedAt       *time.Time `json:"verified_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Profile carries the role-specific attributes collected at signup.
// One-to-one with User.
type Profile struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID           uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Phone            string     `gorm:"type:text" json:"phone"`
	JobTitle         string     `gorm:"type:text" json:"job_title,omitempty"`
	PilotID          string     `gorm:"type:text" json:"pilot_id,omitempty"`
	Part107Number    string     `gorm:"type:text" json:"part_107_number,omitempty"`
	StudentID        string     `gorm:"type:text" json:"student_id,omitempty"`
	GradeLevel       string     `gorm:"type:text" json:"grade_level,omitempty"`
	DateOfBirth      *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	EmergencyContact string     `gorm:"type:text" json:"emergency_contact,omitempty"`
	EmergencyPhone   string     `gorm:"type:text" json:"emergency_phone,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Profile) TableName() string {
	return "user_profiles"
}
