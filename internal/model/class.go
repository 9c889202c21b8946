// internal/model/class.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Class is a classroom within an organization, owned by a teacher.
// It stays inactive until the owning teacher's own membership has been
// approved, so its join code cannot be used before then.
type Class struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID  uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	TeacherID       uuid.UUID `gorm:"type:uuid;not null;index" json:"teacher_id"`
	ClassName       string    `gorm:"type:text;not null" json:"class_name"`
	Code            string    `gorm:"type:text;uniqueIndex;not null" json:"code"`
	MaxStudents     int       `gorm:"not null;default:30" json:"max_students"`
	CurrentStudents int       `gorm:"not null;default:0" json:"current_students"`
	Active          bool      `gorm:"not null;default:false" json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
	Teacher      User         `gorm:"foreignKey:TeacherID" json:"-"`
}

func (Class) TableName() string {
	return "class_codes"
}
