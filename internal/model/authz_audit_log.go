// internal/model/authz_audit_log.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthzAuditLog records a single authorization decision made by the gate.
type AuthzAuditLog struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Timestamp    time.Time `json:"timestamp" gorm:"default:CURRENT_TIMESTAMP"`
	SubjectID    string    `json:"subject_id"`
	SubjectRole  string    `json:"subject_role"`
	Permission   string    `json:"permission"`
	ResourceType string    `json:"resource_type"`
	ResourceID   string    `json:"resource_id"`
	Result       *bool     `json:"result"`
	Scope        string    `json:"scope"`
	Context      JSONMap   `json:"context" gorm:"type:jsonb"`
	RequestID    string    `json:"request_id"`
	ClientIP     string    `json:"client_ip"`
	UserAgent    string    `json:"user_agent"`
	CreatedAt    time.Time `json:"created_at" gorm:"default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for AuthzAuditLog
func (AuthzAuditLog) TableName() string {
	return "authz_audit_logs"
}

// Constants for AuthzAuditLog permissions
const (
	PermissionRead             = "read"
	PermissionWrite            = "write"
	PermissionApproveMember    = "approve_member"
	PermissionManageOrg        = "manage_organization"
	PermissionGrantSuperAdmin  = "grant_super_admin"
	PermissionRevokeSuperAdmin = "revoke_super_admin"
)
