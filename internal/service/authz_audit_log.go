package service

import (
	"context"

	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/DroneHQio/dronehq-app/internal/repository"
)

// AuthzAuditLogService exposes the audit trail for review.
type AuthzAuditLogService struct {
	repo *repository.AuthzAuditLogRepository
}

// NewAuthzAuditLogService creates a new AuthzAuditLogService
func NewAuthzAuditLogService(repo *repository.AuthzAuditLogRepository) *AuthzAuditLogService {
	return &AuthzAuditLogService{
		repo: repo,
	}
}

// GetAuditLogs retrieves audit logs based on query parameters
func (s *AuthzAuditLogService) GetAuditLogs(
	ctx context.Context,
	params repository.QueryParams,
) ([]model.AuthzAuditLog, int64, error) {
	return s.repo.Query(ctx, params)
}
