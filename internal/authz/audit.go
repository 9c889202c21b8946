// internal/authz/audit.go
package authz

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/DroneHQio/dronehq-app/internal/repository"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// AuditLogger records authorization decisions.
type AuditLogger interface {
	LogDecision(
		ctx context.Context,
		id *Identity,
		permission string,
		resourceType string,
		resourceID string,
		result bool,
		scope Scope,
		contextData map[string]interface{},
		req *http.Request,
	) error
}

// NoOpAuditLogger is a logger that does nothing
type NoOpAuditLogger struct{}

func (l *NoOpAuditLogger) LogDecision(
	ctx context.Context,
	id *Identity,
	permission string,
	resourceType string,
	resourceID string,
	result bool,
	scope Scope,
	contextData map[string]interface{},
	req *http.Request,
) error {
	return nil
}

// Ensure both implementations satisfy the interface
var (
	_ AuditLogger = (*NoOpAuditLogger)(nil)
	_ AuditLogger = (*DBAuditLogger)(nil)
)

// DBAuditLogger persists decisions through the audit log repository.
type DBAuditLogger struct {
	repo *repository.AuthzAuditLogRepository
}

func NewDBAuditLogger(repo *repository.AuthzAuditLogRepository) *DBAuditLogger {
	return &DBAuditLogger{repo: repo}
}

func (l *DBAuditLogger) LogDecision(
	ctx context.Context,
	id *Identity,
	permission string,
	resourceType string,
	resourceID string,
	result bool,
	scope Scope,
	contextData map[string]interface{},
	req *http.Request,
) error {
	entry := &model.AuthzAuditLog{
		SubjectID:    id.UserID.String(),
		SubjectRole:  string(id.Role),
		Permission:   permission,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Result:       &result,
		Scope:        scope.String(),
		Context:      model.JSONMap(contextData),
		Timestamp:    time.Now().UTC(),
	}

	if req != nil {
		entry.RequestID = chimw.GetReqID(ctx)
		entry.ClientIP = req.RemoteAddr
		entry.UserAgent = req.UserAgent()
	}

	if err := l.repo.Create(ctx, entry); err != nil {
		// A failed audit write must not fail the request.
		slog.ErrorContext(ctx, "failed to write authz audit log", "error", err)
		return err
	}
	return nil
}
