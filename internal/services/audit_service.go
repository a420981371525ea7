package services

import (
	"sort"

	"go.uber.org/zap"

	"carteira/internal/logger"
)

// auditService writes one structured log event per successful mutation.
type auditService struct {
	log *zap.SugaredLogger
}

// NewAuditService creates a new AuditServicer writing to the global logger.
func NewAuditService() AuditServicer {
	return &auditService{log: logger.Get()}
}

// Log records an audit event. It never touches the database, so it cannot
// fail the operation it describes.
func (s *auditService) Log(action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{}) {
	fields := make([]string, 0, len(changes))
	for k := range changes {
		fields = append(fields, k)
	}
	sort.Strings(fields)

	s.log.Infow("audit",
		"action", action,
		"resource_type", resourceType,
		"resource_id", resourceID,
		"ip_address", ipAddress,
		"fields", fields,
	)
}
