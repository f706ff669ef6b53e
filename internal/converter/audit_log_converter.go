package converter

import (
	"fmt"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"
)

func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	return &dto.AuditLogResponse{
		ID:        log.ID,
		Action:    log.Action,
		Entity:    metadataString(log.Metadata, "entity"),
		EntityID:  metadataString(log.Metadata, "entity_id"),
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt,
	}
}

func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, *AuditLogToResponse(&logs[i]))
	}
	return responses
}

// metadataString reads key as text; ids stored as uuid.UUID or decoded from
// jsonb as string both come out the same.
func metadataString(meta entity.JSON, key string) string {
	v, ok := meta[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
