package dto

import (
	"time"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"
)

// AuditLogResponse lifts the entity reference out of the metadata so the
// admin view can link straight to the changed record.
type AuditLogResponse struct {
	ID        int64       `json:"id"`
	Action    string      `json:"action"`
	Entity    string      `json:"entity,omitempty"`
	EntityID  string      `json:"entity_id,omitempty"`
	Metadata  entity.JSON `json:"metadata"`
	CreatedAt time.Time   `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
