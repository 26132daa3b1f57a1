package response

import (
	"time"

	"canteen-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuditLogResponse struct {
	ID            uuid.UUID      `json:"id"`
	PerformedByID uuid.UUID      `json:"performed_by_id"`
	UserID        *uuid.UUID     `json:"user_id,omitempty"`
	Action        string         `json:"action"`
	EntityType    string         `json:"entity_type"`
	EntityID      string         `json:"entity_id"`
	Details       map[string]any `json:"details,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

type AuditLogListResponse struct {
	Items      []*AuditLogResponse `json:"items"`
	NextCursor *string             `json:"next_cursor,omitempty"`
}

func FromAuditLogViews(views []*queries.AuditLogView, next *queries.Cursor) *AuditLogListResponse {
	res := &AuditLogListResponse{Items: make([]*AuditLogResponse, len(views))}
	for i, v := range views {
		var item AuditLogResponse
		mustCopy(&item, v)
		res.Items[i] = &item
	}
	if !next.IsZero() {
		res.NextCursor = &next.After
	}
	return res
}
