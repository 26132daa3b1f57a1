package queries

import (
	"context"
	"time"

	"canteen-reservation/internal/domain/user"
	"canteen-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAuditAccess = errs.Mark(errs.New("audit log is reserved to administrators"), errs.ErrForbidden)

type AuditFilter struct {
	EntityID *string
	UserID   *uuid.UUID
}

type AuditReadStore interface {
	// List returns entries newest first, strictly before the (createdAt, id) position when given.
	List(ctx context.Context, filter AuditFilter, beforeAt *time.Time, beforeID *uuid.UUID, limit int32) ([]*AuditLogView, error)
}

type AuditQueries interface {
	List(ctx context.Context, role user.Role, filter AuditFilter, cursor *Cursor, limit int) ([]*AuditLogView, *Cursor, error)
}

type auditQueriesImpl struct {
	store AuditReadStore
}

func NewAuditQueries(store AuditReadStore) AuditQueries {
	return &auditQueriesImpl{store: store}
}

func (q *auditQueriesImpl) List(ctx context.Context, role user.Role, filter AuditFilter, cursor *Cursor, limit int) ([]*AuditLogView, *Cursor, error) {
	if !role.AtLeast(user.RoleAdmin) {
		return nil, nil, ErrAuditAccess
	}

	limit = ValidateLimit(limit)
	var beforeAt *time.Time
	var beforeID *uuid.UUID
	if !cursor.IsZero() {
		t, id, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, err
		}
		beforeAt, beforeID = &t, &id
	}

	rows, err := q.store.List(ctx, filter, beforeAt, beforeID, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
