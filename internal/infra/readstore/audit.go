package readstore

import (
	"context"
	"time"

	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/repository/converter"
	sqlc "canteen-reservation/internal/infra/sqlc/generated"
	"canteen-reservation/internal/pkg/pgconv"
	"canteen-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AuditLogReadQueries interface {
	ListAuditLogs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAuditLogsParams) ([]sqlc.AuditLogs, error)
}

type AuditReadStore struct {
	queries AuditLogReadQueries
	db      sqlc.DBTX
}

func NewAuditReadStore(queries AuditLogReadQueries, db sqlc.DBTX) *AuditReadStore {
	return &AuditReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AuditReadStore) List(ctx context.Context, filter queries.AuditFilter, beforeAt *time.Time, beforeID *uuid.UUID, limit int32) ([]*queries.AuditLogView, error) {
	params := sqlc.ListAuditLogsParams{
		EntityID: pgconv.StringPtrToPgtype(filter.EntityID),
		UserID:   pgconv.UUIDPtrToPgtype(filter.UserID),
		AfterID:  pgconv.UUIDPtrToPgtype(beforeID),
		RowLimit: limit,
	}
	if beforeAt != nil {
		params.AfterCreatedAt = pgtype.Timestamptz{Time: *beforeAt, Valid: true}
	}

	rows, err := r.queries.ListAuditLogs(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list audit logs", err)
	}

	result := make([]*queries.AuditLogView, len(rows))
	for i, row := range rows {
		e := converter.AuditEntryFromRow(row)
		result[i] = &queries.AuditLogView{
			ID:            e.ID(),
			PerformedByID: e.PerformedByID(),
			UserID:        e.UserID(),
			Action:        e.Action().String(),
			EntityType:    e.EntityType().String(),
			EntityID:      e.EntityID(),
			Details:       e.Details(),
			CreatedAt:     e.CreatedAt(),
		}
	}
	return result, nil
}
