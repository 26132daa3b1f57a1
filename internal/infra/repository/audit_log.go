package repository

import (
	"context"

	"canteen-reservation/internal/domain/audit"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/repository/converter"
	sqlc "canteen-reservation/internal/infra/sqlc/generated"
)

type AuditLogWriteQueries interface {
	CreateAuditLog(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAuditLogParams) error
}

type AuditLogRepository struct {
	queries AuditLogWriteQueries
	db      sqlc.DBTX
}

func NewAuditLogRepository(queries AuditLogWriteQueries, db sqlc.DBTX) *AuditLogRepository {
	return &AuditLogRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AuditLogRepository) Append(ctx context.Context, tx sqlc.DBTX, entry *audit.Entry) error {
	params, err := converter.AuditEntryToCreateParams(entry)
	if err != nil {
		return infra.WrapRepoErr("failed to encode audit log", err)
	}
	if err := r.queries.CreateAuditLog(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to append audit log", err)
	}
	return nil
}
