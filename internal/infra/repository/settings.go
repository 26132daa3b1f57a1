package repository

import (
	"context"

	"canteen-reservation/internal/domain/settings"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/repository/converter"
	sqlc "canteen-reservation/internal/infra/sqlc/generated"
)

type SettingsWriteQueries interface {
	EnsureSettings(ctx context.Context, db sqlc.DBTX) error
	UpdateSettings(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSettingsParams) error
}

type SettingsRepository struct {
	queries SettingsWriteQueries
	db      sqlc.DBTX
}

func NewSettingsRepository(queries SettingsWriteQueries, db sqlc.DBTX) *SettingsRepository {
	return &SettingsRepository{
		queries: queries,
		db:      db,
	}
}

// Save overwrites the singleton row, creating it first when missing.
func (r *SettingsRepository) Save(ctx context.Context, tx sqlc.DBTX, s *settings.Settings) error {
	if err := r.queries.EnsureSettings(ctx, tx); err != nil {
		return infra.WrapRepoErr("failed to initialize settings", err)
	}
	if err := r.queries.UpdateSettings(ctx, tx, converter.SettingsToUpdateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to update settings", err)
	}
	return nil
}
