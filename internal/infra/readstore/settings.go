package readstore

import (
	"context"

	"canteen-reservation/internal/domain/settings"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/repository/converter"
	sqlc "canteen-reservation/internal/infra/sqlc/generated"
	"canteen-reservation/internal/pkg/pgconv"
)

type SettingsReadQueries interface {
	EnsureSettings(ctx context.Context, db sqlc.DBTX) error
	GetSettings(ctx context.Context, db sqlc.DBTX) (sqlc.Settings, error)
}

// SettingsReadStore is the settings provider. The singleton row is created
// with column defaults on first read, so callers always get usable settings.
type SettingsReadStore struct {
	queries SettingsReadQueries
	db      sqlc.DBTX
}

func NewSettingsReadStore(queries SettingsReadQueries, db sqlc.DBTX) *SettingsReadStore {
	return &SettingsReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SettingsReadStore) GetSettings(ctx context.Context) (*settings.Settings, error) {
	row, err := r.queries.GetSettings(ctx, r.db)
	if err == nil {
		return converter.SettingsFromRow(row), nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to load settings", err)
	}

	if err := r.queries.EnsureSettings(ctx, r.db); err != nil {
		return nil, infra.WrapRepoErr("failed to initialize settings", err)
	}
	row, err = r.queries.GetSettings(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load settings", err)
	}
	return converter.SettingsFromRow(row), nil
}
