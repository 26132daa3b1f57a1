package repository

import (
	"context"

	"canteen-reservation/internal/domain/menu"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/repository/converter"
	sqlc "canteen-reservation/internal/infra/sqlc/generated"
	"canteen-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=menu.go -destination=../../../tests/mock/repository/menu_mock.go -package=repositorymock

type MenuWriteQueries interface {
	CreateMenu(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMenuParams) error
	CreateMenuOption(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMenuOptionParams) error
	SetMenuPublished(ctx context.Context, db sqlc.DBTX, arg sqlc.SetMenuPublishedParams) (int64, error)
	DeleteMenu(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	UpdateMenu(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateMenuParams) (int64, error)
	UpsertMenuOption(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertMenuOptionParams) error
	DeleteMenuOptions(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteMenuOptionsParams) (int64, error)
}

type MenuRepository struct {
	queries MenuWriteQueries
	db      sqlc.DBTX
}

func NewMenuRepository(queries MenuWriteQueries, db sqlc.DBTX) *MenuRepository {
	return &MenuRepository{
		queries: queries,
		db:      db,
	}
}

// Create writes the menu row then each of its options. Run it inside a
// transaction so a failing option leaves nothing behind.
func (r *MenuRepository) Create(ctx context.Context, tx sqlc.DBTX, mn *menu.Menu) error {
	if err := r.queries.CreateMenu(ctx, tx, converter.MenuToCreateParams(mn)); err != nil {
		return infra.WrapRepoErr("failed to create menu", err)
	}
	for _, o := range mn.Options() {
		if err := r.queries.CreateMenuOption(ctx, tx, converter.MenuOptionToCreateParams(mn, o)); err != nil {
			return infra.WrapRepoErr("failed to create menu option", err)
		}
	}
	return nil
}

func (r *MenuRepository) SetPublished(ctx context.Context, tx sqlc.DBTX, mn *menu.Menu) error {
	params := sqlc.SetMenuPublishedParams{
		ID:          mn.ID(),
		IsPublished: mn.IsPublished(),
		UpdatedAt:   pgconv.TimeToPgtype(mn.UpdatedAt()),
	}
	n, err := r.queries.SetMenuPublished(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update menu publication", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("menu not found", nil, infra.KindNotFound)
	}
	return nil
}

// Update saves an edited menu: removed options are deleted first, then every
// remaining option is upserted and the menu row rewritten.
func (r *MenuRepository) Update(ctx context.Context, tx sqlc.DBTX, mn *menu.Menu, removed []uuid.UUID) error {
	if len(removed) > 0 {
		params := sqlc.DeleteMenuOptionsParams{MenuID: mn.ID(), Ids: removed}
		if _, err := r.queries.DeleteMenuOptions(ctx, tx, params); err != nil {
			return infra.WrapRepoErr("failed to delete menu options", err)
		}
	}
	for _, o := range mn.Options() {
		if err := r.queries.UpsertMenuOption(ctx, tx, converter.MenuOptionToUpsertParams(mn, o)); err != nil {
			return infra.WrapRepoErr("failed to save menu option", err)
		}
	}
	n, err := r.queries.UpdateMenu(ctx, tx, converter.MenuToUpdateParams(mn))
	if err != nil {
		return infra.WrapRepoErr("failed to update menu", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("menu not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MenuRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteMenu(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete menu", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("menu not found", nil, infra.KindNotFound)
	}
	return nil
}
