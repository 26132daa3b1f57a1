//go:build unit

package commands_test

import (
	"context"
	"testing"

	"canteen-reservation/internal/domain/audit"
	"canteen-reservation/internal/domain/menu"
	"canteen-reservation/internal/domain/user"
	reqdto "canteen-reservation/internal/handler/dto/request"
	"canteen-reservation/internal/infra"
	sqlc "canteen-reservation/internal/infra/sqlc/generated"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/pkg/patch"
	"canteen-reservation/internal/usecase/commands"
	"canteen-reservation/internal/usecase/queries"
	queriesmock "canteen-reservation/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type menuFixture struct {
	*txFixture
	queries *queriesmock.MockMenuQueries
	cmds    commands.MenuCommands
}

func newMenuFixture(t *testing.T) *menuFixture {
	f := newTxFixture(t, parisTime(8, 0))
	q := queriesmock.NewMockMenuQueries(f.ctrl)
	return &menuFixture{
		txFixture: f,
		queries:   q,
		cmds:      commands.NewMenuCommands(f.uow, q, f.clock),
	}
}

func createMenuRequest() reqdto.CreateMenuRequest {
	return reqdto.CreateMenuRequest{
		Date:        "2024-12-10",
		IsPublished: true,
		Options: []reqdto.MenuOptionRequest{
			{CourseType: "STARTER", Name: "Velouté de potiron"},
			{CourseType: "MAIN", Name: "Blanquette de veau"},
			{CourseType: "DESSERT", Name: "Île flottante"},
		},
	}
}

func TestCreateMenu(t *testing.T) {
	t.Run("staff creates a menu", func(t *testing.T) {
		f := newMenuFixture(t)
		manager := managerActor()
		view := &queries.MenuView{IsPublished: true}

		var created *menu.Menu
		var entry *audit.Entry
		f.reads.EXPECT().MenuForDate(gomock.Any(), serviceDay).Return(nil, nil)
		f.menus.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, m *menu.Menu) error {
				created = m
				return nil
			})
		f.audits.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, e *audit.Entry) error {
				entry = e
				return nil
			})
		f.queries.EXPECT().GetForDate(gomock.Any(), serviceDay, user.RoleGestionnaire).Return(view, nil)

		got, err := f.cmds.Create(context.Background(), manager, createMenuRequest())
		require.NoError(t, err)
		assert.Same(t, view, got)
		require.NotNil(t, created)
		assert.Len(t, created.Options(), 3)
		assert.Equal(t, audit.ActionMenuCreated, entry.Action())
		assert.Equal(t, audit.EntityMenu, entry.EntityType())
		assert.Equal(t, created.ID().String(), entry.EntityID())
		assert.Nil(t, entry.UserID())
	})

	t.Run("agent is forbidden", func(t *testing.T) {
		f := newMenuFixture(t)

		_, err := f.cmds.Create(context.Background(), agentActor(), createMenuRequest())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("menu without a main option", func(t *testing.T) {
		f := newMenuFixture(t)
		req := createMenuRequest()
		req.Options = req.Options[:1]

		_, err := f.cmds.Create(context.Background(), managerActor(), req)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.True(t, errs.Is(err, menu.ErrNoMainOption))
	})

	t.Run("date already has a menu", func(t *testing.T) {
		f := newMenuFixture(t)
		f.reads.EXPECT().MenuForDate(gomock.Any(), serviceDay).Return(menuOn(serviceDay).BuildDomain(), nil)
		f.menus.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := f.cmds.Create(context.Background(), managerActor(), createMenuRequest())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("concurrent insert hits the unique date", func(t *testing.T) {
		f := newMenuFixture(t)
		f.reads.EXPECT().MenuForDate(gomock.Any(), serviceDay).Return(nil, nil)
		f.menus.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to create menu", &pgconn.PgError{Code: "23505", ConstraintName: "menus_date_key"}))

		_, err := f.cmds.Create(context.Background(), managerActor(), createMenuRequest())
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrMenuExists))
	})
}

func TestSetMenuPublished(t *testing.T) {
	t.Run("publishes a draft", func(t *testing.T) {
		f := newMenuFixture(t)
		m := menuOn(serviceDay).Unpublished().BuildDomain()

		var entry *audit.Entry
		f.reads.EXPECT().MenuByIDForUpdate(gomock.Any(), m.ID()).Return(m, nil)
		f.menus.EXPECT().SetPublished(gomock.Any(), gomock.Any(), m).Return(nil)
		f.audits.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, e *audit.Entry) error {
				entry = e
				return nil
			})
		f.queries.EXPECT().GetForDate(gomock.Any(), serviceDay, user.RoleGestionnaire).Return(&queries.MenuView{IsPublished: true}, nil)

		got, err := f.cmds.SetPublished(context.Background(), managerActor(), m.ID(), true)
		require.NoError(t, err)
		assert.True(t, got.IsPublished)
		assert.True(t, m.IsPublished())
		assert.Equal(t, audit.ActionMenuPublished, entry.Action())
	})

	t.Run("unchanged flag writes nothing", func(t *testing.T) {
		f := newMenuFixture(t)
		m := menuOn(serviceDay).BuildDomain()

		f.reads.EXPECT().MenuByIDForUpdate(gomock.Any(), m.ID()).Return(m, nil)
		f.menus.EXPECT().SetPublished(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		f.audits.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		f.queries.EXPECT().GetForDate(gomock.Any(), serviceDay, user.RoleGestionnaire).Return(&queries.MenuView{IsPublished: true}, nil)

		_, err := f.cmds.SetPublished(context.Background(), managerActor(), m.ID(), true)
		require.NoError(t, err)
	})

	t.Run("unknown menu", func(t *testing.T) {
		f := newMenuFixture(t)
		m := menuOn(serviceDay).BuildDomain()
		f.reads.EXPECT().MenuByIDForUpdate(gomock.Any(), m.ID()).
			Return(nil, infra.WrapRepoErr("menu not found", nil, infra.KindNotFound))

		_, err := f.cmds.SetPublished(context.Background(), managerActor(), m.ID(), false)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func optionEdit(id uuid.UUID, course, name string) reqdto.MenuOptionEditRequest {
	return reqdto.MenuOptionEditRequest{ID: &id, MenuOptionRequest: reqdto.MenuOptionRequest{CourseType: course, Name: name}}
}

func TestUpdateMenu(t *testing.T) {
	t.Run("edits options and notes", func(t *testing.T) {
		f := newMenuFixture(t)
		mb := menuOn(serviceDay)
		m := mb.BuildDomain()
		req := reqdto.UpdateMenuRequest{
			Notes: patch.Some("Sans porc"),
			Options: &[]reqdto.MenuOptionEditRequest{
				optionEdit(mb.StarterID, "STARTER", "Salade de saison"),
				optionEdit(mb.MainID, "MAIN", "Poulet rôti aux herbes"),
				optionEdit(mb.DessertID, "DESSERT", "Tarte aux pommes"),
				{MenuOptionRequest: reqdto.MenuOptionRequest{CourseType: "DESSERT", Name: "Crème brûlée"}},
			},
		}

		var removed []uuid.UUID
		var entry *audit.Entry
		f.reads.EXPECT().MenuByIDForUpdate(gomock.Any(), m.ID()).Return(m, nil)
		f.reads.EXPECT().CountReservationsForOption(gomock.Any(), mb.SecondMainID).Return(int64(0), nil)
		f.menus.EXPECT().Update(gomock.Any(), gomock.Any(), m, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _ *menu.Menu, ids []uuid.UUID) error {
				removed = ids
				return nil
			})
		f.audits.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, e *audit.Entry) error {
				entry = e
				return nil
			})
		f.queries.EXPECT().GetForDate(gomock.Any(), serviceDay, user.RoleGestionnaire).Return(&queries.MenuView{}, nil)

		_, err := f.cmds.Update(context.Background(), managerActor(), m.ID(), req)
		require.NoError(t, err)

		assert.Equal(t, []uuid.UUID{mb.SecondMainID}, removed)
		assert.Equal(t, "Sans porc", *m.Notes())
		assert.Len(t, m.Options(), 4)
		assert.Len(t, m.OptionsOf(menu.CourseDessert), 2)
		chicken, ok := m.Option(mb.MainID)
		require.True(t, ok)
		assert.Equal(t, "Poulet rôti aux herbes", chicken.Name())

		require.NotNil(t, entry)
		assert.Equal(t, audit.ActionMenuModified, entry.Action())
		assert.Equal(t, m.ID().String(), entry.EntityID())
		details := entry.Details()
		assert.Equal(t, 1, details["added"])
		assert.Equal(t, 3, details["updated"])
		assert.Equal(t, []uuid.UUID{mb.SecondMainID}, details["removed"])
	})

	t.Run("publication only goes through SetPublished", func(t *testing.T) {
		f := newMenuFixture(t)
		m := menuOn(serviceDay).BuildDomain()
		published := false

		var entry *audit.Entry
		f.reads.EXPECT().MenuByIDForUpdate(gomock.Any(), m.ID()).Return(m, nil)
		f.menus.EXPECT().SetPublished(gomock.Any(), gomock.Any(), m).Return(nil)
		f.menus.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		f.audits.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, e *audit.Entry) error {
				entry = e
				return nil
			})
		f.queries.EXPECT().GetForDate(gomock.Any(), serviceDay, user.RoleGestionnaire).Return(&queries.MenuView{}, nil)

		_, err := f.cmds.Update(context.Background(), managerActor(), m.ID(), reqdto.UpdateMenuRequest{IsPublished: &published})
		require.NoError(t, err)
		assert.False(t, m.IsPublished())
		assert.Equal(t, audit.ActionMenuUnpublished, entry.Action())
	})

	t.Run("reserved option cannot be removed", func(t *testing.T) {
		f := newMenuFixture(t)
		mb := menuOn(serviceDay)
		m := mb.BuildDomain()
		req := reqdto.UpdateMenuRequest{Options: &[]reqdto.MenuOptionEditRequest{
			optionEdit(mb.MainID, "MAIN", "Poulet rôti"),
		}}

		f.reads.EXPECT().MenuByIDForUpdate(gomock.Any(), m.ID()).Return(m, nil)
		f.reads.EXPECT().CountReservationsForOption(gomock.Any(), mb.DessertID).Return(int64(3), nil)
		f.reads.EXPECT().CountReservationsForOption(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
		f.menus.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		f.audits.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := f.cmds.Update(context.Background(), managerActor(), m.ID(), req)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrMenuInUse))
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("reserved option cannot change course", func(t *testing.T) {
		f := newMenuFixture(t)
		mb := menuOn(serviceDay)
		m := mb.BuildDomain()
		req := reqdto.UpdateMenuRequest{Options: &[]reqdto.MenuOptionEditRequest{
			optionEdit(mb.StarterID, "MAIN", "Salade de saison"),
			optionEdit(mb.MainID, "MAIN", "Poulet rôti"),
			optionEdit(mb.SecondMainID, "MAIN", "Lasagnes végétariennes"),
			optionEdit(mb.DessertID, "DESSERT", "Tarte aux pommes"),
		}}

		f.reads.EXPECT().MenuByIDForUpdate(gomock.Any(), m.ID()).Return(m, nil)
		f.reads.EXPECT().CountReservationsForOption(gomock.Any(), mb.StarterID).Return(int64(1), nil)
		f.menus.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := f.cmds.Update(context.Background(), managerActor(), m.ID(), req)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrMenuInUse))
	})

	t.Run("reservation inserted concurrently", func(t *testing.T) {
		f := newMenuFixture(t)
		mb := menuOn(serviceDay)
		m := mb.BuildDomain()
		req := reqdto.UpdateMenuRequest{Options: &[]reqdto.MenuOptionEditRequest{
			optionEdit(mb.StarterID, "STARTER", "Salade de saison"),
			optionEdit(mb.MainID, "MAIN", "Poulet rôti"),
			optionEdit(mb.DessertID, "DESSERT", "Tarte aux pommes"),
		}}

		f.reads.EXPECT().MenuByIDForUpdate(gomock.Any(), m.ID()).Return(m, nil)
		f.reads.EXPECT().CountReservationsForOption(gomock.Any(), mb.SecondMainID).Return(int64(0), nil)
		f.menus.EXPECT().Update(gomock.Any(), gomock.Any(), m, []uuid.UUID{mb.SecondMainID}).
			Return(infra.WrapRepoErr("failed to remove menu options", &pgconn.PgError{Code: "23503"}))
		f.audits.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := f.cmds.Update(context.Background(), managerActor(), m.ID(), req)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("option from another menu", func(t *testing.T) {
		f := newMenuFixture(t)
		m := menuOn(serviceDay).BuildDomain()
		req := reqdto.UpdateMenuRequest{Options: &[]reqdto.MenuOptionEditRequest{
			optionEdit(uuid.New(), "MAIN", "Poisson du jour"),
		}}

		f.reads.EXPECT().MenuByIDForUpdate(gomock.Any(), m.ID()).Return(m, nil)
		f.menus.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := f.cmds.Update(context.Background(), managerActor(), m.ID(), req)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidOption))
	})

	t.Run("agent is forbidden", func(t *testing.T) {
		f := newMenuFixture(t)

		_, err := f.cmds.Update(context.Background(), agentActor(), uuid.New(), reqdto.UpdateMenuRequest{Notes: patch.Some("x")})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})
}

func TestDeleteMenu(t *testing.T) {
	tests := []struct {
		name    string
		count   int64
		delErr  error
		wantErr error
	}{
		{name: "unused menu is deleted"},
		{name: "menu with reservations", count: 2, wantErr: errs.ErrConflict},
		{
			name:    "reservation inserted concurrently",
			delErr:  infra.WrapRepoErr("failed to delete menu", &pgconn.PgError{Code: "23503"}),
			wantErr: errs.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMenuFixture(t)
			m := menuOn(serviceDay).BuildDomain()

			f.reads.EXPECT().MenuByIDForUpdate(gomock.Any(), m.ID()).Return(m, nil)
			f.reads.EXPECT().CountReservationsForMenu(gomock.Any(), m.ID()).Return(tt.count, nil)
			if tt.count == 0 {
				f.menus.EXPECT().Delete(gomock.Any(), gomock.Any(), m.ID()).Return(tt.delErr)
			}
			if tt.wantErr == nil {
				f.audits.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			}

			err := f.cmds.Delete(context.Background(), managerActor(), m.ID())
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
		})
	}
}
