//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/repository"
	sqlc "canteen-reservation/internal/infra/sqlc/generated"
	"canteen-reservation/internal/pkg/pgconv"
	"canteen-reservation/tests/common/builder"
	repositorymock "canteen-reservation/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMenuRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: menu row then one row per option", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockMenuWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewMenuRepository(mockQueries, mockDB)

		mb := builder.NewMenuBuilder()
		m := mb.BuildDomain()

		var courses []string
		gomock.InOrder(
			mockQueries.EXPECT().CreateMenu(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateMenuParams) error {
					assert.Equal(t, m.ID(), arg.ID)
					assert.True(t, arg.IsPublished)
					return nil
				}),
			mockQueries.EXPECT().CreateMenuOption(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateMenuOptionParams) error {
					assert.Equal(t, m.ID(), arg.MenuID)
					courses = append(courses, arg.CourseType)
					return nil
				}).Times(len(m.Options())),
		)

		require.NoError(t, repo.Create(ctx, mockDB, m))
		assert.Equal(t, []string{"STARTER", "MAIN", "MAIN", "DESSERT"}, courses)
	})

	t.Run("error: option insert fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockMenuWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewMenuRepository(mockQueries, mockDB)

		mockQueries.EXPECT().CreateMenu(ctx, mockDB, gomock.Any()).Return(nil)
		mockQueries.EXPECT().CreateMenuOption(ctx, mockDB, gomock.Any()).Return(errors.New("disk full"))

		err := repo.Create(ctx, mockDB, builder.NewMenuBuilder().BuildDomain())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestMenuRepository_SetPublished(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: flag stored", affected: 1},
		{name: "error: menu vanished", affected: 0, expectKind: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockMenuWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewMenuRepository(mockQueries, mockDB)

			m := builder.NewMenuBuilder().BuildDomain()
			m.SetPublished(false, time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC))

			mockQueries.EXPECT().SetMenuPublished(ctx, mockDB, sqlc.SetMenuPublishedParams{
				ID:          m.ID(),
				IsPublished: false,
				UpdatedAt:   timestamptz(m.UpdatedAt()),
			}).Return(tc.affected, nil)

			err := repo.SetPublished(ctx, mockDB, m)
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMenuRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success: removed options deleted before upserts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockMenuWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewMenuRepository(mockQueries, mockDB)

		mb := builder.NewMenuBuilder()
		m := mb.BuildDomain()
		removed := []uuid.UUID{uuid.New()}

		var upserted []uuid.UUID
		gomock.InOrder(
			mockQueries.EXPECT().DeleteMenuOptions(ctx, mockDB, sqlc.DeleteMenuOptionsParams{MenuID: m.ID(), Ids: removed}).Return(int64(1), nil),
			mockQueries.EXPECT().UpsertMenuOption(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpsertMenuOptionParams) error {
					assert.Equal(t, m.ID(), arg.MenuID)
					upserted = append(upserted, arg.ID)
					return nil
				}).Times(len(m.Options())),
			mockQueries.EXPECT().UpdateMenu(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateMenuParams) (int64, error) {
					assert.Equal(t, m.ID(), arg.ID)
					assert.Equal(t, timestamptz(m.UpdatedAt()), arg.UpdatedAt)
					return 1, nil
				}),
		)

		require.NoError(t, repo.Update(ctx, mockDB, m, removed))
		assert.Equal(t, []uuid.UUID{mb.StarterID, mb.MainID, mb.SecondMainID, mb.DessertID}, upserted)
	})

	t.Run("success: nothing removed skips the delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockMenuWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewMenuRepository(mockQueries, mockDB)
		m := builder.NewMenuBuilder().BuildDomain()

		mockQueries.EXPECT().DeleteMenuOptions(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		mockQueries.EXPECT().UpsertMenuOption(ctx, mockDB, gomock.Any()).Return(nil).Times(len(m.Options()))
		mockQueries.EXPECT().UpdateMenu(ctx, mockDB, gomock.Any()).Return(int64(1), nil)

		require.NoError(t, repo.Update(ctx, mockDB, m, nil))
	})

	t.Run("error: referenced option keeps the foreign key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockMenuWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewMenuRepository(mockQueries, mockDB)

		mockQueries.EXPECT().DeleteMenuOptions(ctx, mockDB, gomock.Any()).
			Return(int64(0), &pgconn.PgError{Code: "23503"})
		mockQueries.EXPECT().UpsertMenuOption(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := repo.Update(ctx, mockDB, builder.NewMenuBuilder().BuildDomain(), []uuid.UUID{uuid.New()})
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})

	t.Run("error: menu vanished", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockMenuWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewMenuRepository(mockQueries, mockDB)
		m := builder.NewMenuBuilder().BuildDomain()

		mockQueries.EXPECT().UpsertMenuOption(ctx, mockDB, gomock.Any()).Return(nil).AnyTimes()
		mockQueries.EXPECT().UpdateMenu(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		err := repo.Update(ctx, mockDB, m, nil)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgconv.TimeToPgtype(t)
}
