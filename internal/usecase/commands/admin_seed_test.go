//go:build unit

package commands_test

import (
	"context"
	"testing"

	"canteen-reservation/internal/domain/user"
	"canteen-reservation/internal/infra"
	sqlc "canteen-reservation/internal/infra/sqlc/generated"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/pkg/password"
	"canteen-reservation/internal/usecase/commands"
	"canteen-reservation/tests/common/builder"
	queriesmock "canteen-reservation/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEnsureAdmin(t *testing.T) {
	notFound := infra.WrapRepoErr("user not found", nil, infra.KindNotFound)

	t.Run("creates the administrator on a fresh install", func(t *testing.T) {
		f := newTxFixture(t, parisTime(8, 0))
		store := queriesmock.NewMockUserReadStore(f.ctrl)
		seeder := commands.NewAdminSeeder(f.uow, store)

		var created *user.User
		store.EXPECT().FindByEmail(gomock.Any(), "admin@cantine.local").Return(nil, "", notFound)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, u *user.User) (uuid.UUID, error) {
				created = u
				return u.ID(), nil
			})

		ok, err := seeder.EnsureAdmin(context.Background(), " Admin@Cantine.local ", "change-me-now")
		require.NoError(t, err)
		assert.True(t, ok)
		require.NotNil(t, created)
		assert.Equal(t, user.RoleAdmin, created.Role())
		assert.True(t, created.IsActive())
		assert.Equal(t, "admin@cantine.local", created.Email().Value())
		assert.NoError(t, password.ComparePassword(created.PasswordHash(), "change-me-now"))
	})

	t.Run("existing account is left alone", func(t *testing.T) {
		f := newTxFixture(t, parisTime(8, 0))
		store := queriesmock.NewMockUserReadStore(f.ctrl)
		seeder := commands.NewAdminSeeder(f.uow, store)

		store.EXPECT().FindByEmail(gomock.Any(), "admin@cantine.local").
			Return(builder.NewUserBuilder().BuildReadModel(), "hash", nil)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		ok, err := seeder.EnsureAdmin(context.Background(), "admin@cantine.local", "change-me-now")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("lost race on the unique e-mail", func(t *testing.T) {
		f := newTxFixture(t, parisTime(8, 0))
		store := queriesmock.NewMockUserReadStore(f.ctrl)
		seeder := commands.NewAdminSeeder(f.uow, store)

		store.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, "", notFound)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("failed to create user", nil, infra.KindDuplicateKey))

		ok, err := seeder.EnsureAdmin(context.Background(), "admin@cantine.local", "change-me-now")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("weak password is rejected before any lookup", func(t *testing.T) {
		f := newTxFixture(t, parisTime(8, 0))
		store := queriesmock.NewMockUserReadStore(f.ctrl)
		seeder := commands.NewAdminSeeder(f.uow, store)

		_, err := seeder.EnsureAdmin(context.Background(), "admin@cantine.local", "short")
		require.Error(t, err)
		assert.True(t, errs.Is(err, user.ErrPasswordTooWeak))
	})

	t.Run("lookup failure", func(t *testing.T) {
		f := newTxFixture(t, parisTime(8, 0))
		store := queriesmock.NewMockUserReadStore(f.ctrl)
		seeder := commands.NewAdminSeeder(f.uow, store)

		store.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(nil, "", infra.WrapRepoErr("failed to find user by email", assert.AnError))

		_, err := seeder.EnsureAdmin(context.Background(), "admin@cantine.local", "change-me-now")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}
