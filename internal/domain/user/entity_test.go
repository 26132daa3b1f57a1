//go:build unit

package user_test

import (
	"testing"

	"canteen-reservation/internal/domain/user"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("builds a valid user", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("agent@example.com")
		expected, err := user.NewUser(email, "hashed_password", user.RoleAgent, "Camille", "Martin")
		require.NoError(t, err)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
		assert.Equal(t, "Camille Martin", actual.FullName())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "valid address", mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") }},
			{name: "mixed case is accepted", mutate: func(b *builder.UserBuilder) { b.WithEmail("  Chef@Example.COM ") }},
			{name: "empty address", mutate: func(b *builder.UserBuilder) { b.WithEmail("") }, errIs: user.ErrInvalidEmail},
			{name: "missing domain", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") }, errIs: user.ErrInvalidEmail},
			{name: "missing at sign", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") }, errIs: user.ErrInvalidEmail},
		})
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "agent", mutate: func(b *builder.UserBuilder) { b.WithRole("AGENT") }},
			{name: "gestionnaire", mutate: func(b *builder.UserBuilder) { b.WithRole("GESTIONNAIRE") }},
			{name: "admin", mutate: func(b *builder.UserBuilder) { b.WithRole("ADMIN") }},
			{name: "lowercase is not a role", mutate: func(b *builder.UserBuilder) { b.WithRole("admin") }, errIs: user.ErrInvalidRole},
			{name: "empty role", mutate: func(b *builder.UserBuilder) { b.WithRole("") }, errIs: user.ErrInvalidRole},
		})
	})

	t.Run("name", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "blank first name", mutate: func(b *builder.UserBuilder) { b.FirstName = "  " }, errIs: user.ErrNameRequired},
			{name: "blank last name", mutate: func(b *builder.UserBuilder) { b.LastName = "" }, errIs: user.ErrNameRequired},
		})
	})
}

func TestRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role        user.Role
		staff       bool
		atLeastMgr  bool
		atLeastUser bool
	}{
		{role: user.RoleAgent, staff: false, atLeastMgr: false, atLeastUser: true},
		{role: user.RoleGestionnaire, staff: true, atLeastMgr: true, atLeastUser: true},
		{role: user.RoleAdmin, staff: true, atLeastMgr: true, atLeastUser: true},
		{role: user.Role("CHEF"), staff: false, atLeastMgr: false, atLeastUser: false},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.staff, tt.role.IsStaff())
			assert.Equal(t, tt.atLeastMgr, tt.role.AtLeast(user.RoleGestionnaire))
			assert.Equal(t, tt.atLeastUser, tt.role.AtLeast(user.RoleAgent))
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	_, err := user.NewPassword("sept7ch")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrValidation))

	// counted in characters, not bytes
	_, err = user.NewPassword("crème7é")
	assert.True(t, errs.Is(err, user.ErrPasswordTooWeak))

	p, err := user.NewPassword("huit-car")
	require.NoError(t, err)
	assert.Equal(t, "huit-car", p.Value())
}
