//go:build unit

package bootstrap

import (
	"context"
	"testing"

	"canteen-reservation/internal/pkg/config"
	"canteen-reservation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type stubSeeder struct {
	email, password string
	err             error
	calls           int
}

func (s *stubSeeder) EnsureAdmin(_ context.Context, email, password string) (bool, error) {
	s.calls++
	s.email, s.password = email, password
	return s.err == nil, s.err
}

func TestSeedAdmin(t *testing.T) {
	t.Run("seeds on start", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Bootstrap = config.BootstrapConfig{AdminEmail: "admin@cantine.local", AdminPassword: "change-me-now"}
		seeder := &stubSeeder{}

		lc := fxtest.NewLifecycle(t)
		SeedAdmin(lc, cfg, seeder, discardLogger())
		lc.RequireStart()
		lc.RequireStop()

		assert.Equal(t, 1, seeder.calls)
		assert.Equal(t, "admin@cantine.local", seeder.email)
		assert.Equal(t, "change-me-now", seeder.password)
	})

	t.Run("failure aborts start", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Bootstrap = config.BootstrapConfig{AdminEmail: "admin@cantine.local", AdminPassword: "change-me-now"}
		seeder := &stubSeeder{err: errs.New("db down")}

		lc := fxtest.NewLifecycle(t)
		SeedAdmin(lc, cfg, seeder, discardLogger())
		require.Error(t, lc.Start(context.Background()))
	})

	t.Run("disabled without credentials", func(t *testing.T) {
		seeder := &stubSeeder{}

		lc := fxtest.NewLifecycle(t)
		SeedAdmin(lc, config.NewTestConfig(), seeder, discardLogger())
		lc.RequireStart()
		lc.RequireStop()

		assert.Zero(t, seeder.calls)
	})
}
