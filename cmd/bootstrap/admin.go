package bootstrap

import (
	"context"
	"log/slog"

	"canteen-reservation/internal/pkg/config"
	"canteen-reservation/internal/usecase/commands"

	"go.uber.org/fx"
)

var AdminSeedModule = fx.Module("admin-seed",
	fx.Invoke(SeedAdmin),
)

// SeedAdmin makes sure a fresh database has an administrator to log in with.
func SeedAdmin(lc fx.Lifecycle, cfg config.Config, seeder commands.AdminSeeder, logger *slog.Logger) {
	if !cfg.Bootstrap.Enabled() {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			created, err := seeder.EnsureAdmin(ctx, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword)
			if err != nil {
				return err
			}
			if !created {
				logger.Debug("administrator already present", "email", cfg.Bootstrap.AdminEmail)
			}
			return nil
		},
	})
}
