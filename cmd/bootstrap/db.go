package bootstrap

import (
	"context"
	"log/slog"

	"canteen-reservation/internal/infra/db"
	"canteen-reservation/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pool eagerly so a bad DSN fails the fx graph, and on stop
// logs how busy the pool was before closing it.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return pool.Ping(ctx)
		},
		OnStop: func(ctx context.Context) error {
			stat := pool.Stat()
			logger.InfoContext(ctx, "database pool stats",
				"acquired", stat.AcquiredConns(),
				"total", stat.TotalConns(),
				"acquire_count", stat.AcquireCount(),
			)
			cleanup()
			return nil
		},
	})

	return pool, nil
}
