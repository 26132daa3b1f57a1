package bootstrap

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"canteen-reservation/internal/pkg/config"
	"canteen-reservation/internal/usecase/commands"

	"go.uber.org/fx"
)

var DispatcherModule = fx.Module("dispatcher",
	fx.Invoke(RunNotificationDispatcher),
)

// RunNotificationDispatcher drains the notification outbox on a fixed
// interval for the lifetime of the app.
func RunNotificationDispatcher(lc fx.Lifecycle, cfg config.Config, dispatcher commands.NotificationDispatcher, logger *slog.Logger) {
	interval := cfg.Notification.DispatchInterval
	if interval <= 0 {
		logger.Info("notification dispatcher disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				dispatchLoop(ctx, interval, dispatcher, logger)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}

func dispatchLoop(ctx context.Context, interval time.Duration, dispatcher commands.NotificationDispatcher, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := dispatcher.DispatchDue(ctx)
			if err != nil {
				logger.ErrorContext(ctx, "notification dispatch failed", "error", err)
				continue
			}
			if n > 0 {
				logger.DebugContext(ctx, "notifications dispatched", "count", n)
			}
		}
	}
}
