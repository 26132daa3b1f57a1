//go:build unit

package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"canteen-reservation/internal/pkg/config"
	"canteen-reservation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
)

type countingDispatcher struct {
	calls atomic.Int32
	err   error
}

func (d *countingDispatcher) DispatchDue(_ context.Context) (int, error) {
	d.calls.Add(1)
	return 1, d.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunNotificationDispatcher(t *testing.T) {
	t.Run("ticks until stopped", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Notification.DispatchInterval = 5 * time.Millisecond
		d := &countingDispatcher{}

		lc := fxtest.NewLifecycle(t)
		RunNotificationDispatcher(lc, cfg, d, discardLogger())
		lc.RequireStart()

		assert.Eventually(t, func() bool { return d.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

		lc.RequireStop()
		stopped := d.calls.Load()
		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, stopped, d.calls.Load())
	})

	t.Run("errors do not stop the loop", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Notification.DispatchInterval = 5 * time.Millisecond
		d := &countingDispatcher{err: errs.New("db down")}

		lc := fxtest.NewLifecycle(t)
		RunNotificationDispatcher(lc, cfg, d, discardLogger())
		lc.RequireStart()
		defer lc.RequireStop()

		assert.Eventually(t, func() bool { return d.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	})

	t.Run("zero interval disables dispatch", func(t *testing.T) {
		d := &countingDispatcher{}

		lc := fxtest.NewLifecycle(t)
		RunNotificationDispatcher(lc, config.NewTestConfig(), d, discardLogger())
		lc.RequireStart()
		time.Sleep(20 * time.Millisecond)
		lc.RequireStop()

		assert.Zero(t, d.calls.Load())
	})
}
