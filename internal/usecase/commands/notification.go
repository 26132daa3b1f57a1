package commands

import (
	"context"
	"log/slog"

	"canteen-reservation/internal/pkg/clock"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/shared"
)

const DefaultDispatchBatchSize = 20

// NotificationSender delivers one outbox job. Delivery channels live behind
// this interface.
type NotificationSender interface {
	Send(ctx context.Context, job shared.NotificationJob) error
}

// LogNotificationSender writes jobs to the structured log instead of sending them.
type LogNotificationSender struct {
	logger *slog.Logger
}

func NewLogNotificationSender(logger *slog.Logger) NotificationSender {
	return &LogNotificationSender{logger: logger}
}

func (s *LogNotificationSender) Send(ctx context.Context, job shared.NotificationJob) error {
	s.logger.InfoContext(ctx, "notification",
		"job_id", job.ID,
		"kind", job.Kind,
		"topic", job.Topic,
		"attempt", job.Attempts,
		"payload", string(job.Payload),
	)
	return nil
}

type NotificationDispatcher interface {
	// DispatchDue claims due jobs, sends them and records the outcome. It
	// returns how many jobs were claimed.
	DispatchDue(ctx context.Context) (int, error)
}

type notificationDispatcherImpl struct {
	uow       shared.UnitOfWork
	sender    NotificationSender
	clock     clock.Clock
	batchSize int
}

func NewNotificationDispatcher(uow shared.UnitOfWork, sender NotificationSender, clk clock.Clock) NotificationDispatcher {
	return &notificationDispatcherImpl{
		uow:       uow,
		sender:    sender,
		clock:     clk,
		batchSize: DefaultDispatchBatchSize,
	}
}

func (d *notificationDispatcherImpl) DispatchDue(ctx context.Context) (int, error) {
	var jobs []shared.NotificationJob
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, err := tx.Notifications().ClaimDue(ctx, tx.DB(), d.clock.Now(), d.batchSize)
		if err != nil {
			return err
		}
		jobs = claimed
		return nil
	})
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// A job whose status write fails stays running until its lease expires
	// and ClaimDue hands it out again.
	var firstErr error
	failed := 0
	for _, job := range jobs {
		status := shared.NotificationStatusDone
		var lastError *string
		if sendErr := d.sender.Send(ctx, job); sendErr != nil {
			status = shared.NotificationStatusFailed
			msg := sendErr.Error()
			lastError = &msg
			slog.Warn("notification delivery failed", "job_id", job.ID, "topic", job.Topic, "error", msg)
		}

		err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Notifications().UpdateJobStatus(ctx, tx.DB(), job.ID, status, lastError)
		})
		if err != nil {
			slog.Error("notification status not recorded", "job_id", job.ID, "status", status, "error", err)
			failed++
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if firstErr != nil {
		return len(jobs), errs.WithDetailf(errs.Mark(firstErr, errs.ErrDatabaseOperationFailed),
			"%d of %d job status updates failed", failed, len(jobs))
	}
	return len(jobs), nil
}
