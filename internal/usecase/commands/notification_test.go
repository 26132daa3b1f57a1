//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	sqlc "canteen-reservation/internal/infra/sqlc/generated"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/commands"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingSender struct {
	sent []uuid.UUID
	fail map[uuid.UUID]error
}

func (s *recordingSender) Send(_ context.Context, job shared.NotificationJob) error {
	s.sent = append(s.sent, job.ID)
	return s.fail[job.ID]
}

func TestDispatchDue(t *testing.T) {
	t.Run("marks each job by its delivery outcome", func(t *testing.T) {
		f := newTxFixture(t, parisTime(10, 5))
		ok := shared.NotificationJob{ID: uuid.New(), Kind: commands.NotificationKindEmail, Topic: commands.TopicReservationCreated}
		bad := shared.NotificationJob{ID: uuid.New(), Kind: commands.NotificationKindEmail, Topic: commands.TopicReservationCancelled}
		sender := &recordingSender{fail: map[uuid.UUID]error{bad.ID: errors.New("smtp unavailable")}}
		dispatcher := commands.NewNotificationDispatcher(f.uow, sender, f.clock)

		f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), parisTime(10, 5), commands.DefaultDispatchBatchSize).
			Return([]shared.NotificationJob{ok, bad}, nil)
		f.notifications.EXPECT().UpdateJobStatus(gomock.Any(), gomock.Any(), ok.ID, shared.NotificationStatusDone, (*string)(nil)).Return(nil)
		f.notifications.EXPECT().UpdateJobStatus(gomock.Any(), gomock.Any(), bad.ID, shared.NotificationStatusFailed, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _ uuid.UUID, _ string, lastError *string) error {
				require.NotNil(t, lastError)
				assert.Equal(t, "smtp unavailable", *lastError)
				return nil
			})

		n, err := dispatcher.DispatchDue(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, []uuid.UUID{ok.ID, bad.ID}, sender.sent)
	})

	t.Run("nothing due", func(t *testing.T) {
		f := newTxFixture(t, parisTime(10, 5))
		sender := &recordingSender{}
		dispatcher := commands.NewNotificationDispatcher(f.uow, sender, f.clock)

		f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.notifications.EXPECT().UpdateJobStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		n, err := dispatcher.DispatchDue(context.Background())
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, sender.sent)
	})

	t.Run("status write failure does not stop the batch", func(t *testing.T) {
		f := newTxFixture(t, parisTime(10, 5))
		first := shared.NotificationJob{ID: uuid.New(), Topic: commands.TopicReservationCreated}
		second := shared.NotificationJob{ID: uuid.New(), Topic: commands.TopicReservationCreated}
		third := shared.NotificationJob{ID: uuid.New(), Topic: commands.TopicReservationCancelled}
		sender := &recordingSender{}
		dispatcher := commands.NewNotificationDispatcher(f.uow, sender, f.clock)

		f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]shared.NotificationJob{first, second, third}, nil)
		gomock.InOrder(
			f.notifications.EXPECT().UpdateJobStatus(gomock.Any(), gomock.Any(), first.ID, shared.NotificationStatusDone, gomock.Any()).
				Return(errors.New("connection reset")),
			f.notifications.EXPECT().UpdateJobStatus(gomock.Any(), gomock.Any(), second.ID, shared.NotificationStatusDone, gomock.Any()).Return(nil),
			f.notifications.EXPECT().UpdateJobStatus(gomock.Any(), gomock.Any(), third.ID, shared.NotificationStatusDone, gomock.Any()).Return(nil),
		)

		n, err := dispatcher.DispatchDue(context.Background())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
		assert.Equal(t, []string{"1 of 3 job status updates failed"}, errs.Details(err))
		assert.Equal(t, 3, n)
		assert.Equal(t, []uuid.UUID{first.ID, second.ID, third.ID}, sender.sent)
	})

	t.Run("claim failure", func(t *testing.T) {
		f := newTxFixture(t, parisTime(10, 5))
		dispatcher := commands.NewNotificationDispatcher(f.uow, &recordingSender{}, f.clock)

		f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		_, err := dispatcher.DispatchDue(context.Background())
		require.Error(t, err)
	})
}
