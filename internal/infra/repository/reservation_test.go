//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/repository"
	sqlc "canteen-reservation/internal/infra/sqlc/generated"
	"canteen-reservation/tests/common/builder"
	repositorymock "canteen-reservation/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Reservation Tests
// =============================================================================

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockReservationWriteQueries, *reservation.Reservation, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: row inserted with the domain values",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) error {
						assert.Equal(t, res.ID(), arg.ID)
						assert.Equal(t, res.UserID(), arg.UserID)
						assert.Equal(t, "BOOKED", arg.Status)
						assert.Equal(t, res.Date().String(), arg.Date.Time.Format("2006-01-02"))
						assert.False(t, arg.DessertOptionID.Valid)
						return nil
					})
			},
		},
		{
			name: "error: unique violation on user and date",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", ConstraintName: "reservations_user_date_key"}
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(dup)
			},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			res := builder.NewReservationBuilder().BuildDomain()
			tc.setupMock(mockQueries, res, mockDB)

			err := repo.Create(ctx, mockDB, res)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// =============================================================================
// Update / Delete Reservation Tests
// =============================================================================

func TestReservationRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: one row updated", affected: 1},
		{name: "error: no row matched", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errors.New("timeout"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			res := builder.NewReservationBuilder().WithStatus(reservation.StatusServed).BuildDomain()
			mockQueries.EXPECT().
				UpdateReservationStatus(ctx, mockDB, sqlc.UpdateReservationStatusParams{
					ID:        res.ID(),
					Status:    "SERVED",
					UpdatedAt: timestamptz(res.UpdatedAt()),
				}).
				Return(tc.affected, tc.queryErr)

			err := repo.UpdateStatus(ctx, mockDB, res)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationRepository_UpdateChoice(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries, mockDB)

	starter := uuid.New()
	res := builder.NewReservationBuilder().WithStarter(starter).BuildDomain()

	mockQueries.EXPECT().UpdateReservationChoice(ctx, mockDB, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateReservationChoiceParams) (int64, error) {
			assert.Equal(t, res.MainOptionID(), arg.MainOptionID)
			assert.True(t, arg.StarterOptionID.Valid)
			assert.Equal(t, starter, uuid.UUID(arg.StarterOptionID.Bytes))
			assert.Equal(t, "SUR_PLACE", arg.ConsumptionMode)
			return 1, nil
		})

	require.NoError(t, repo.UpdateChoice(ctx, mockDB, res))
}

func TestReservationRepository_Delete(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: row deleted", affected: 1},
		{name: "error: already gone", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			id := uuid.New()
			mockQueries.EXPECT().DeleteReservation(ctx, mockDB, id).Return(tc.affected, tc.queryErr)

			err := repo.Delete(ctx, mockDB, id)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// =============================================================================
// Test Helper Functions
// =============================================================================

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
