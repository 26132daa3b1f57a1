package shared

import (
	"context"
	"time"

	"canteen-reservation/internal/domain/audit"
	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/domain/menu"
	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/domain/settings"
	"canteen-reservation/internal/domain/user"
	sqlc "canteen-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Menus() MenuRepository
	Settings() SettingsRepository
	AuditLogs() AuditLogRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are the reads a command needs to validate before it writes.
// Inside Within they run on the transaction.
type CommandReads interface {
	// ReservationByIDForUpdate locks the row; a missing row is an infra NOT_FOUND error.
	ReservationByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ReservationExists(ctx context.Context, userID uuid.UUID, date calendar.Date) (bool, error)
	// MenuForDate returns nil without error when no menu exists for date.
	MenuForDate(ctx context.Context, date calendar.Date) (*menu.Menu, error)
	MenuByIDForUpdate(ctx context.Context, id uuid.UUID) (*menu.Menu, error)
	CountReservationsForMenu(ctx context.Context, menuID uuid.UUID) (int64, error)
	CountReservationsForOption(ctx context.Context, optionID uuid.UUID) (int64, error)
	SettingsForUpdate(ctx context.Context) (*settings.Settings, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	UpdateChoice(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type MenuRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, mn *menu.Menu) error
	SetPublished(ctx context.Context, tx sqlc.DBTX, mn *menu.Menu) error
	Update(ctx context.Context, tx sqlc.DBTX, mn *menu.Menu, removed []uuid.UUID) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type SettingsRepository interface {
	Save(ctx context.Context, tx sqlc.DBTX, s *settings.Settings) error
}

// AuditLogRepository is append-only.
type AuditLogRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, entry *audit.Entry) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, batchSize int) ([]NotificationJob, error)
	UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError *string) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
}

// SettingsProvider always yields usable settings: defaults are substituted
// when nothing has been stored yet.
type SettingsProvider interface {
	GetSettings(ctx context.Context) (*settings.Settings, error)
}
