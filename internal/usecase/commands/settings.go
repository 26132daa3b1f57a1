package commands

import (
	"context"

	"canteen-reservation/internal/domain/audit"
	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/domain/settings"
	"canteen-reservation/internal/domain/user"
	reqdto "canteen-reservation/internal/handler/dto/request"
	"canteen-reservation/internal/pkg/clock"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/queries"
	"canteen-reservation/internal/usecase/shared"
)

var ErrSettingsForbidden = errs.Mark(errs.New("settings are managed by administrators"), errs.ErrForbidden)

//go:generate mockgen -source=settings.go -destination=../../../tests/mock/commands/settings_mock.go -package=commandsmock

type SettingsCommands interface {
	Update(ctx context.Context, actor reservation.Actor, req reqdto.UpdateSettingsRequest) (*queries.SettingsView, error)
}

type settingsUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSettingsCommands(uow shared.UnitOfWork, clk clock.Clock) SettingsCommands {
	return &settingsUseCaseImpl{uow: uow, clock: clk}
}

func (uc *settingsUseCaseImpl) Update(ctx context.Context, actor reservation.Actor, req reqdto.UpdateSettingsRequest) (*queries.SettingsView, error) {
	if !actor.Role.AtLeast(user.RoleAdmin) {
		return nil, ErrSettingsForbidden
	}
	p := req.ToPatch()
	if p.IsEmpty() {
		return nil, settings.ErrEmptyPatch
	}

	var updated *settings.Settings
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().SettingsForUpdate(ctx)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		now := uc.clock.Now()
		next, err := current.Apply(p, now)
		if err != nil {
			return err
		}
		if err := tx.Settings().Save(ctx, tx.DB(), next); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		entry := audit.NewEntry(actor.UserID, nil, audit.ActionSettingsUpdated, audit.EntitySettings, "global", patchDetails(p), now)
		if err := appendAudit(ctx, tx, entry); err != nil {
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.ToSettingsView(updated, true), nil
}

func patchDetails(p settings.Patch) audit.Details {
	d := audit.Details{}
	if p.ReservationDeadline != nil {
		d["reservationDeadline"] = *p.ReservationDeadline
	}
	if p.OpenDays != nil {
		d["openDays"] = p.OpenDays
	}
	if p.WeeksInAdvance != nil {
		d["weeksInAdvance"] = *p.WeeksInAdvance
	}
	if p.MaxDailyCapacity.Set {
		if p.MaxDailyCapacity.Value == nil {
			d["maxDailyCapacity"] = nil
		} else {
			d["maxDailyCapacity"] = *p.MaxDailyCapacity.Value
		}
	}
	if p.NotificationsEnabled != nil {
		d["notificationsEnabled"] = *p.NotificationsEnabled
	}
	if p.OperationalTrackingEnabled != nil {
		d["operationalTrackingEnabled"] = *p.OperationalTrackingEnabled
	}
	return d
}
