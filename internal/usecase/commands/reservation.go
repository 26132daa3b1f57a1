package commands

import (
	"context"
	"encoding/json"
	"time"

	"canteen-reservation/internal/domain/audit"
	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/domain/menu"
	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/domain/settings"
	reqdto "canteen-reservation/internal/handler/dto/request"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/queries"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const reservationUniqueConstraint = "reservations_user_date_key"

const (
	NotificationKindEmail     = "email"
	TopicReservationCreated   = "reservation_created"
	TopicReservationCancelled = "reservation_cancelled"
)

var (
	ErrDuplicateReservation = errs.Mark(errs.New("a reservation already exists for this date"), errs.ErrDuplicateReservation)
	ErrMenuUnavailable      = errs.Mark(errs.New("no published menu for this date"), errs.ErrMenuUnavailable)
	ErrReservationNotFound  = errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)
	ErrReservationForbidden = errs.Mark(errs.New("not allowed to act on this reservation"), errs.ErrForbidden)
	ErrBookingForOthers     = errs.Mark(errs.New("only staff can book for another user"), errs.ErrForbidden)
	ErrStatusWithChoice     = errs.Mark(errs.New("status cannot be changed together with the meal choice"), errs.ErrValidation)
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation_mock.go -package=commandsmock

type ReservationCommands interface {
	Create(ctx context.Context, actor reservation.Actor, req reqdto.CreateReservationRequest) (*queries.ReservationView, error)
	Update(ctx context.Context, actor reservation.Actor, id uuid.UUID, req reqdto.UpdateReservationRequest) (*queries.ReservationView, error)
	Cancel(ctx context.Context, actor reservation.Actor, id uuid.UUID) error
}

type reservationUseCaseImpl struct {
	uow                shared.UnitOfWork
	window             *shared.BookingWindow
	reservationQueries queries.ReservationQueries
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	window *shared.BookingWindow,
	reservationQueries queries.ReservationQueries,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:                uow,
		window:             window,
		reservationQueries: reservationQueries,
	}
}

// Create books a meal. Checks run in a fixed order so that the first failing
// rule decides the error: input, open day, cut-off, uniqueness, menu, then
// the options main, starter, dessert.
func (r *reservationUseCaseImpl) Create(
	ctx context.Context,
	actor reservation.Actor,
	req reqdto.CreateReservationRequest,
) (*queries.ReservationView, error) {
	date, choice, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	ownerID := actor.UserID
	if req.UserID != nil {
		ownerID = *req.UserID
	}
	if !reservation.CanActFor(actor, ownerID) {
		return nil, ErrBookingForOthers
	}

	s, err := r.window.Settings(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := r.window.CheckOpenDay(s, date); err != nil {
		return nil, err
	}
	if err := r.window.CheckDeadline(s, date); err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Reads().ReservationExists(ctx, ownerID, date)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if exists {
			return errs.WithDetailf(ErrDuplicateReservation, "user %s already has a reservation on %s", ownerID, date)
		}

		m, err := publishedMenu(ctx, tx.Reads(), date)
		if err != nil {
			return err
		}
		if err := m.ValidateChoice(choice.MainOptionID, choice.StarterOptionID, choice.DessertOptionID); err != nil {
			return err
		}

		now := r.window.Now()
		res, err := reservation.NewReservation(ownerID, date, choice, now)
		if err != nil {
			return err
		}
		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintOf(err) == reservationUniqueConstraint {
				return errs.WithDetailf(ErrDuplicateReservation, "user %s already has a reservation on %s", ownerID, date)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		main, _ := m.Option(choice.MainOptionID)
		entry := audit.NewEntry(actor.UserID, &ownerID, audit.ActionReservationCreated, audit.EntityReservation, res.ID().String(), audit.Details{
			"date":            date.String(),
			"mainOption":      main.Name(),
			"consumptionMode": choice.ConsumptionMode.String(),
		}, now)
		if err := appendAudit(ctx, tx, entry); err != nil {
			return err
		}

		if err := enqueueReservationJob(ctx, tx, s, TopicReservationCreated, res, now); err != nil {
			return err
		}
		createdID = res.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: the view carries user identity and option names
	return r.reservationQueries.GetByID(ctx, actor, createdID)
}

// Update has two mutually exclusive paths. A status change is a staff
// operation that ignores the cut-off; a choice change is open to the owner
// until the cut-off of the reservation date.
func (r *reservationUseCaseImpl) Update(
	ctx context.Context,
	actor reservation.Actor,
	id uuid.UUID,
	req reqdto.UpdateReservationRequest,
) (*queries.ReservationView, error) {
	choicePatch, err := req.ToChoicePatch()
	if err != nil {
		return nil, err
	}
	if req.HasStatus() && !choicePatch.IsEmpty() {
		return nil, ErrStatusWithChoice
	}

	if req.HasStatus() {
		status, err := req.ToStatus()
		if err != nil {
			return nil, err
		}
		err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			res, err := loadReservation(ctx, tx, id)
			if err != nil {
				return err
			}
			return r.applyStatus(ctx, tx, actor, res, status)
		})
		if err != nil {
			return nil, err
		}
		return r.reservationQueries.GetByID(ctx, actor, id)
	}

	if err := choicePatch.Validate(); err != nil {
		return nil, err
	}
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := loadReservation(ctx, tx, id)
		if err != nil {
			return err
		}
		return r.applyChoice(ctx, tx, actor, res, choicePatch)
	})
	if err != nil {
		return nil, err
	}
	return r.reservationQueries.GetByID(ctx, actor, id)
}

func (r *reservationUseCaseImpl) applyStatus(
	ctx context.Context,
	tx shared.Tx,
	actor reservation.Actor,
	res *reservation.Reservation,
	status reservation.Status,
) error {
	if !reservation.CanActOn(actor, res.UserID(), reservation.IntentSetStatus) {
		return errs.WithDetailf(ErrReservationForbidden, "only staff can %s", reservation.IntentSetStatus)
	}

	previous := res.Status()
	now := r.window.Now()
	changed, err := res.TransitionTo(status, now)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), res); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	ownerID := res.UserID()
	entry := audit.NewEntry(actor.UserID, &ownerID, audit.ActionForStatus(status), audit.EntityReservation, res.ID().String(), audit.Details{
		"date":           res.Date().String(),
		"previousStatus": previous.String(),
		"status":         status.String(),
	}, now)
	return appendAudit(ctx, tx, entry)
}

func (r *reservationUseCaseImpl) applyChoice(
	ctx context.Context,
	tx shared.Tx,
	actor reservation.Actor,
	res *reservation.Reservation,
	p reservation.ChoicePatch,
) error {
	if !reservation.CanActOn(actor, res.UserID(), reservation.IntentChangeChoice) {
		return ErrReservationForbidden
	}
	if reservation.DeadlineApplies(actor) {
		s, err := r.window.Settings(ctx)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := r.window.CheckDeadline(s, res.Date()); err != nil {
			return err
		}
	}

	if touchesOptions(p) {
		m, err := publishedMenu(ctx, tx.Reads(), res.Date())
		if err != nil {
			return err
		}
		if err := validatePatchedOptions(m, p); err != nil {
			return err
		}
	}

	now := r.window.Now()
	if err := res.ApplyChoice(p, now); err != nil {
		return err
	}
	if err := tx.Reservations().UpdateChoice(ctx, tx.DB(), res); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	ownerID := res.UserID()
	entry := audit.NewEntry(actor.UserID, &ownerID, audit.ActionReservationModified, audit.EntityReservation, res.ID().String(), choicePatchDetails(res.Date(), p), now)
	return appendAudit(ctx, tx, entry)
}

// Cancel deletes the reservation. The owner is bound by the cut-off, staff
// are not.
func (r *reservationUseCaseImpl) Cancel(ctx context.Context, actor reservation.Actor, id uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := loadReservation(ctx, tx, id)
		if err != nil {
			return err
		}
		if !reservation.CanActOn(actor, res.UserID(), reservation.IntentCancel) {
			return ErrReservationForbidden
		}

		s, err := r.window.Settings(ctx)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if reservation.DeadlineApplies(actor) {
			if err := r.window.CheckDeadline(s, res.Date()); err != nil {
				return err
			}
		}

		if err := tx.Reservations().Delete(ctx, tx.DB(), res.ID()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		now := r.window.Now()
		ownerID := res.UserID()
		entry := audit.NewEntry(actor.UserID, &ownerID, audit.ActionReservationCancelled, audit.EntityReservation, res.ID().String(), audit.Details{
			"date": res.Date().String(),
		}, now)
		if err := appendAudit(ctx, tx, entry); err != nil {
			return err
		}
		return enqueueReservationJob(ctx, tx, s, TopicReservationCancelled, res, now)
	})
}

func loadReservation(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := tx.Reads().ReservationByIDForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithDetailf(ErrReservationNotFound, "reservation %s", id)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return res, nil
}

// publishedMenu returns the menu a reservation for date can be taken from.
func publishedMenu(ctx context.Context, reads shared.CommandReads, date calendar.Date) (*menu.Menu, error) {
	m, err := reads.MenuForDate(ctx, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if m == nil || !m.IsPublished() {
		return nil, errs.WithDetailf(ErrMenuUnavailable, "no published menu on %s", date)
	}
	return m, nil
}

func touchesOptions(p reservation.ChoicePatch) bool {
	return p.MainOptionID != nil || p.StarterOptionID.Value != nil || p.DessertOptionID.Value != nil
}

// validatePatchedOptions checks only the supplied ids, main first.
func validatePatchedOptions(m *menu.Menu, p reservation.ChoicePatch) error {
	if p.MainOptionID != nil {
		if _, err := m.FindOption(*p.MainOptionID, menu.CourseMain); err != nil {
			return err
		}
	}
	if p.StarterOptionID.Value != nil {
		if _, err := m.FindOption(*p.StarterOptionID.Value, menu.CourseStarter); err != nil {
			return err
		}
	}
	if p.DessertOptionID.Value != nil {
		if _, err := m.FindOption(*p.DessertOptionID.Value, menu.CourseDessert); err != nil {
			return err
		}
	}
	return nil
}

func choicePatchDetails(date calendar.Date, p reservation.ChoicePatch) audit.Details {
	d := audit.Details{"date": date.String()}
	if p.MainOptionID != nil {
		d["mainOptionId"] = p.MainOptionID.String()
	}
	if p.StarterOptionID.Set {
		d["starterOptionId"] = optionalID(p.StarterOptionID.Value)
	}
	if p.DessertOptionID.Set {
		d["dessertOptionId"] = optionalID(p.DessertOptionID.Value)
	}
	if p.ConsumptionMode != nil {
		d["consumptionMode"] = p.ConsumptionMode.String()
	}
	return d
}

func optionalID(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}

func appendAudit(ctx context.Context, tx shared.Tx, entry *audit.Entry) error {
	if err := tx.AuditLogs().Append(ctx, tx.DB(), entry); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func enqueueReservationJob(
	ctx context.Context,
	tx shared.Tx,
	s *settings.Settings,
	topic string,
	res *reservation.Reservation,
	now time.Time,
) error {
	if !s.NotificationsEnabled() {
		return nil
	}
	payload, err := json.Marshal(map[string]any{
		"reservation_id": res.ID(),
		"user_id":        res.UserID(),
		"date":           res.Date().String(),
		"type":           topic,
	})
	if err != nil {
		return err
	}
	if err := tx.Notifications().CreateJob(ctx, tx.DB(), NotificationKindEmail, topic, payload, now); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
