package commands

import (
	"context"

	"canteen-reservation/internal/domain/audit"
	"canteen-reservation/internal/domain/menu"
	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/domain/user"
	reqdto "canteen-reservation/internal/handler/dto/request"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/pkg/clock"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/queries"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMenuForbidden = errs.Mark(errs.New("menus are managed by staff"), errs.ErrForbidden)
	ErrMenuExists    = errs.Mark(errs.New("a menu already exists for this date"), errs.ErrConflict)
	ErrMenuNotFound  = errs.Mark(errs.New("menu not found"), errs.ErrNotFound)
	ErrMenuInUse     = errs.Mark(errs.New("menu has reservations"), errs.ErrConflict)
)

//go:generate mockgen -source=menu.go -destination=../../../tests/mock/commands/menu_mock.go -package=commandsmock

type MenuCommands interface {
	Create(ctx context.Context, actor reservation.Actor, req reqdto.CreateMenuRequest) (*queries.MenuView, error)
	SetPublished(ctx context.Context, actor reservation.Actor, id uuid.UUID, published bool) (*queries.MenuView, error)
	Update(ctx context.Context, actor reservation.Actor, id uuid.UUID, req reqdto.UpdateMenuRequest) (*queries.MenuView, error)
	Delete(ctx context.Context, actor reservation.Actor, id uuid.UUID) error
}

type menuUseCaseImpl struct {
	uow         shared.UnitOfWork
	menuQueries queries.MenuQueries
	clock       clock.Clock
}

func NewMenuCommands(uow shared.UnitOfWork, menuQueries queries.MenuQueries, clk clock.Clock) MenuCommands {
	return &menuUseCaseImpl{uow: uow, menuQueries: menuQueries, clock: clk}
}

func (uc *menuUseCaseImpl) Create(ctx context.Context, actor reservation.Actor, req reqdto.CreateMenuRequest) (*queries.MenuView, error) {
	if !actor.IsStaff() {
		return nil, ErrMenuForbidden
	}
	m, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Reads().MenuForDate(ctx, m.Date())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if existing != nil {
			return errs.WithDetailf(ErrMenuExists, "menu %s already covers %s", existing.ID(), m.Date())
		}
		if err := tx.Menus().Create(ctx, tx.DB(), m); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.WithDetailf(ErrMenuExists, "date %s", m.Date())
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		entry := audit.NewEntry(actor.UserID, nil, audit.ActionMenuCreated, audit.EntityMenu, m.ID().String(), audit.Details{
			"date":        m.Date().String(),
			"options":     len(m.Options()),
			"isPublished": m.IsPublished(),
		}, uc.clock.Now())
		return appendAudit(ctx, tx, entry)
	})
	if err != nil {
		return nil, err
	}
	return uc.menuQueries.GetForDate(ctx, m.Date(), user.RoleGestionnaire)
}

// SetPublished is idempotent: publishing a published menu writes nothing.
func (uc *menuUseCaseImpl) SetPublished(ctx context.Context, actor reservation.Actor, id uuid.UUID, published bool) (*queries.MenuView, error) {
	if !actor.IsStaff() {
		return nil, ErrMenuForbidden
	}

	var m *menu.Menu
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		m, err = loadMenu(ctx, tx, id)
		if err != nil {
			return err
		}
		if m.IsPublished() == published {
			return nil
		}

		now := uc.clock.Now()
		m.SetPublished(published, now)
		if err := tx.Menus().SetPublished(ctx, tx.DB(), m); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		action := audit.ActionMenuUnpublished
		if published {
			action = audit.ActionMenuPublished
		}
		entry := audit.NewEntry(actor.UserID, nil, action, audit.EntityMenu, m.ID().String(), audit.Details{
			"date": m.Date().String(),
		}, now)
		return appendAudit(ctx, tx, entry)
	})
	if err != nil {
		return nil, err
	}
	return uc.menuQueries.GetForDate(ctx, m.Date(), user.RoleGestionnaire)
}

// Update edits side dishes, notes and options. A request that only toggles
// publication goes through SetPublished. An option still referenced by a
// reservation can be renamed but neither removed nor moved to another course.
func (uc *menuUseCaseImpl) Update(ctx context.Context, actor reservation.Actor, id uuid.UUID, req reqdto.UpdateMenuRequest) (*queries.MenuView, error) {
	if !actor.IsStaff() {
		return nil, ErrMenuForbidden
	}
	edit, err := req.ToEdit()
	if err != nil {
		return nil, err
	}
	if edit.OnlyPublication() {
		return uc.SetPublished(ctx, actor, id, *edit.IsPublished)
	}

	var m *menu.Menu
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		m, err = loadMenu(ctx, tx, id)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		res, err := m.ApplyEdit(edit, now)
		if err != nil {
			return err
		}
		removed := make([]uuid.UUID, len(res.Removed))
		for i, o := range res.Removed {
			if err := ensureUnreferenced(ctx, tx, o.ID(), o.Name()); err != nil {
				return err
			}
			removed[i] = o.ID()
		}
		for _, optID := range res.Recoursed {
			o, _ := m.Option(optID)
			if err := ensureUnreferenced(ctx, tx, optID, o.Name()); err != nil {
				return err
			}
		}

		if err := tx.Menus().Update(ctx, tx.DB(), m, removed); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.WithDetailf(ErrMenuInUse, "menu of %s", m.Date())
			}
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.WithDetailf(ErrMenuNotFound, "menu %s", id)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		details := audit.Details{
			"date":    m.Date().String(),
			"added":   len(res.Added),
			"updated": len(res.Updated),
			"removed": removed,
		}
		if edit.SideDishes.Set {
			details["sideDishes"] = m.SideDishes()
		}
		if edit.Notes.Set {
			details["notes"] = m.Notes()
		}
		if edit.IsPublished != nil {
			details["isPublished"] = m.IsPublished()
		}
		entry := audit.NewEntry(actor.UserID, nil, audit.ActionMenuModified, audit.EntityMenu, m.ID().String(), details, now)
		return appendAudit(ctx, tx, entry)
	})
	if err != nil {
		return nil, err
	}
	return uc.menuQueries.GetForDate(ctx, m.Date(), user.RoleGestionnaire)
}

func ensureUnreferenced(ctx context.Context, tx shared.Tx, optionID uuid.UUID, name string) error {
	count, err := tx.Reads().CountReservationsForOption(ctx, optionID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if count > 0 {
		return errs.WithDetailf(ErrMenuInUse, "option %q is used by %d reservation(s)", name, count)
	}
	return nil
}

// Delete refuses to remove a menu whose options are still referenced by a
// reservation.
func (uc *menuUseCaseImpl) Delete(ctx context.Context, actor reservation.Actor, id uuid.UUID) error {
	if !actor.IsStaff() {
		return ErrMenuForbidden
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, err := loadMenu(ctx, tx, id)
		if err != nil {
			return err
		}
		count, err := tx.Reads().CountReservationsForMenu(ctx, m.ID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if count > 0 {
			return errs.WithDetailf(ErrMenuInUse, "%d reservation(s) on %s", count, m.Date())
		}

		if err := tx.Menus().Delete(ctx, tx.DB(), m.ID()); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.WithDetailf(ErrMenuInUse, "menu of %s", m.Date())
			}
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrMenuNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		entry := audit.NewEntry(actor.UserID, nil, audit.ActionMenuDeleted, audit.EntityMenu, m.ID().String(), audit.Details{
			"date": m.Date().String(),
		}, uc.clock.Now())
		return appendAudit(ctx, tx, entry)
	})
}

func loadMenu(ctx context.Context, tx shared.Tx, id uuid.UUID) (*menu.Menu, error) {
	m, err := tx.Reads().MenuByIDForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithDetailf(ErrMenuNotFound, "menu %s", id)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return m, nil
}
