package queries

import (
	"context"

	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/domain/user"
	"canteen-reservation/internal/infra"
)

//go:generate mockgen -source=menu.go -destination=../../../tests/mock/queries/menu_mock.go -package=queriesmock

type MenuReadStore interface {
	FindByDate(ctx context.Context, date calendar.Date) (*MenuView, error)
	ListInRange(ctx context.Context, from, to calendar.Date, publishedOnly bool) ([]*MenuView, error)
}

type MenuQueries interface {
	// GetForDate returns nil when there is nothing the caller may book from:
	// no menu, or an unpublished one seen by a non-staff caller.
	GetForDate(ctx context.Context, date calendar.Date, role user.Role) (*MenuView, error)
	List(ctx context.Context, from, to calendar.Date, role user.Role, publishedOnly bool) ([]*MenuView, error)
}

type menuQueriesImpl struct {
	store MenuReadStore
}

func NewMenuQueries(store MenuReadStore) MenuQueries {
	return &menuQueriesImpl{store: store}
}

func (q *menuQueriesImpl) GetForDate(ctx context.Context, date calendar.Date, role user.Role) (*MenuView, error) {
	m, err := q.store.FindByDate(ctx, date)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !m.IsPublished && !role.IsStaff() {
		return nil, nil
	}
	return m, nil
}

func (q *menuQueriesImpl) List(ctx context.Context, from, to calendar.Date, role user.Role, publishedOnly bool) ([]*MenuView, error) {
	if from.After(to) {
		return nil, ErrInvalidDateRange
	}
	if !role.IsStaff() {
		publishedOnly = true
	}
	return q.store.ListInRange(ctx, from, to, publishedOnly)
}
