package commands

import (
	"context"
	"log/slog"

	"canteen-reservation/internal/domain/user"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/pkg/password"
	"canteen-reservation/internal/usecase/queries"
	"canteen-reservation/internal/usecase/shared"
)

// AdminSeeder provisions the first administrator account of a fresh install.
type AdminSeeder interface {
	// EnsureAdmin creates an active ADMIN with the given credentials unless the
	// e-mail is already taken. It reports whether an account was created.
	EnsureAdmin(ctx context.Context, email, plainPassword string) (bool, error)
}

type adminSeederImpl struct {
	uow       shared.UnitOfWork
	readStore queries.UserReadStore
}

func NewAdminSeeder(uow shared.UnitOfWork, readStore queries.UserReadStore) AdminSeeder {
	return &adminSeederImpl{uow: uow, readStore: readStore}
}

func (s *adminSeederImpl) EnsureAdmin(ctx context.Context, email, plainPassword string) (bool, error) {
	addr, err := user.NewEmail(email)
	if err != nil {
		return false, err
	}
	pw, err := user.NewPassword(plainPassword)
	if err != nil {
		return false, err
	}

	existing, _, err := s.readStore.FindByEmail(ctx, addr.Value())
	switch {
	case err == nil && existing != nil:
		return false, nil
	case err != nil && !infra.IsKind(err, infra.KindNotFound):
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return false, errs.Wrap(err, "failed to hash admin password")
	}
	admin, err := user.NewUser(addr, hash, user.RoleAdmin, "Admin", "Cantine")
	if err != nil {
		return false, err
	}

	created := false
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Users().Create(ctx, tx.DB(), admin)
		if err != nil {
			// another instance seeded it first
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return nil
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		created = true
		slog.InfoContext(ctx, "administrator account created", "user_id", id, "email", addr.Value())
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}
