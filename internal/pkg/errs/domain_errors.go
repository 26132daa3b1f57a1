package errs

import "errors"

// Error kinds shared by every usecase. Concrete errors are marked with one of
// these so the HTTP layer can classify them without knowing the aggregate.
var (
	ErrValidation           = errors.New("validation error")
	ErrClosedDay            = errors.New("closed day")
	ErrDeadlinePassed       = errors.New("deadline passed")
	ErrDuplicateReservation = errors.New("duplicate reservation")
	ErrMenuUnavailable      = errors.New("menu unavailable")
	ErrInvalidOption        = errors.New("invalid option")
	ErrForbidden            = errors.New("forbidden")
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("state conflict")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
