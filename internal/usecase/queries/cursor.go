package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"canteen-reservation/internal/domain/calendar"
	"canteen-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxListLimit     = 200
	DefaultListLimit = 20
	CursorVersionV1  = "v1"
)

var ErrInvalidCursor = errs.Mark(errs.New("invalid cursor"), errs.ErrValidation)

type Cursor struct {
	After string `json:"after,omitempty"`
}

func (c *Cursor) IsZero() bool {
	return c == nil || c.After == ""
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// Uses microsecond precision to align with PostgreSQL timestamp precision
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	payload := CursorVersionV1 + ":" + strconv.FormatInt(t.UnixMicro(), 10) + "-" + id.String()
	return base64.URLEncoding.EncodeToString([]byte(payload))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	payload, err := decodePayload(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}
	return parseMicrosAndID(payload)
}

// ReservationKey is the keyset position of a reservation in (date, created_at, id) order.
type ReservationKey struct {
	Date      calendar.Date
	CreatedAt time.Time
	ID        uuid.UUID
}

func EncodeReservationCursor(k ReservationKey) string {
	payload := CursorVersionV1 + ":" + k.Date.String() + "/" + strconv.FormatInt(k.CreatedAt.UnixMicro(), 10) + "-" + k.ID.String()
	return base64.URLEncoding.EncodeToString([]byte(payload))
}

func DecodeReservationCursor(cursor string) (ReservationKey, error) {
	payload, err := decodePayload(cursor)
	if err != nil {
		return ReservationKey{}, err
	}
	datePart, rest, ok := strings.Cut(payload, "/")
	if !ok {
		return ReservationKey{}, errs.WithDetail(ErrInvalidCursor, "expected '<date>/<micros>-<uuid>'")
	}
	d, err := calendar.ParseDate(datePart)
	if err != nil {
		return ReservationKey{}, errs.WithDetail(ErrInvalidCursor, err.Error())
	}
	t, id, err := parseMicrosAndID(rest)
	if err != nil {
		return ReservationKey{}, err
	}
	return ReservationKey{Date: d, CreatedAt: t, ID: id}, nil
}

func decodePayload(cursor string) (string, error) {
	if cursor == "" {
		return "", errs.WithDetail(ErrInvalidCursor, "cursor cannot be empty")
	}
	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return "", errs.WithDetail(ErrInvalidCursor, "cursor is not base64url")
	}
	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return "", errs.WithDetail(ErrInvalidCursor, "unknown cursor version")
	}
	return payload, nil
}

func parseMicrosAndID(s string) (time.Time, uuid.UUID, error) {
	micros, rawID, ok := strings.Cut(s, "-")
	if !ok {
		return time.Time{}, uuid.Nil, errs.WithDetail(ErrInvalidCursor, "expected '<micros>-<uuid>'")
	}
	ts, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.WithDetailf(ErrInvalidCursor, "invalid timestamp: %v", err)
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.WithDetailf(ErrInvalidCursor, "invalid UUID: %v", err)
	}
	return time.UnixMicro(ts).UTC(), id, nil
}
