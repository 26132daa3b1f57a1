package converter

import (
	"encoding/json"

	"canteen-reservation/internal/domain/audit"
	sqlc "canteen-reservation/internal/infra/sqlc/generated"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/pkg/pgconv"
)

func AuditEntryToCreateParams(e *audit.Entry) (sqlc.CreateAuditLogParams, error) {
	var details []byte
	if d := e.Details(); len(d) > 0 {
		b, err := json.Marshal(d)
		if err != nil {
			return sqlc.CreateAuditLogParams{}, errs.Wrap(err, "failed to encode audit details")
		}
		details = b
	}
	return sqlc.CreateAuditLogParams{
		ID:            e.ID(),
		PerformedByID: e.PerformedByID(),
		UserID:        pgconv.UUIDPtrToPgtype(e.UserID()),
		Action:        e.Action().String(),
		EntityType:    e.EntityType().String(),
		EntityID:      e.EntityID(),
		Details:       details,
		CreatedAt:     pgconv.TimeToPgtype(e.CreatedAt()),
	}, nil
}

// AuditEntryFromRow tolerates undecodable details: the entry is still returned
// with an empty detail map.
func AuditEntryFromRow(row sqlc.AuditLogs) *audit.Entry {
	var details audit.Details
	if len(row.Details) > 0 {
		_ = json.Unmarshal(row.Details, &details)
	}
	return audit.Reconstruct(
		row.ID,
		row.PerformedByID,
		pgconv.UUIDPtrFromPgtype(row.UserID),
		audit.Action(row.Action),
		audit.EntityType(row.EntityType),
		row.EntityID,
		details,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
