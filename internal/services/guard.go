package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/handylink/handylink-backend/internal/domain/fault"
	"github.com/handylink/handylink-backend/internal/requestdata"
)

// requireActor extracts the authenticated identity from the request
// context. The auth middleware attaches it; a missing identity here means
// the route was wired without RequireAuth.
func requireActor(ctx context.Context, op string) (uuid.UUID, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, fault.New(fault.CodeUnauthenticated, op, "authentication required")
	}
	return rd.UserID, nil
}

// requireOwner is the single authorization check path for mutating a
// resource by id. A missing resource and an ownership mismatch collapse
// into one outward signal so callers cannot probe for existence.
func requireOwner(op string, found bool, actorID, ownerID uuid.UUID) error {
	if !found || actorID != ownerID {
		return fault.New(fault.CodeNotFound, op, "not found or unauthorized")
	}
	return nil
}

// affectedOrNotFound converts an owner-scoped write's row count into the
// same collapsed outcome as requireOwner.
func affectedOrNotFound(op string, rows int64, message string) error {
	if rows == 0 {
		return fault.New(fault.CodeNotFound, op, message)
	}
	return nil
}

// requireDifferentUser rejects self-directed reviews. The target's
// existence is publicly queryable, so this is a distinct outcome.
func requireDifferentUser(op string, actorID, targetID uuid.UUID) error {
	if actorID == targetID {
		return fault.New(fault.CodeInvalidTarget, op, "you cannot review yourself")
	}
	return nil
}

// requireNotWorkOwner rejects reviewing one's own work.
func requireNotWorkOwner(op string, actorID, workOwnerID uuid.UUID) error {
	if actorID == workOwnerID {
		return fault.New(fault.CodeInvalidTarget, op, "you cannot review your own work")
	}
	return nil
}
