// Package storeerr translates storage-level failures into typed domain
// faults. The mapping is pure: (operation, constraint identifier) -> kind,
// independent of how a particular engine spells its errors.
package storeerr

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/handylink/handylink-backend/internal/domain/fault"
)

// constraintKinds maps named unique indexes to domain conflict kinds.
var constraintKinds = map[string]fault.ConflictKind{
	"ux_user_email":                fault.KindEmailTaken,
	"ux_phone_number_number":       fault.KindPhoneAlreadyRegistered,
	"ux_skill_name":                fault.KindDuplicateSkill,
	"ux_handyman_skill_user_skill": fault.KindDuplicateHandymanSkill,
	"ux_work_image_work_url":       fault.KindDuplicateWorkImage,
	"ux_user_review_pair":          fault.KindDuplicateUserReview,
	"ux_work_review_pair":          fault.KindDuplicateWorkReview,
}

// tableKinds resolves conflicts by table for engines that report unique
// violations without a constraint name (sqlite message format is
// "UNIQUE constraint failed: table.column, ..."). Every table in this schema
// carries exactly one unique invariant besides its primary key.
var tableKinds = map[string]fault.ConflictKind{
	"user":           fault.KindEmailTaken,
	"phone_number":   fault.KindPhoneAlreadyRegistered,
	"skill":          fault.KindDuplicateSkill,
	"handyman_skill": fault.KindDuplicateHandymanSkill,
	"work_image":     fault.KindDuplicateWorkImage,
	"user_review":    fault.KindDuplicateUserReview,
	"work_review":    fault.KindDuplicateWorkReview,
}

var conflictMessages = map[fault.ConflictKind]string{
	fault.KindEmailTaken:             "user with this email already exists",
	fault.KindPhoneAlreadyRegistered: "this phone number is already registered",
	fault.KindDuplicateSkill:         "skill already exists",
	fault.KindDuplicateHandymanSkill: "you already have this skill",
	fault.KindDuplicateWorkImage:     "this image already exists for this work",
	fault.KindDuplicateUserReview:    "you have already reviewed this user",
	fault.KindDuplicateWorkReview:    "you have already reviewed this work",
}

// Map classifies a storage error for op. Typed faults pass through
// unchanged; uniqueness violations become terminal conflicts; everything
// unrecognized is an internal fault.
func Map(op string, err error) error {
	if err == nil {
		return nil
	}
	var fe *fault.Error
	if errors.As(err, &fe) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fault.Wrap(fault.CodeNotFound, op, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fault.Wrap(fault.CodeRetryable, op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch strings.TrimSpace(pgErr.Code) {
		case "23505": // unique_violation
			return conflictFor(op, constraintKinds[strings.TrimSpace(pgErr.ConstraintName)], err)
		case "23503": // foreign_key_violation
			// fixed message, the driver text names tables and constraints
			e := fault.New(fault.CodeValidation, op, "referenced resource does not exist")
			e.Cause = err
			return e
		case "40001", "40P01", "55P03": // serialization/deadlock/lock_not_available
			return fault.Wrap(fault.CodeRetryable, op, err)
		}
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case strings.Contains(msg, "unique constraint failed:"):
		return conflictFor(op, sqliteKind(msg), err)
	case strings.Contains(msg, "duplicate key"), strings.Contains(msg, "already exists"):
		return conflictFor(op, "", err)
	case strings.Contains(msg, "deadlock"),
		strings.Contains(msg, "serialization"),
		strings.Contains(msg, "timeout"),
		strings.Contains(msg, "temporar"):
		return fault.Wrap(fault.CodeRetryable, op, err)
	default:
		return fault.Wrap(fault.CodeInternal, op, err)
	}
}

func conflictFor(op string, kind fault.ConflictKind, cause error) error {
	message := conflictMessages[kind]
	if message == "" {
		message = "resource already exists"
	}
	e := fault.Conflict(kind, op, message)
	e.Cause = cause
	return e
}

// sqliteKind extracts the table from a sqlite unique-violation message.
func sqliteKind(msg string) fault.ConflictKind {
	const prefix = "unique constraint failed:"
	idx := strings.Index(msg, prefix)
	if idx < 0 {
		return ""
	}
	rest := strings.TrimSpace(msg[idx+len(prefix):])
	table, column, ok := strings.Cut(rest, ".")
	if !ok {
		return ""
	}
	if strings.HasPrefix(strings.TrimSpace(column), "id") {
		// primary key collision, not a domain invariant
		return ""
	}
	return tableKinds[strings.TrimSpace(table)]
}
