package fault

import (
	"errors"
	"fmt"
	"strings"
)

// Code standardizes failure semantics across services.
type Code string

const (
	CodeValidation Code = "validation"
	// CodeUnauthenticated covers bad credentials and bad/expired tokens.
	// The message is deliberately generic to avoid user enumeration.
	CodeUnauthenticated Code = "unauthenticated"
	// CodeNotFound collapses "missing resource" and "not the owner" into a
	// single outward signal so resource existence is not revealed.
	CodeNotFound Code = "not_found"
	// CodeInvalidTarget rejects self-referential actions (self review,
	// reviewing your own work) whose targets are publicly queryable.
	CodeInvalidTarget Code = "invalid_target"
	// CodeConflict is a terminal uniqueness violation; never retried.
	CodeConflict  Code = "conflict"
	CodeRetryable Code = "retryable"
	CodeInternal  Code = "internal"
)

// ConflictKind names which uniqueness invariant a conflict violated.
type ConflictKind string

const (
	KindEmailTaken             ConflictKind = "email_taken"
	KindPhoneAlreadyRegistered ConflictKind = "phone_already_registered"
	KindDuplicateSkill         ConflictKind = "duplicate_skill"
	KindDuplicateHandymanSkill ConflictKind = "duplicate_handyman_skill"
	KindDuplicateWorkImage     ConflictKind = "duplicate_work_image"
	KindDuplicateUserReview    ConflictKind = "duplicate_user_review"
	KindDuplicateWorkReview    ConflictKind = "duplicate_work_review"
)

// Error is the canonical service failure wrapper.
type Error struct {
	Code    Code
	Kind    ConflictKind
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds an error with explicit code + operation.
func New(code Code, op, message string) *Error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
	}
}

// Conflict builds a conflict error carrying the violated invariant kind.
func Conflict(kind ConflictKind, op, message string) *Error {
	e := New(CodeConflict, op, message)
	e.Kind = kind
	return e
}

// Wrap annotates an existing error with a code. Returns nil for nil err.
func Wrap(code Code, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: err.Error(),
		Cause:   err,
	}
}

// IsCode checks whether err (or a wrapped err) carries the given code.
func IsCode(err error, code Code) bool {
	var fe *Error
	if !errors.As(err, &fe) {
		return false
	}
	return fe.Code == code
}

// CodeOf extracts the code when available, CodeInternal otherwise.
func CodeOf(err error) Code {
	var fe *Error
	if !errors.As(err, &fe) {
		return CodeInternal
	}
	return fe.Code
}

// KindOf extracts the conflict kind when available.
func KindOf(err error) ConflictKind {
	var fe *Error
	if !errors.As(err, &fe) {
		return ""
	}
	return fe.Kind
}
