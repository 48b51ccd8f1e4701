package storeerr

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/handylink/handylink-backend/internal/domain/fault"
)

func TestMapNil(t *testing.T) {
	if err := Map("op", nil); err != nil {
		t.Fatalf("Map(nil): got %v", err)
	}
}

func TestMapPassesThroughFaults(t *testing.T) {
	orig := fault.New(fault.CodeInvalidTarget, "review.user.create", "you cannot review yourself")
	got := Map("review.user.create", orig)
	if got != orig {
		t.Fatalf("Map: expected fault passthrough, got %v", got)
	}
}

func TestMapUniqueViolationByConstraint(t *testing.T) {
	cases := []struct {
		constraint string
		kind       fault.ConflictKind
	}{
		{"ux_user_email", fault.KindEmailTaken},
		{"ux_phone_number_number", fault.KindPhoneAlreadyRegistered},
		{"ux_skill_name", fault.KindDuplicateSkill},
		{"ux_handyman_skill_user_skill", fault.KindDuplicateHandymanSkill},
		{"ux_work_image_work_url", fault.KindDuplicateWorkImage},
		{"ux_user_review_pair", fault.KindDuplicateUserReview},
		{"ux_work_review_pair", fault.KindDuplicateWorkReview},
	}
	for _, tc := range cases {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: tc.constraint}
		got := Map("write", pgErr)
		if fault.CodeOf(got) != fault.CodeConflict {
			t.Fatalf("%s: code %q, want conflict", tc.constraint, fault.CodeOf(got))
		}
		if fault.KindOf(got) != tc.kind {
			t.Fatalf("%s: kind %q, want %q", tc.constraint, fault.KindOf(got), tc.kind)
		}
	}
}

func TestMapUnknownConstraintStillConflict(t *testing.T) {
	got := Map("write", &pgconn.PgError{Code: "23505", ConstraintName: "ux_mystery"})
	if fault.CodeOf(got) != fault.CodeConflict {
		t.Fatalf("code %q, want conflict", fault.CodeOf(got))
	}
	if fault.KindOf(got) != "" {
		t.Fatalf("kind %q, want empty", fault.KindOf(got))
	}
}

func TestMapForeignKeyViolation(t *testing.T) {
	got := Map("write", &pgconn.PgError{
		Code:           "23503",
		Message:        `insert or update on table "work_image" violates foreign key constraint "fk_work_image_work"`,
		ConstraintName: "fk_work_image_work",
	})
	if fault.CodeOf(got) != fault.CodeValidation {
		t.Fatalf("code %q, want validation", fault.CodeOf(got))
	}

	// the driver text names tables and constraints; the outward message
	// must not carry it
	var fe *fault.Error
	if !errors.As(got, &fe) {
		t.Fatalf("expected fault error, got %T", got)
	}
	if fe.Message != "referenced resource does not exist" {
		t.Fatalf("message %q leaks driver detail", fe.Message)
	}
	if fe.Cause == nil {
		t.Fatalf("cause dropped")
	}
}

func TestMapRetryablePgCodes(t *testing.T) {
	for _, code := range []string{"40001", "40P01", "55P03"} {
		got := Map("write", &pgconn.PgError{Code: code})
		if fault.CodeOf(got) != fault.CodeRetryable {
			t.Fatalf("%s: code %q, want retryable", code, fault.CodeOf(got))
		}
	}
}

func TestMapRecordNotFound(t *testing.T) {
	got := Map("read", gorm.ErrRecordNotFound)
	if fault.CodeOf(got) != fault.CodeNotFound {
		t.Fatalf("code %q, want not_found", fault.CodeOf(got))
	}
}

func TestMapContextCancellation(t *testing.T) {
	for _, err := range []error{context.Canceled, context.DeadlineExceeded} {
		got := Map("read", err)
		if fault.CodeOf(got) != fault.CodeRetryable {
			t.Fatalf("%v: code %q, want retryable", err, fault.CodeOf(got))
		}
	}
}

func TestMapSqliteUniqueMessage(t *testing.T) {
	err := errors.New("UNIQUE constraint failed: work_image.work_id, work_image.work_img_url")
	got := Map("work.image.add", err)
	if fault.CodeOf(got) != fault.CodeConflict {
		t.Fatalf("code %q, want conflict", fault.CodeOf(got))
	}
	if fault.KindOf(got) != fault.KindDuplicateWorkImage {
		t.Fatalf("kind %q, want %q", fault.KindOf(got), fault.KindDuplicateWorkImage)
	}

	err = errors.New("UNIQUE constraint failed: phone_number.phone_number")
	got = Map("user.phone.add", err)
	if fault.KindOf(got) != fault.KindPhoneAlreadyRegistered {
		t.Fatalf("kind %q, want %q", fault.KindOf(got), fault.KindPhoneAlreadyRegistered)
	}
}

func TestMapUnrecognizedIsInternal(t *testing.T) {
	got := Map("read", errors.New("connection reset by peer"))
	if fault.CodeOf(got) != fault.CodeInternal {
		t.Fatalf("code %q, want internal", fault.CodeOf(got))
	}
}
