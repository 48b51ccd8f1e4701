package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/handylink/handylink-backend/internal/domain/fault"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		code fault.Code
		want int
	}{
		{fault.CodeValidation, http.StatusBadRequest},
		{fault.CodeInvalidTarget, http.StatusBadRequest},
		{fault.CodeUnauthenticated, http.StatusUnauthorized},
		{fault.CodeNotFound, http.StatusNotFound},
		{fault.CodeConflict, http.StatusConflict},
		{fault.CodeRetryable, http.StatusInternalServerError},
		{fault.CodeInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := statusFor(tc.code); got != tc.want {
			t.Fatalf("statusFor(%s): got %d, want %d", tc.code, got, tc.want)
		}
	}
}

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, ErrorEnvelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	RespondError(c, err)

	var env ErrorEnvelope
	if uErr := json.Unmarshal(rec.Body.Bytes(), &env); uErr != nil {
		t.Fatalf("unmarshal response: %v", uErr)
	}
	return rec, env
}

func TestRespondErrorConflictCarriesKind(t *testing.T) {
	rec, env := renderError(t, fault.Conflict(fault.KindDuplicateWorkImage, "work.image.add", "this image already exists for this work"))
	if rec.Code != http.StatusConflict {
		t.Fatalf("status %d, want 409", rec.Code)
	}
	if env.Error.Kind != string(fault.KindDuplicateWorkImage) {
		t.Fatalf("kind %q", env.Error.Kind)
	}
	if env.Error.Message != "this image already exists for this work" {
		t.Fatalf("message %q", env.Error.Message)
	}
}

func TestRespondErrorHidesInternals(t *testing.T) {
	rec, env := renderError(t, fault.Wrap(fault.CodeInternal, "work.create", errors.New("pq: connection refused to 10.0.0.3")))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", rec.Code)
	}
	if env.Error.Message != "internal error" {
		t.Fatalf("internal detail leaked: %q", env.Error.Message)
	}

	rec, env = renderError(t, errors.New("raw error"))
	if rec.Code != http.StatusInternalServerError || env.Error.Message != "internal error" {
		t.Fatalf("unwrapped error leaked: %d %q", rec.Code, env.Error.Message)
	}
}
