package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/handylink/handylink-backend/internal/domain/fault"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Kind    string `json:"kind,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// statusFor is the single fault-code to HTTP-status mapping.
func statusFor(code fault.Code) int {
	switch code {
	case fault.CodeValidation, fault.CodeInvalidTarget:
		return http.StatusBadRequest
	case fault.CodeUnauthenticated:
		return http.StatusUnauthorized
	case fault.CodeNotFound:
		return http.StatusNotFound
	case fault.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondError renders a service error. Internal causes are never echoed
// back to the client.
func RespondError(c *gin.Context, err error) {
	var fe *fault.Error
	if !errors.As(err, &fe) {
		c.JSON(http.StatusInternalServerError, ErrorEnvelope{
			Error: APIError{Message: "internal error", Code: string(fault.CodeInternal)},
		})
		return
	}

	msg := fe.Message
	if fe.Code == fault.CodeInternal || fe.Code == fault.CodeRetryable || msg == "" {
		msg = "internal error"
	}
	c.JSON(statusFor(fe.Code), ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    string(fe.Code),
			Kind:    string(fe.Kind),
		},
	})
}

func RespondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorEnvelope{
		Error: APIError{Message: message, Code: string(fault.CodeValidation)},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
