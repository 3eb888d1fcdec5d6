// Package handler implements the REST endpoints on top of the service layer.
package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mmynk/consorcio/internal/auth"
	"github.com/mmynk/consorcio/internal/ledger"
)

// Error codes carried in the "code" field of error bodies.
const (
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeValidation   = "validation"
	CodeUnauthorized = "unauthorized"
	CodeForbidden    = "forbidden"
	CodeInternal     = "internal"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Code: code, Message: message})
}

// respondError maps service errors to HTTP status codes.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch ledger.KindOf(err) {
	case ledger.KindNotFound:
		abort(c, http.StatusNotFound, CodeNotFound, err.Error())
		return
	case ledger.KindConflict:
		abort(c, http.StatusConflict, CodeConflict, err.Error())
		return
	case ledger.KindValidation:
		abort(c, http.StatusBadRequest, CodeValidation, err.Error())
		return
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		abort(c, http.StatusUnauthorized, CodeUnauthorized, auth.ErrInvalidCredentials.Error())
	case errors.Is(err, auth.ErrAccountDisabled):
		abort(c, http.StatusForbidden, CodeForbidden, auth.ErrAccountDisabled.Error())
	case errors.Is(err, auth.ErrEmailExists):
		abort(c, http.StatusConflict, CodeConflict, auth.ErrEmailExists.Error())
	case errors.Is(err, auth.ErrWeakPassword):
		abort(c, http.StatusBadRequest, CodeValidation, auth.ErrWeakPassword.Error())
	default:
		slog.Error("Internal error", "path", c.Request.URL.Path, "error", err)
		abort(c, http.StatusInternalServerError, CodeInternal, "internal server error")
	}
}

// respondBindError reports a request body that failed to decode or validate.
func respondBindError(c *gin.Context, err error) {
	_ = c.Error(err)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fieldMessage(fe))
		}
		abort(c, http.StatusBadRequest, CodeValidation, strings.Join(msgs, "; "))
		return
	}
	abort(c, http.StatusBadRequest, CodeValidation, "invalid request body: "+err.Error())
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must have at least %s element(s)", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	default:
		return fmt.Sprintf("%s failed the %s check", fe.Field(), fe.Tag())
	}
}
