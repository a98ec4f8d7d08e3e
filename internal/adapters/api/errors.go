package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MuzzammilShah/pa-agent-cli/internal/domain"
)

// Error is a non-2xx backend response. Detail carries the structured
// `detail` field verbatim when the backend sent one.
type Error struct {
	StatusCode int
	Detail     string
}

func newError(statusCode int, body []byte) *Error {
	apiErr := &Error{StatusCode: statusCode}

	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Detail != "" {
			apiErr.Detail = payload.Detail
		} else if payload.Message != "" {
			apiErr.Detail = payload.Message
		}
	}

	return apiErr
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// Unwrap maps the auth-relevant statuses onto domain sentinels so callers
// can branch with errors.Is without inspecting status codes.
func (e *Error) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusBadRequest:
		if strings.Contains(e.Detail, "already been used") {
			return domain.ErrCodeAlreadyUsed
		}
		return nil
	default:
		return nil
	}
}
