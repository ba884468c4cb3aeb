package provider

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ServiceError is any failure to obtain a usable response from the model
// service. Callers convert it into user-visible placeholders; it is never
// allowed to escape the tutor, analysis, or exam layers.
type ServiceError struct {
	Provider string
	Err      error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s service error: %v", e.Provider, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// IsServiceError reports whether err wraps a ServiceError.
func IsServiceError(err error) bool {
	var se *ServiceError
	return errors.As(err, &se)
}

// parseAPIError extracts a human-readable message from a Gemini error body.
func parseAPIError(statusCode int, body []byte) string {
	var errResp struct {
		Error struct {
			Message string `json:"message"`
			Status  string `json:"status"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &errResp) == nil && errResp.Error.Message != "" {
		return errResp.Error.Message
	}

	switch statusCode {
	case 400:
		return "bad request — an uploaded file may exceed the API payload limit"
	case 401, 403:
		return "authentication failed — check your API key"
	case 404:
		return "model not found"
	case 429:
		return "rate limited — too many requests, please wait"
	case 500:
		return "internal server error on the provider side"
	case 502, 503:
		return "service temporarily unavailable"
	}

	s := string(body)
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return fmt.Sprintf("HTTP %d: %s", statusCode, s)
}

// friendlyTransportError converts common network errors to readable messages.
func friendlyTransportError(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "connection refused (is the network up?)"
	case strings.Contains(msg, "no such host"):
		return "host not found (check your connection)"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "connection timed out"
	case strings.Contains(msg, "EOF"):
		return "connection closed unexpectedly"
	case strings.Contains(msg, "reset by peer"):
		return "connection reset by server"
	}
	return msg
}
