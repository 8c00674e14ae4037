// Package ecode defines standardized business error codes for API responses.
//
// Codes follow a negative numbering scheme mirroring HTTP semantics where one
// exists (-400 invalid request, -404 not found, -500 server error) with
// application-specific codes in the -1 to -399 range. Services may register
// their own codes in the -1000+ range via Register.
package ecode

import (
	"net/http"
	"sync"
)

// Common error codes
const (
	OK                 = 0
	AppErr             = -1   // Application error
	SignCheckErr       = -3   // Signature verification failed
	NoLogin            = -101 // Not logged in
	UserDisabled       = -102 // Account suspended
	RequestErr         = -400 // Invalid request
	ParamErr           = -401 // Invalid parameters
	AccessDenied       = -403 // Access denied
	NothingFound       = -404 // Resource not found
	MethodNotAllowed   = -405 // Method not allowed
	Conflict           = -409 // Resource conflict
	ServerErr          = -500 // Internal server error
	ServiceUnavailable = -503 // Service unavailable
	Deadline           = -504 // Deadline exceeded
	LimitExceed        = -509 // Rate limit exceeded
)

var (
	messagesMu sync.RWMutex
	messages   = map[int]string{
		OK:                 "success",
		AppErr:             "application error",
		SignCheckErr:       "signature verification failed",
		NoLogin:            "account not logged in",
		UserDisabled:       "account suspended",
		RequestErr:         "invalid request",
		ParamErr:           "invalid parameters",
		AccessDenied:       "access denied",
		NothingFound:       "resource not found",
		MethodNotAllowed:   "method not allowed",
		Conflict:           "resource conflict",
		ServerErr:          "internal server error",
		ServiceUnavailable: "service unavailable",
		Deadline:           "deadline exceeded",
		LimitExceed:        "rate limit exceeded",
	}
)

// Register registers a custom error code with its message.
// Registering an existing code overwrites its message.
func Register(code int, message string) {
	messagesMu.Lock()
	defer messagesMu.Unlock()
	messages[code] = message
}

// Text returns the human-readable message for the given code.
func Text(code int) string {
	messagesMu.RLock()
	defer messagesMu.RUnlock()
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[ServerErr]
}

// ToHTTPStatus maps a business error code to an HTTP status code.
func ToHTTPStatus(code int) int {
	switch code {
	case OK:
		return http.StatusOK
	case NoLogin, UserDisabled:
		return http.StatusUnauthorized
	case RequestErr, ParamErr, SignCheckErr:
		return http.StatusBadRequest
	case AccessDenied:
		return http.StatusForbidden
	case NothingFound:
		return http.StatusNotFound
	case MethodNotAllowed:
		return http.StatusMethodNotAllowed
	case Conflict:
		return http.StatusConflict
	case ServiceUnavailable:
		return http.StatusServiceUnavailable
	case Deadline:
		return http.StatusGatewayTimeout
	case LimitExceed:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
