package verge

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind is the stable failure taxonomy for classified API errors.
type ErrorKind string

const (
	ErrorKindUnauthorized ErrorKind = "unauthorized"
	ErrorKindNotFound     ErrorKind = "not_found"
	ErrorKindConflict     ErrorKind = "conflict"
	ErrorKindBadRequest   ErrorKind = "bad_request"
	ErrorKindServerFault  ErrorKind = "server_fault"
	ErrorKindUnknown      ErrorKind = "unknown"
)

// APIError represents a classified non-2xx response from the VergeOS API.
// It is created only by Classify and is never retried internally.
type APIError struct {
	StatusCode int       `json:"status_code" yaml:"status_code"`
	Kind       ErrorKind `json:"kind"        yaml:"kind"`
	Message    string    `json:"message"     yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// ConfigError reports an invalid or missing connection before any HTTP
// call is attempted.
type ConfigError struct {
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "configuration error: " + e.Reason
}

// NotFoundError is a resolver-local condition: a name lookup returned zero
// matching records. It is not necessarily an HTTP 404.
type NotFoundError struct {
	Family string
	Name   string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s found matching %q", e.Family, e.Name)
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired   = errors.New("config is required")
	ErrEndpointRequired = errors.New("API endpoint is required")
	ErrNoConnection     = errors.New("no connection supplied")
	ErrEmptyFamily      = errors.New("reference family must not be empty")
	ErrNonPositiveKey   = errors.New("reference key must be positive")
	ErrMalformedRef     = errors.New("reference must have the form family/key")
	ErrEmptyInput       = errors.New("reference input is empty")
)

// IsNotFound checks whether err is a classified 404 or a resolver miss.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind == ErrorKindNotFound
	}

	nfErr := &NotFoundError{}

	return errors.As(err, &nfErr)
}

// IsUnauthorized checks whether err is a classified 401/403.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind == ErrorKindUnauthorized
	}

	return false
}

// IsConflict checks whether err is a classified 409.
func IsConflict(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind == ErrorKindConflict
	}

	return false
}

// IsConfigError checks whether err is a configuration failure that never
// reached the network.
func IsConfigError(err error) bool {
	cfgErr := &ConfigError{}

	return errors.As(err, &cfgErr)
}

// KindForStatus maps an HTTP status code to the error taxonomy.
func KindForStatus(statusCode int) ErrorKind {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrorKindUnauthorized
	case http.StatusNotFound:
		return ErrorKindNotFound
	case http.StatusConflict:
		return ErrorKindConflict
	case http.StatusBadRequest:
		return ErrorKindBadRequest
	}

	if statusCode >= 300 {
		return ErrorKindServerFault
	}

	return ErrorKindUnknown
}

// ExtractMessage pulls a human-readable message from an error body. The
// priority order matches the upstream API's several error shapes: a string
// "err" field, then a string "error" field, then "message", then "message"
// when "err" is boolean true, then the raw body text. A body that does not
// parse as JSON is returned unmodified.
func ExtractMessage(body []byte) string {
	raw := string(body)

	var parsed map[string]interface{}

	err := json.Unmarshal(body, &parsed)
	if err != nil {
		return raw
	}

	if msg, ok := parsed["err"].(string); ok {
		return msg
	}

	if msg, ok := parsed["error"].(string); ok {
		return msg
	}

	// Covers both a plain "message" field and the {"err": true, "message":
	// "..."} shape some endpoints produce.
	if msg, ok := parsed["message"].(string); ok {
		return msg
	}

	return raw
}

// Classify builds an APIError from an HTTP failure status and its response
// body. The message keeps the originating status code and the upstream
// text so operators can correlate with platform logs.
func Classify(statusCode int, body []byte) *APIError {
	message := ExtractMessage(body)

	return &APIError{
		StatusCode: statusCode,
		Kind:       KindForStatus(statusCode),
		Message:    fmt.Sprintf("API Error [%d]: %s", statusCode, message),
	}
}
