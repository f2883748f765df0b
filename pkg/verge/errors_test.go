package verge_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/verge-client/pkg/verge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "string err field wins",
			body:     `{"err": "machine is busy", "error": "other", "message": "another"}`,
			expected: "machine is busy",
		},
		{
			name:     "error field when err absent",
			body:     `{"error": "invalid filter", "message": "another"}`,
			expected: "invalid filter",
		},
		{
			name:     "message field",
			body:     `{"message": "not found"}`,
			expected: "not found",
		},
		{
			name:     "boolean err with message",
			body:     `{"err": true, "message": "permission denied"}`,
			expected: "permission denied",
		},
		{
			name:     "unrecognized object falls back to raw",
			body:     `{"detail": "something"}`,
			expected: `{"detail": "something"}`,
		},
		{
			name:     "non-JSON body returned unmodified",
			body:     "<html>502 Bad Gateway</html>",
			expected: "<html>502 Bad Gateway</html>",
		},
		{
			name:     "empty body",
			body:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, verge.ExtractMessage([]byte(tt.body)))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		statusCode   int
		body         string
		expectedKind verge.ErrorKind
		expectedMsg  string
	}{
		{
			name:         "not found",
			statusCode:   http.StatusNotFound,
			body:         `{"err": "not found"}`,
			expectedKind: verge.ErrorKindNotFound,
			expectedMsg:  "API Error [404]: not found",
		},
		{
			name:         "unauthorized",
			statusCode:   http.StatusUnauthorized,
			body:         `{"message": "authentication required"}`,
			expectedKind: verge.ErrorKindUnauthorized,
			expectedMsg:  "API Error [401]: authentication required",
		},
		{
			name:         "forbidden maps to unauthorized",
			statusCode:   http.StatusForbidden,
			body:         `{"err": "no access"}`,
			expectedKind: verge.ErrorKindUnauthorized,
			expectedMsg:  "API Error [403]: no access",
		},
		{
			name:         "conflict",
			statusCode:   http.StatusConflict,
			body:         `{"err": "name already in use"}`,
			expectedKind: verge.ErrorKindConflict,
			expectedMsg:  "API Error [409]: name already in use",
		},
		{
			name:         "bad request",
			statusCode:   http.StatusBadRequest,
			body:         `{"error": "invalid filter"}`,
			expectedKind: verge.ErrorKindBadRequest,
			expectedMsg:  "API Error [400]: invalid filter",
		},
		{
			name:         "server error",
			statusCode:   http.StatusInternalServerError,
			body:         "boom",
			expectedKind: verge.ErrorKindServerFault,
			expectedMsg:  "API Error [500]: boom",
		},
		{
			name:         "unlisted 5xx is a server fault",
			statusCode:   http.StatusBadGateway,
			body:         "",
			expectedKind: verge.ErrorKindServerFault,
			expectedMsg:  "API Error [502]: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			apiErr := verge.Classify(tt.statusCode, []byte(tt.body))
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
			assert.Equal(t, tt.expectedKind, apiErr.Kind)
			assert.Equal(t, tt.expectedMsg, apiErr.Error())
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	notFound := verge.Classify(http.StatusNotFound, []byte(`{"err":"gone"}`))
	unauthorized := verge.Classify(http.StatusUnauthorized, nil)
	conflict := verge.Classify(http.StatusConflict, nil)
	resolverMiss := &verge.NotFoundError{Family: "vms", Name: "web-01"}
	cfg := &verge.ConfigError{Reason: "connection is not valid"}

	assert.True(t, verge.IsNotFound(notFound))
	assert.True(t, verge.IsNotFound(resolverMiss))
	assert.False(t, verge.IsNotFound(unauthorized))

	assert.True(t, verge.IsUnauthorized(unauthorized))
	assert.False(t, verge.IsUnauthorized(notFound))

	assert.True(t, verge.IsConflict(conflict))
	assert.False(t, verge.IsConflict(notFound))

	assert.True(t, verge.IsConfigError(cfg))
	assert.False(t, verge.IsConfigError(notFound))
}

func TestErrorPredicatesSeeThroughWrapping(t *testing.T) {
	t.Parallel()

	inner := verge.Classify(http.StatusNotFound, []byte(`{"err":"gone"}`))
	wrapped := fmt.Errorf("getting vms/42: %w", inner)

	assert.True(t, verge.IsNotFound(wrapped))
	assert.False(t, verge.IsUnauthorized(wrapped))
}

func TestNotFoundErrorMessage(t *testing.T) {
	t.Parallel()

	err := &verge.NotFoundError{Family: "tags", Name: "Production"}
	assert.Equal(t, `no tags found matching "Production"`, err.Error())
}
