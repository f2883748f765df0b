package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	internalhttp "github.com/fivetwenty-io/verge-client/internal/http"
	"github.com/fivetwenty-io/verge-client/pkg/verge"
)

// testConnection is a fixed-credential connection for tests.
type testConnection struct {
	baseURL string
}

func (c *testConnection) IsValid() bool              { return c.baseURL != "" }
func (c *testConnection) BaseURL() string            { return c.baseURL }
func (c *testConnection) AuthScheme() string         { return "Basic" }
func (c *testConnection) Credential() string         { return "dGVzdDp0ZXN0" }
func (c *testConnection) SkipCertVerification() bool { return false }

// NewTestClient creates a client bound to a test server base URL.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(&testConnection{baseURL: baseURL})

	client := &Client{
		httpClient: httpClient,
	}

	client.initializeResourceClients(verge.NewMemoryCache())

	return client
}

// RespondJSON writes a JSON response body with the given status.
func RespondJSON(t *testing.T, w http.ResponseWriter, statusCode int, body interface{}) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	err := json.NewEncoder(w).Encode(body)
	assert.NoError(t, err)
}

// NewJSONServer creates a test server that dispatches on "METHOD /path"
// keys, answering unmatched requests with a VergeOS-shaped 404 body.
func NewJSONServer(t *testing.T, routes map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := routes[r.Method+" "+r.URL.Path]; ok {
			handler(w, r)

			return
		}

		RespondJSON(t, w, http.StatusNotFound, map[string]interface{}{"err": "not found"})
	}))
}
