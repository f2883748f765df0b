package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	internalhttp "github.com/fivetwenty-io/verge-client/internal/http"
	"github.com/fivetwenty-io/verge-client/pkg/verge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConnection struct {
	baseURL    string
	scheme     string
	credential string
	skipTLS    bool
	valid      bool
}

func (c *testConnection) IsValid() bool              { return c.valid }
func (c *testConnection) BaseURL() string            { return c.baseURL }
func (c *testConnection) AuthScheme() string         { return c.scheme }
func (c *testConnection) Credential() string         { return c.credential }
func (c *testConnection) SkipCertVerification() bool { return c.skipTLS }

func newTestConnection(baseURL string) *testConnection {
	return &testConnection{
		baseURL:    baseURL,
		scheme:     "Basic",
		credential: "dXNlcjpwYXNz",
		valid:      true,
	}
}

func TestClientGet(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/vms", r.URL.Path)
		assert.Equal(t, "Basic dXNlcjpwYXNz", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"$key": 1, "name": "web-01"}]`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(newTestConnection(server.URL))

	resp, err := client.Get(context.Background(), "vms", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[{"$key": 1, "name": "web-01"}]`, string(resp.Body))
}

func TestClientSendsQueryParameters(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "name eq 'web-01'", query.Get("filter"))
		assert.Equal(t, "$key,name", query.Get("fields"))
		assert.Equal(t, "1", query.Get("limit"))

		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(newTestConnection(server.URL))

	query := verge.NewQuery().
		WithCriteria(verge.Equals("name", "web-01")).
		WithFields("$key", "name").
		WithLimit(1)

	records, err := client.Execute(context.Background(), http.MethodGet, "vms", nil, query)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClientPostSerializesBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "web-02", body["name"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"$key": 2, "name": "web-02"}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(newTestConnection(server.URL))

	resp, err := client.Post(context.Background(), "vms", map[string]string{"name": "web-02"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestClientBearerScheme(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	conn := &testConnection{
		baseURL:    server.URL,
		scheme:     "Bearer",
		credential: "token-123",
		valid:      true,
	}

	client := internalhttp.NewClient(conn)

	_, err := client.Get(context.Background(), "vms", nil)
	require.NoError(t, err)
}

func TestClientClassifiesErrors(t *testing.T) {
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
			name:         "server fault with plain body",
			statusCode:   http.StatusInternalServerError,
			body:         "boom",
			expectedKind: verge.ErrorKindServerFault,
			expectedMsg:  "API Error [500]: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := internalhttp.NewClient(newTestConnection(server.URL))

			resp, err := client.Get(context.Background(), "vms/99", nil)
			require.Error(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, tt.statusCode, resp.StatusCode)

			apiErr := &verge.APIError{}
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.expectedKind, apiErr.Kind)
			assert.Equal(t, tt.expectedMsg, apiErr.Message)
		})
	}
}

func TestClientRejectsInvalidConnection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		conn verge.Connection
	}{
		{name: "nil connection", conn: nil},
		{name: "invalid connection", conn: &testConnection{valid: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := internalhttp.NewClient(tt.conn)

			_, err := client.Get(context.Background(), "vms", nil)
			require.Error(t, err)
			assert.True(t, verge.IsConfigError(err))
		})
	}
}

func TestClientExecuteNormalizesObjectResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"$key": 42, "name": "web-01"}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(newTestConnection(server.URL))

	records, err := client.Execute(context.Background(), http.MethodGet, "vms/42", nil, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)

	key, ok := records[0].Key()
	require.True(t, ok)
	assert.Equal(t, 42, key)
}

func TestClientExecuteNormalizesNullResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(newTestConnection(server.URL))

	records, err := client.Execute(context.Background(), http.MethodGet, "vms", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClientUserAgentOverride(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "custom-agent/2.0", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(
		newTestConnection(server.URL),
		internalhttp.WithUserAgent("custom-agent/2.0"),
	)

	_, err := client.Get(context.Background(), "vms", nil)
	require.NoError(t, err)
}
