package vergeclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/verge-client/internal/client"
	"github.com/fivetwenty-io/verge-client/pkg/verge"
)

// New creates a new management API client from a configuration. The
// endpoint may be given bare ("verge.example.com"), with a scheme, or
// with a trailing slash; all forms normalize to the same base URL.
func New(ctx context.Context, config *verge.Config) (verge.Client, error) {
	if config == nil {
		return nil, verge.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, verge.ErrEndpointRequired
	}

	apiEndpoint := strings.TrimSuffix(config.APIEndpoint, "/")
	if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	config.APIEndpoint = apiEndpoint

	client, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// NewWithToken creates a new client authenticating with a bearer token.
func NewWithToken(ctx context.Context, endpoint, token string) (verge.Client, error) {
	return New(ctx, &verge.Config{
		APIEndpoint: endpoint,
		Token:       token,
	})
}

// NewWithPassword creates a new client authenticating with username and
// password credentials.
func NewWithPassword(ctx context.Context, endpoint, username, password string) (verge.Client, error) {
	return New(ctx, &verge.Config{
		APIEndpoint: endpoint,
		Username:    username,
		Password:    password,
	})
}
