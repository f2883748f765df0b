package client

import (
	"context"

	internalhttp "github.com/fivetwenty-io/verge-client/internal/http"
	"github.com/fivetwenty-io/verge-client/pkg/verge"
)

// UsersClient implements verge.UsersClient.
type UsersClient struct {
	familyClient[verge.User]
}

// NewUsersClient creates a new user client.
func NewUsersClient(httpClient *internalhttp.Client) *UsersClient {
	return &UsersClient{
		familyClient: newFamilyClient[verge.User](httpClient, "users", []string{
			verge.KeyField,
			"name",
			"displayname",
			"type",
			"enabled",
		}),
	}
}

// List retrieves users matching the given criteria.
func (c *UsersClient) List(ctx context.Context, criteria ...verge.Criterion) ([]verge.User, error) {
	return c.list(ctx, criteria...)
}

// Get retrieves a user by key.
func (c *UsersClient) Get(ctx context.Context, key int) (*verge.User, error) {
	return c.get(ctx, key)
}
