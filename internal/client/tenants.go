package client

import (
	"context"

	internalhttp "github.com/fivetwenty-io/verge-client/internal/http"
	"github.com/fivetwenty-io/verge-client/pkg/verge"
)

// TenantsClient implements verge.TenantsClient.
type TenantsClient struct {
	familyClient[verge.Tenant]
}

// NewTenantsClient creates a new tenant client.
func NewTenantsClient(httpClient *internalhttp.Client) *TenantsClient {
	return &TenantsClient{
		familyClient: newFamilyClient[verge.Tenant](httpClient, "tenants", []string{
			verge.KeyField,
			"name",
			"url",
			"status",
			"expires",
		}),
	}
}

// List retrieves tenants matching the given criteria.
func (c *TenantsClient) List(ctx context.Context, criteria ...verge.Criterion) ([]verge.Tenant, error) {
	return c.list(ctx, criteria...)
}

// Get retrieves a tenant by key.
func (c *TenantsClient) Get(ctx context.Context, key int) (*verge.Tenant, error) {
	return c.get(ctx, key)
}

// GetByName retrieves tenants whose name matches pattern.
func (c *TenantsClient) GetByName(ctx context.Context, pattern string) ([]verge.Tenant, error) {
	return c.getByName(ctx, pattern)
}
