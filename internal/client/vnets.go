package client

import (
	"context"

	internalhttp "github.com/fivetwenty-io/verge-client/internal/http"
	"github.com/fivetwenty-io/verge-client/pkg/verge"
)

// VNetsClient implements verge.VNetsClient.
type VNetsClient struct {
	familyClient[verge.VNet]
}

// NewVNetsClient creates a new virtual network client.
func NewVNetsClient(httpClient *internalhttp.Client) *VNetsClient {
	return &VNetsClient{
		familyClient: newFamilyClient[verge.VNet](httpClient, "vnets", []string{
			verge.KeyField,
			"name",
			"type",
			"network",
			verge.FieldVia("machine", "status", "status"),
		}),
	}
}

// List retrieves virtual networks matching the given criteria.
func (c *VNetsClient) List(ctx context.Context, criteria ...verge.Criterion) ([]verge.VNet, error) {
	return c.list(ctx, criteria...)
}

// Get retrieves a virtual network by key.
func (c *VNetsClient) Get(ctx context.Context, key int) (*verge.VNet, error) {
	return c.get(ctx, key)
}

// GetByName retrieves virtual networks whose name matches pattern.
func (c *VNetsClient) GetByName(ctx context.Context, pattern string) ([]verge.VNet, error) {
	return c.getByName(ctx, pattern)
}
