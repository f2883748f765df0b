package client

import (
	"context"

	internalhttp "github.com/fivetwenty-io/verge-client/internal/http"
	"github.com/fivetwenty-io/verge-client/pkg/verge"
)

// NodesClient implements verge.NodesClient.
type NodesClient struct {
	familyClient[verge.Node]
}

// NewNodesClient creates a new node client.
func NewNodesClient(httpClient *internalhttp.Client) *NodesClient {
	return &NodesClient{
		familyClient: newFamilyClient[verge.Node](httpClient, "nodes", []string{
			verge.KeyField,
			"name",
			"description",
			verge.FieldVia("machine", "status", "status"),
			"phys_ram",
		}),
	}
}

// List retrieves nodes matching the given criteria.
func (c *NodesClient) List(ctx context.Context, criteria ...verge.Criterion) ([]verge.Node, error) {
	return c.list(ctx, criteria...)
}

// Get retrieves a node by key.
func (c *NodesClient) Get(ctx context.Context, key int) (*verge.Node, error) {
	return c.get(ctx, key)
}
