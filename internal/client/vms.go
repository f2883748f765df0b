package client

import (
	"context"

	internalhttp "github.com/fivetwenty-io/verge-client/internal/http"
	"github.com/fivetwenty-io/verge-client/pkg/verge"
)

// VMsClient implements verge.VMsClient. VM rows carry a live status only
// on their machine record, so listings dereference it through a field
// projection instead of a second request per row.
type VMsClient struct {
	familyClient[verge.VM]
}

// NewVMsClient creates a new virtual machine client.
func NewVMsClient(httpClient *internalhttp.Client) *VMsClient {
	return &VMsClient{
		familyClient: newFamilyClient[verge.VM](httpClient, "vms", []string{
			verge.KeyField,
			"name",
			"description",
			"enabled",
			"cpu_cores",
			"ram",
			"machine",
			verge.FieldVia("machine", "status", "status"),
			"is_snapshot",
		}),
	}
}

// List retrieves virtual machines matching the given criteria.
func (c *VMsClient) List(ctx context.Context, criteria ...verge.Criterion) ([]verge.VM, error) {
	return c.list(ctx, criteria...)
}

// Get retrieves a virtual machine by key.
func (c *VMsClient) Get(ctx context.Context, key int) (*verge.VM, error) {
	return c.get(ctx, key)
}

// GetByName retrieves virtual machines whose name matches pattern, which
// may contain * and ? wildcards.
func (c *VMsClient) GetByName(ctx context.Context, pattern string) ([]verge.VM, error) {
	return c.getByName(ctx, pattern)
}

// Create provisions a new virtual machine and returns the created record.
func (c *VMsClient) Create(ctx context.Context, request *verge.VMCreateRequest) (*verge.VM, error) {
	return c.create(ctx, request)
}

// Update modifies the given fields of a virtual machine.
func (c *VMsClient) Update(ctx context.Context, key int, fields map[string]interface{}) (*verge.VM, error) {
	return c.update(ctx, key, fields)
}

// Delete removes a virtual machine.
func (c *VMsClient) Delete(ctx context.Context, key int) error {
	return c.delete(ctx, key)
}
