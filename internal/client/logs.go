package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/verge-client/internal/constants"
	internalhttp "github.com/fivetwenty-io/verge-client/internal/http"
	"github.com/fivetwenty-io/verge-client/pkg/verge"
)

// LogsClient implements verge.LogsClient. The log endpoint keeps its
// timestamps in epoch microseconds, unlike every other family.
type LogsClient struct {
	httpClient *internalhttp.Client
}

// NewLogsClient creates a new system log client.
func NewLogsClient(httpClient *internalhttp.Client) *LogsClient {
	return &LogsClient{httpClient: httpClient}
}

// List retrieves log entries posted at or after since (epoch
// microseconds; zero means no lower bound), newest first. A
// non-positive limit falls back to the default line count.
func (c *LogsClient) List(ctx context.Context, since int64, limit int) ([]verge.LogEntry, error) {
	if limit <= 0 {
		limit = constants.DefaultLogLines
	}

	query := verge.NewQuery().
		WithFields(verge.KeyField, "posted", "level", "module", "text").
		WithSort("posted", true).
		WithLimit(limit)

	if since > 0 {
		query = query.WithCriteria(verge.Compare("posted", verge.OpGreaterEqual, since))
	}

	records, err := c.httpClient.Execute(ctx, http.MethodGet, "logs", nil, query)
	if err != nil {
		return nil, fmt.Errorf("listing logs: %w", err)
	}

	entries, err := verge.DecodeRecords[verge.LogEntry](withKeys(records))
	if err != nil {
		return nil, fmt.Errorf("parsing log records: %w", err)
	}

	return entries, nil
}
