package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	internalhttp "github.com/fivetwenty-io/verge-client/internal/http"
	"github.com/fivetwenty-io/verge-client/pkg/verge"
)

// familyClient is the generic base for per-family resource clients. Each
// family supplies its endpoint name and the field projection its display
// schema needs; the base turns criteria into the wire filter, executes
// through the pipeline, drops records missing their identifying key, and
// reshapes the remainder into the typed view.
type familyClient[T any] struct {
	httpClient *internalhttp.Client
	family     string
	fields     []string
}

func newFamilyClient[T any](httpClient *internalhttp.Client, family string, fields []string) familyClient[T] {
	return familyClient[T]{
		httpClient: httpClient,
		family:     family,
		fields:     fields,
	}
}

// list retrieves all records matching criteria, in server order.
func (c *familyClient[T]) list(ctx context.Context, criteria ...verge.Criterion) ([]T, error) {
	query := verge.NewQuery().
		WithCriteria(criteria...).
		WithFields(c.fields...)

	records, err := c.httpClient.Execute(ctx, http.MethodGet, c.family, nil, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.family, err)
	}

	typed, err := verge.DecodeRecords[T](withKeys(records))
	if err != nil {
		return nil, fmt.Errorf("parsing %s records: %w", c.family, err)
	}

	return typed, nil
}

// get retrieves one record by key.
func (c *familyClient[T]) get(ctx context.Context, key int) (*T, error) {
	query := verge.NewQuery().WithFields(c.fields...)

	records, err := c.httpClient.Execute(ctx, http.MethodGet, c.family+"/"+strconv.Itoa(key), nil, query)
	if err != nil {
		return nil, fmt.Errorf("getting %s/%d: %w", c.family, key, err)
	}

	if len(records) == 0 {
		return nil, &verge.NotFoundError{Family: c.family, Name: strconv.Itoa(key)}
	}

	var item T

	err = records[0].Decode(&item)
	if err != nil {
		return nil, fmt.Errorf("parsing %s record: %w", c.family, err)
	}

	return &item, nil
}

// getByName retrieves records matching a name pattern. Wildcard patterns
// go upstream as a substring filter; because "ct" over-matches relative
// to glob semantics, the result set is re-filtered client side.
func (c *familyClient[T]) getByName(ctx context.Context, pattern string) ([]T, error) {
	query := verge.NewQuery().
		WithCriteria(verge.WildcardName("name", pattern)).
		WithFields(c.fields...)

	records, err := c.httpClient.Execute(ctx, http.MethodGet, c.family, nil, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s by name: %w", c.family, err)
	}

	matched := make([]verge.Record, 0, len(records))

	for _, record := range withKeys(records) {
		if verge.MatchGlob(pattern, record.Name()) {
			matched = append(matched, record)
		}
	}

	typed, err := verge.DecodeRecords[T](matched)
	if err != nil {
		return nil, fmt.Errorf("parsing %s records: %w", c.family, err)
	}

	return typed, nil
}

// create posts a body and refetches the created record by key.
func (c *familyClient[T]) create(ctx context.Context, body interface{}) (*T, error) {
	records, err := c.httpClient.Execute(ctx, http.MethodPost, c.family, body, nil)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.family, err)
	}

	if len(records) == 0 {
		return nil, &verge.NotFoundError{Family: c.family, Name: "created record"}
	}

	key, ok := records[0].Key()
	if !ok {
		var item T

		err = records[0].Decode(&item)
		if err != nil {
			return nil, fmt.Errorf("parsing %s record: %w", c.family, err)
		}

		return &item, nil
	}

	return c.get(ctx, key)
}

// update puts a partial body and refetches.
func (c *familyClient[T]) update(ctx context.Context, key int, fields map[string]interface{}) (*T, error) {
	_, err := c.httpClient.Execute(ctx, http.MethodPut, c.family+"/"+strconv.Itoa(key), fields, nil)
	if err != nil {
		return nil, fmt.Errorf("updating %s/%d: %w", c.family, key, err)
	}

	return c.get(ctx, key)
}

// delete removes one record by key.
func (c *familyClient[T]) delete(ctx context.Context, key int) error {
	_, err := c.httpClient.Delete(ctx, c.family+"/"+strconv.Itoa(key))
	if err != nil {
		return fmt.Errorf("deleting %s/%d: %w", c.family, key, err)
	}

	return nil
}

// withKeys drops records missing their "$key" identifier before they are
// surfaced to callers.
func withKeys(records []verge.Record) []verge.Record {
	valid := make([]verge.Record, 0, len(records))

	for _, record := range records {
		if _, ok := record.Key(); ok {
			valid = append(valid, record)
		}
	}

	return valid
}
