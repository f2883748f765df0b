package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fivetwenty-io/verge-client/internal/constants"
	internalhttp "github.com/fivetwenty-io/verge-client/internal/http"
	"github.com/fivetwenty-io/verge-client/pkg/verge"
)

// ReferenceResolver converts heterogeneous identifiers into canonical
// family/key references, backed by a name/key lookup cache. Two
// concurrent resolutions of the same name may both issue the lookup; they
// converge on the same cache entry.
type ReferenceResolver struct {
	httpClient *internalhttp.Client
	cache      *verge.NameKeyCache
}

// NewReferenceResolver creates a resolver on the shared pipeline.
func NewReferenceResolver(httpClient *internalhttp.Client, cache *verge.NameKeyCache) *ReferenceResolver {
	if cache == nil {
		cache = verge.NewNameKeyCache(nil)
	}

	return &ReferenceResolver{
		httpClient: httpClient,
		cache:      cache,
	}
}

// Resolve implements verge.Resolver. An explicit reference is used
// directly; a key (bare or in digit-string form) is bound to the family
// hint; any other non-empty string is treated as a name and looked up,
// first in the cache and then upstream. When a name matches multiple
// records the first match wins; callers that require uniqueness must
// pre-filter.
func (r *ReferenceResolver) Resolve(ctx context.Context, family string, input verge.ReferenceInput) (verge.Reference, error) {
	if input.IsEmpty() {
		return verge.Reference{}, fmt.Errorf("resolving %s reference: %w", family, verge.ErrEmptyInput)
	}

	if ref, ok := input.AsReference(); ok {
		return ref, nil
	}

	if key, ok := input.AsKey(); ok {
		return verge.NewReference(family, key)
	}

	name, _ := input.AsName()

	if key, ok := r.cache.LookupKey(ctx, family, name); ok {
		return verge.NewReference(family, key)
	}

	key, err := r.lookupByName(ctx, family, name)
	if err != nil {
		return verge.Reference{}, err
	}

	r.cache.Store(ctx, family, name, key)

	return verge.NewReference(family, key)
}

// DisplayName returns a human-readable name for a key, consulting the
// cache first. Used only for messaging; a lookup failure degrades to the
// numeric form rather than failing the caller.
func (r *ReferenceResolver) DisplayName(ctx context.Context, family string, key int) string {
	if name, ok := r.cache.LookupName(ctx, family, key); ok {
		return name
	}

	query := verge.NewQuery().WithFields(verge.KeyField, "name")

	records, err := r.httpClient.Execute(ctx, http.MethodGet, family+"/"+strconv.Itoa(key), nil, query)
	if err != nil || len(records) == 0 {
		return strconv.Itoa(key)
	}

	name := records[0].Name()
	if name == "" {
		return strconv.Itoa(key)
	}

	r.cache.Store(ctx, family, name, key)

	return name
}

// lookupByName queries the family endpoint for an exact name match.
func (r *ReferenceResolver) lookupByName(ctx context.Context, family, name string) (int, error) {
	query := verge.NewQuery().
		WithCriteria(verge.Equals("name", name)).
		WithFields(verge.KeyField, "name").
		WithLimit(constants.SingleResult)

	records, err := r.httpClient.Execute(ctx, http.MethodGet, family, nil, query)
	if err != nil {
		return 0, fmt.Errorf("looking up %s %q: %w", family, name, err)
	}

	for _, record := range records {
		if key, ok := record.Key(); ok {
			return key, nil
		}
	}

	return 0, &verge.NotFoundError{Family: family, Name: name}
}
