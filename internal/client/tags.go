package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	internalhttp "github.com/fivetwenty-io/verge-client/internal/http"
	"github.com/fivetwenty-io/verge-client/pkg/verge"
)

const tagMembersFamily = "tag_members"

// TagsClient implements verge.TagsClient. Membership operations accept
// tags and members by reference, key, or name; names go through the
// resolver before any request is issued.
type TagsClient struct {
	familyClient[verge.Tag]
	resolver *ReferenceResolver
	logger   verge.Logger
}

// NewTagsClient creates a new tag client.
func NewTagsClient(httpClient *internalhttp.Client, resolver *ReferenceResolver, logger verge.Logger) *TagsClient {
	return &TagsClient{
		familyClient: newFamilyClient[verge.Tag](httpClient, "tags", []string{
			verge.KeyField,
			"name",
			"description",
			"color",
		}),
		resolver: resolver,
		logger:   logger,
	}
}

// List retrieves tags matching the given criteria.
func (c *TagsClient) List(ctx context.Context, criteria ...verge.Criterion) ([]verge.Tag, error) {
	return c.list(ctx, criteria...)
}

// Get retrieves a tag by key.
func (c *TagsClient) Get(ctx context.Context, key int) (*verge.Tag, error) {
	return c.get(ctx, key)
}

// Create creates a new tag and returns the created record.
func (c *TagsClient) Create(ctx context.Context, request *verge.TagCreateRequest) (*verge.Tag, error) {
	return c.create(ctx, request)
}

// Delete removes a tag.
func (c *TagsClient) Delete(ctx context.Context, key int) error {
	return c.delete(ctx, key)
}

// Members lists the current attachments of a tag.
func (c *TagsClient) Members(ctx context.Context, tag verge.ReferenceInput) ([]verge.TagMember, error) {
	tagRef, err := c.resolver.Resolve(ctx, "tags", tag)
	if err != nil {
		return nil, fmt.Errorf("resolving tag: %w", err)
	}

	query := verge.NewQuery().
		WithCriteria(verge.Compare("tag", verge.OpEquals, tagRef.Key)).
		WithFields(verge.KeyField, "tag", "member", "name", "family")

	records, err := c.httpClient.Execute(ctx, http.MethodGet, tagMembersFamily, nil, query)
	if err != nil {
		return nil, fmt.Errorf("listing tag members: %w", err)
	}

	members, err := verge.DecodeRecords[verge.TagMember](withKeys(records))
	if err != nil {
		return nil, fmt.Errorf("parsing tag member records: %w", err)
	}

	return members, nil
}

// Assign attaches a resource to a tag. The member may be given as a
// reference, a key within family, or a name to resolve in family.
func (c *TagsClient) Assign(ctx context.Context, tag verge.ReferenceInput, family string, member verge.ReferenceInput) (*verge.TagMember, error) {
	tagRef, err := c.resolver.Resolve(ctx, "tags", tag)
	if err != nil {
		return nil, fmt.Errorf("resolving tag: %w", err)
	}

	memberRef, err := c.resolver.Resolve(ctx, family, member)
	if err != nil {
		return nil, fmt.Errorf("resolving member: %w", err)
	}

	body := map[string]interface{}{
		"tag":    tagRef.Key,
		"member": memberRef,
	}

	records, err := c.httpClient.Execute(ctx, http.MethodPost, tagMembersFamily, body, nil)
	if err != nil {
		return nil, fmt.Errorf("assigning tag %s to %s: %w", tagRef, memberRef, err)
	}

	attached := verge.TagMember{Tag: tagRef.Key, Reference: memberRef}
	if len(records) == 0 {
		return &attached, nil
	}

	key, ok := records[0].Key()
	if !ok {
		return &attached, nil
	}

	// The refetch is cosmetic: the attachment already happened, so a
	// record that has since vanished is not worth failing the call over.
	created, err := c.memberByKey(ctx, key)
	if err != nil {
		if verge.IsNotFound(err) {
			c.logWarn("tag member vanished after assignment", map[string]interface{}{
				"tag":    tagRef.String(),
				"member": memberRef.String(),
			})

			attached.Key = key

			return &attached, nil
		}

		return nil, err
	}

	return created, nil
}

// Remove detaches a resource from a tag. Removing an attachment that
// does not exist is not an error.
func (c *TagsClient) Remove(ctx context.Context, tag verge.ReferenceInput, family string, member verge.ReferenceInput) error {
	tagRef, err := c.resolver.Resolve(ctx, "tags", tag)
	if err != nil {
		return fmt.Errorf("resolving tag: %w", err)
	}

	memberRef, err := c.resolver.Resolve(ctx, family, member)
	if err != nil {
		return fmt.Errorf("resolving member: %w", err)
	}

	query := verge.NewQuery().
		WithCriteria(verge.All(
			verge.Compare("tag", verge.OpEquals, tagRef.Key),
			verge.Equals("member", memberRef.String()),
		)).
		WithFields(verge.KeyField)

	records, err := c.httpClient.Execute(ctx, http.MethodGet, tagMembersFamily, nil, query)
	if err != nil {
		return fmt.Errorf("finding tag member: %w", err)
	}

	if len(records) == 0 {
		c.logWarn("tag member already absent", map[string]interface{}{
			"tag":    tagRef.String(),
			"member": memberRef.String(),
		})

		return nil
	}

	for _, record := range records {
		key, ok := record.Key()
		if !ok {
			continue
		}

		_, err = c.httpClient.Delete(ctx, tagMembersFamily+"/"+strconv.Itoa(key))
		if err != nil {
			return fmt.Errorf("removing tag member %d: %w", key, err)
		}
	}

	return nil
}

func (c *TagsClient) memberByKey(ctx context.Context, key int) (*verge.TagMember, error) {
	query := verge.NewQuery().WithFields(verge.KeyField, "tag", "member", "name", "family")

	records, err := c.httpClient.Execute(ctx, http.MethodGet, tagMembersFamily+"/"+strconv.Itoa(key), nil, query)
	if err != nil {
		return nil, fmt.Errorf("getting tag member %d: %w", key, err)
	}

	if len(records) == 0 {
		return nil, &verge.NotFoundError{Family: tagMembersFamily, Name: strconv.Itoa(key)}
	}

	var member verge.TagMember

	err = records[0].Decode(&member)
	if err != nil {
		return nil, fmt.Errorf("parsing tag member record: %w", err)
	}

	return &member, nil
}

func (c *TagsClient) logWarn(msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Warn(msg, fields)
	}
}
