// Package client implements the concrete verge.Client: the connection
// built from a Config, the per-family resource clients, and the typed
// reference resolver.
package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/verge-client/internal/constants"
	internalhttp "github.com/fivetwenty-io/verge-client/internal/http"
	"github.com/fivetwenty-io/verge-client/pkg/verge"
)

// connection adapts a verge.Config into the read-only session capability
// the request pipeline consumes.
type connection struct {
	baseURL    string
	authScheme string
	credential string
	skipVerify bool
}

// NewConnection builds a connection from configuration. A Token yields a
// Bearer credential; otherwise Username/Password become a Basic
// credential.
func NewConnection(config *verge.Config) verge.Connection {
	conn := &connection{
		baseURL:    strings.TrimSuffix(config.APIEndpoint, "/"),
		skipVerify: config.SkipTLSVerify,
	}

	switch {
	case config.Token != "":
		conn.authScheme = constants.SchemeBearer
		conn.credential = config.Token
	case config.Username != "":
		conn.authScheme = constants.SchemeBasic
		conn.credential = base64.StdEncoding.EncodeToString(
			[]byte(config.Username + ":" + config.Password))
	}

	return conn
}

func (c *connection) IsValid() bool {
	return c.baseURL != "" && c.credential != ""
}

func (c *connection) BaseURL() string {
	return c.baseURL
}

func (c *connection) AuthScheme() string {
	return c.authScheme
}

func (c *connection) Credential() string {
	return c.credential
}

func (c *connection) SkipCertVerification() bool {
	return c.skipVerify
}

// Client implements the verge.Client interface.
type Client struct {
	httpClient *internalhttp.Client
	logger     verge.Logger

	vms      verge.VMsClient
	vnets    verge.VNetsClient
	nodes    verge.NodesClient
	tenants  verge.TenantsClient
	users    verge.UsersClient
	tags     verge.TagsClient
	logs     verge.LogsClient
	resolver verge.Resolver
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *verge.Config) []internalhttp.Option {
	var httpOpts []internalhttp.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, internalhttp.WithUserAgent(config.UserAgent))
	}

	return httpOpts
}

// New creates a new VergeOS API client.
func New(ctx context.Context, config *verge.Config) (*Client, error) {
	if config == nil {
		return nil, verge.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, verge.ErrEndpointRequired
	}

	cache, err := verge.NewCacheFromConfig(config.Cache)
	if err != nil {
		return nil, fmt.Errorf("creating lookup cache: %w", err)
	}

	httpClient := internalhttp.NewClient(NewConnection(config), createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		logger:     config.Logger,
	}

	client.initializeResourceClients(cache)

	return client, nil
}

// initializeResourceClients initializes all resource-family clients.
func (c *Client) initializeResourceClients(cache verge.Cache) {
	resolver := NewReferenceResolver(c.httpClient, verge.NewNameKeyCache(cache))

	c.resolver = resolver
	c.vms = NewVMsClient(c.httpClient)
	c.vnets = NewVNetsClient(c.httpClient)
	c.nodes = NewNodesClient(c.httpClient)
	c.tenants = NewTenantsClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.tags = NewTagsClient(c.httpClient, resolver, c.logger)
	c.logs = NewLogsClient(c.httpClient)
}

// VMs implements verge.Client.VMs.
func (c *Client) VMs() verge.VMsClient {
	return c.vms
}

// VNets implements verge.Client.VNets.
func (c *Client) VNets() verge.VNetsClient {
	return c.vnets
}

// Nodes implements verge.Client.Nodes.
func (c *Client) Nodes() verge.NodesClient {
	return c.nodes
}

// Tenants implements verge.Client.Tenants.
func (c *Client) Tenants() verge.TenantsClient {
	return c.tenants
}

// Users implements verge.Client.Users.
func (c *Client) Users() verge.UsersClient {
	return c.users
}

// Tags implements verge.Client.Tags.
func (c *Client) Tags() verge.TagsClient {
	return c.tags
}

// Logs implements verge.Client.Logs.
func (c *Client) Logs() verge.LogsClient {
	return c.logs
}

// Resolver implements verge.Client.Resolver.
func (c *Client) Resolver() verge.Resolver {
	return c.resolver
}

// Execute implements verge.Client.Execute.
func (c *Client) Execute(ctx context.Context, method, endpoint string, body interface{}, query *verge.Query) ([]verge.Record, error) {
	return c.httpClient.Execute(ctx, method, endpoint, body, query)
}
