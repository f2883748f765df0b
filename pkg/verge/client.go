package verge

import (
	"context"
)

// Connection is the opaque session capability the request pipeline reads
// once per call. It is created and destroyed entirely outside this core;
// the core never mutates it.
type Connection interface {
	// IsValid reports whether the session can be used for a call.
	IsValid() bool
	// BaseURL is the API root, without a trailing slash.
	BaseURL() string
	// AuthScheme is the Authorization header scheme, "Basic" by default.
	AuthScheme() string
	// Credential is the Authorization header value following the scheme.
	Credential() string
	// SkipCertVerification disables TLS verification for this session.
	SkipCertVerification() bool
}

// Logger is the structured logging interface used by the HTTP pipeline
// and helpers.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a verge.Client.
//
// Authentication: if Token is set it is sent as "Bearer <token>";
// otherwise Username/Password are sent as HTTP Basic credentials. The
// client performs no token acquisition of its own.
type Config struct {
	// APIEndpoint is the base URL for the VergeOS API (e.g.
	// "https://verge.example.com/api/v4"). vergeclient.New normalizes this
	// value by trimming a trailing slash and adding "https://" if no
	// scheme is present.
	APIEndpoint string

	// Username and Password for HTTP Basic authentication.
	Username string
	Password string

	// Token, when set, is used directly as a Bearer credential.
	Token string

	// SkipTLSVerify disables certificate verification. Default is verify.
	SkipTLSVerify bool

	// Debug enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool

	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Cache configures the name/key lookup cache used by reference
	// resolution. If nil, an in-memory cache is used.
	Cache *CacheConfig
}

// VMsClient accesses virtual machines.
type VMsClient interface {
	List(ctx context.Context, criteria ...Criterion) ([]VM, error)
	Get(ctx context.Context, key int) (*VM, error)
	GetByName(ctx context.Context, pattern string) ([]VM, error)
	Create(ctx context.Context, request *VMCreateRequest) (*VM, error)
	Update(ctx context.Context, key int, fields map[string]interface{}) (*VM, error)
	Delete(ctx context.Context, key int) error
}

// VNetsClient accesses virtual networks.
type VNetsClient interface {
	List(ctx context.Context, criteria ...Criterion) ([]VNet, error)
	Get(ctx context.Context, key int) (*VNet, error)
	GetByName(ctx context.Context, pattern string) ([]VNet, error)
}

// NodesClient accesses physical nodes.
type NodesClient interface {
	List(ctx context.Context, criteria ...Criterion) ([]Node, error)
	Get(ctx context.Context, key int) (*Node, error)
}

// TenantsClient accesses tenants.
type TenantsClient interface {
	List(ctx context.Context, criteria ...Criterion) ([]Tenant, error)
	Get(ctx context.Context, key int) (*Tenant, error)
	GetByName(ctx context.Context, pattern string) ([]Tenant, error)
}

// UsersClient accesses users.
type UsersClient interface {
	List(ctx context.Context, criteria ...Criterion) ([]User, error)
	Get(ctx context.Context, key int) (*User, error)
}

// TagsClient accesses tags and tag membership. Members may belong to any
// resource family; member inputs are resolved through the typed reference
// resolver.
type TagsClient interface {
	List(ctx context.Context, criteria ...Criterion) ([]Tag, error)
	Get(ctx context.Context, key int) (*Tag, error)
	Create(ctx context.Context, request *TagCreateRequest) (*Tag, error)
	Delete(ctx context.Context, key int) error
	Members(ctx context.Context, tag ReferenceInput) ([]TagMember, error)
	Assign(ctx context.Context, tag ReferenceInput, family string, member ReferenceInput) (*TagMember, error)
	Remove(ctx context.Context, tag ReferenceInput, family string, member ReferenceInput) error
}

// LogsClient accesses the system log endpoint. Its "since" parameter is
// epoch microseconds, unlike every other timestamp on the wire.
type LogsClient interface {
	List(ctx context.Context, since int64, limit int) ([]LogEntry, error)
}

// Resolver converts heterogeneous identifiers into canonical references.
type Resolver interface {
	Resolve(ctx context.Context, family string, input ReferenceInput) (Reference, error)
}

// Client is the top-level VergeOS API client.
type Client interface {
	VMs() VMsClient
	VNets() VNetsClient
	Nodes() NodesClient
	Tenants() TenantsClient
	Users() UsersClient
	Tags() TagsClient
	Logs() LogsClient
	Resolver() Resolver

	// Execute issues one call through the request pipeline and returns
	// normalized records. It is the generic surface per-resource clients
	// are built on, exposed for endpoints without a typed client.
	Execute(ctx context.Context, method, endpoint string, body interface{}, query *Query) ([]Record, error)
}
