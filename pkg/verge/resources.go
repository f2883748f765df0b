package verge

// Typed views over normalized records. Field names carry the upstream
// JSON names unchanged, including the "$key" identifier; aliased fields
// (e.g. machine status dereferenced into "status") use the alias the
// client's field projection requested.

// VM is a virtual machine.
type VM struct {
	Key         int    `json:"$key"                  yaml:"key"`
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Enabled     bool   `json:"enabled"               yaml:"enabled"`
	CPUCores    int    `json:"cpu_cores"             yaml:"cpu_cores"`
	RAM         int    `json:"ram"                   yaml:"ram"`
	Machine     int    `json:"machine,omitempty"     yaml:"machine,omitempty"`
	Status      string `json:"status,omitempty"      yaml:"status,omitempty"`
	Snapshot    bool   `json:"is_snapshot,omitempty" yaml:"is_snapshot,omitempty"`
}

// VMCreateRequest is the body for creating a virtual machine.
type VMCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Enabled     *bool  `json:"enabled,omitempty"`
	CPUCores    int    `json:"cpu_cores,omitempty"`
	RAM         int    `json:"ram,omitempty"`
}

// VNet is a virtual network.
type VNet struct {
	Key     int    `json:"$key"              yaml:"key"`
	Name    string `json:"name"              yaml:"name"`
	Type    string `json:"type,omitempty"    yaml:"type,omitempty"`
	Network string `json:"network,omitempty" yaml:"network,omitempty"`
	Status  string `json:"status,omitempty"  yaml:"status,omitempty"`
}

// Node is a physical node.
type Node struct {
	Key         int    `json:"$key"                  yaml:"key"`
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Status      string `json:"status,omitempty"      yaml:"status,omitempty"`
	PhysRAM     int    `json:"phys_ram,omitempty"    yaml:"phys_ram,omitempty"`
}

// Tenant is an isolated sub-environment.
type Tenant struct {
	Key     int    `json:"$key"              yaml:"key"`
	Name    string `json:"name"              yaml:"name"`
	URL     string `json:"url,omitempty"     yaml:"url,omitempty"`
	Status  string `json:"status,omitempty"  yaml:"status,omitempty"`
	Expires int64  `json:"expires,omitempty" yaml:"expires,omitempty"`
}

// User is an API or UI user account.
type User struct {
	Key         int    `json:"$key"                  yaml:"key"`
	Name        string `json:"name"                  yaml:"name"`
	DisplayName string `json:"displayname,omitempty" yaml:"displayname,omitempty"`
	Type        string `json:"type,omitempty"        yaml:"type,omitempty"`
	Enabled     bool   `json:"enabled"               yaml:"enabled"`
}

// Tag is a label attachable to a resource of any family.
type Tag struct {
	Key         int    `json:"$key"                  yaml:"key"`
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Color       string `json:"color,omitempty"       yaml:"color,omitempty"`
}

// TagCreateRequest is the body for creating a tag.
type TagCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// TagMember is the attachment of a tag to one resource. Reference is the
// "family/key" wire form of the member.
type TagMember struct {
	Key       int       `json:"$key"             yaml:"key"`
	Tag       int       `json:"tag"              yaml:"tag"`
	Reference Reference `json:"member"           yaml:"member"`
	Name      string    `json:"name,omitempty"   yaml:"name,omitempty"`
	Family    string    `json:"family,omitempty" yaml:"family,omitempty"`
}

// LogEntry is one system log row. Timestamps are epoch microseconds.
type LogEntry struct {
	Key       int    `json:"$key"             yaml:"key"`
	Timestamp int64  `json:"posted"           yaml:"posted"`
	Level     string `json:"level,omitempty"  yaml:"level,omitempty"`
	Module    string `json:"module,omitempty" yaml:"module,omitempty"`
	Message   string `json:"text"             yaml:"text"`
}
