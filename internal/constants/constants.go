package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. The API contract has no retry semantics, so the transport
// default is zero; WithRetryConfig exists for operators who accept
// at-least-once GETs against their own deployments.
const (
	// DefaultRetryMax disables transport retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMax is the maximum wait between retries when a
	// caller opts in.
	DefaultRetryWaitMax = 10 * time.Second
)

// Display and listing limits.
const (
	// DefaultLogLines is the default number of log rows to fetch.
	DefaultLogLines = 50

	// SingleResult limits a lookup query to its first row.
	SingleResult = 1
)

// Output format constants.
const (
	// FormatTable for tabular output.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// Authorization schemes.
const (
	// SchemeBasic is the default Authorization scheme.
	SchemeBasic = "Basic"

	// SchemeBearer is used for token credentials.
	SchemeBearer = "Bearer"
)

// JSON formatting.
const (
	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)
