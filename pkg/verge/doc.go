// Package verge provides the public types shared by the VergeOS API client:
// the filter expression builder, query parameters, resource references,
// the error taxonomy and classifier, the response normalizer, and the
// pluggable name/key cache used by reference resolution.
//
// The concrete client lives in internal/client and is constructed through
// pkg/vergeclient. Per-resource clients are thin callers of the request
// pipeline: they supply an endpoint, a field projection, and filter
// criteria, and receive back normalized records.
//
// # Filters
//
// Selection criteria are built as closed tagged variants and rendered into
// the platform's textual filter grammar:
//
//	verge.Render(
//		verge.Equals("name", "web01"),
//		verge.Any(verge.Equals("status", "running"), verge.Equals("status", "paused")),
//	)
//	// => "name eq 'web01' and (status eq 'running' or status eq 'paused')"
//
// # References
//
// Every resource instance is addressable as "family/key" (for example
// "vms/42"). Reference values marshal to and from that literal string in
// JSON request bodies.
package verge
