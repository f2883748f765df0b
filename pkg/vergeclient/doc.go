// Package vergeclient is the main entry point for creating VergeOS
// management API clients. It normalizes endpoints and delegates to the
// internal client implementation.
package vergeclient
