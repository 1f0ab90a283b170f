// Package config provides configuration loading, merging, and validation
// facilities for the work-link client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//
// The main entry point is [GetClientConfig], which projects the merged
// [StructuredConfig] into the client-specific view and validates it.
package config
