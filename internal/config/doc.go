// Package config provides configuration loading, merging, and validation
// facilities for the book fetcher.
//
// Configuration is assembled from multiple sources. Sources are merged with
// mergo, which only fills fields that are still zero, so the first source
// that sets a value wins:
//  1. Environment variables (BOOKS_ prefix)
//  2. Command-line flags
//  3. JSON config file (-c / -config / BOOKS_CONFIG)
//  4. Built-in defaults
//
// The entry point is [GetClientConfig].
package config
