// Package common provides shared functionality and constants used by the
// curve adapter.
//
// This package includes:
//   - Shared constants (group order)
//   - Internal error definitions
//
// This is an internal package not intended for direct use by applications.
// It supports the implementation of the public packages.
package common
