// Package core defines shared types and sentinel errors.
package core

import "errors"

// Sentinel errors. Callers match with errors.Is.
var (
	// Interface query errors
	ErrInterfaceNotFound = errors.New("ifreport: interface not found")
	ErrPermissionDenied  = errors.New("ifreport: permission denied")
	ErrQueryFailed       = errors.New("ifreport: interface query failed")

	// Buffer extraction errors
	ErrMalformedBuffer = errors.New("ifreport: malformed interface buffer")

	// Report errors
	ErrUnknownField = errors.New("ifreport: unknown report field")

	// Configuration errors
	ErrConfigInvalid = errors.New("ifreport: invalid configuration")
)
