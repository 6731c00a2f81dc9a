package sentinel

import "errors"

// Sentinel errors for infrastructure facts. The catalog and other lookups
// return these (optionally wrapped) so services can translate them into
// domain errors.
//
// Empty result sets are not facts worth an error: filters return empty slices.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
