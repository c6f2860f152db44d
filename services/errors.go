package services

import "errors"

// ErrNotFound is returned when a lookup matches no row. Handlers translate it
// to a 404 with a resource-specific message; anything else from this package
// is a store failure and surfaces as a generic 500.
var ErrNotFound = errors.New("not found")
