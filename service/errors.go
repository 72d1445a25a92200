package services

import "errors"

// ErrVenueNotFound is returned for ids missing from the current catalog.
var ErrVenueNotFound = errors.New("venue not found")
