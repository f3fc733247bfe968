package repository

import "errors"

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = errors.New("not found")

// ErrAmbiguousID is returned when an ID prefix matches more than one row.
var ErrAmbiguousID = errors.New("ambiguous id prefix")
