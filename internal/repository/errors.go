package repository

import "errors"

// ErrNoUniversity is returned when a user exists but never got matched to a
// university (e.g. registered with an unrecognized email domain).
var ErrNoUniversity = errors.New("user has no university")
