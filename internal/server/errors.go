package server

import "errors"

// ErrBindFailure is returned when the listening socket cannot be bound, for
// example because the port is already in use or permission is denied.
var ErrBindFailure = errors.New("bind failure")
