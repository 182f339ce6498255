package simulator

import "errors"

// ErrInvalidArgument is returned before any trial runs when the simulation
// count or an army size is out of range.
var ErrInvalidArgument = errors.New("invalid argument")
