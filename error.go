package waypoint

import "errors"

var (
	ErrAlreadyStarted = errors.New("already started")
	ErrBadConfig      = errors.New("bad config")
	ErrMissingData    = errors.New("missing data")
	ErrNotValid       = errors.New("invalid")
)
