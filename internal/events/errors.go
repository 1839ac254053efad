package events

import "errors"

// ErrClosed is returned by SendEvent after the broker has been closed
var ErrClosed = errors.New("event broker closed")
