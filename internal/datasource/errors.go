package datasource

import "errors"

var (
	// ErrNotOpen is reported for requests issued before OpenDB
	ErrNotOpen = errors.New("data source is not open")

	// ErrAlreadyOpen is returned by a second OpenDB
	ErrAlreadyOpen = errors.New("data source is already open")

	// ErrClosed is reported for requests issued after CloseDB
	ErrClosed = errors.New("data source is closed")

	// ErrDataNotAvailable is what the Await helpers return for OnDataNotAvailable
	ErrDataNotAvailable = errors.New("data not available")
)
