package s2p

import "errors"

// Errors returned by network construction and accessors.
var (
	ErrMalformedInput   = errors.New("s2p: malformed input")
	ErrUnknownParameter = errors.New("s2p: unknown parameter")
	ErrSingularNetwork  = errors.New("s2p: S21 is zero, T-parameters are undefined")
	ErrInvalidPoints    = errors.New("s2p: number of points must be >= 1")
	ErrIndexOutOfRange  = errors.New("s2p: point index out of range")
)
