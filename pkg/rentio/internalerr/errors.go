package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound          = errors.New("not found")
	ErrMalformedRow      = errors.New("malformed catalog row")
	ErrUnresolvedKeyword = errors.New("keyword has no index entry")
	ErrUnknownFormat     = errors.New("unknown catalog format")
	ErrInvalidConfig     = errors.New("invalid configuration")
)
