package statserrors

import "errors"

var (
	ErrTruncatedFrame  = errors.New("truncated sample frame")
	ErrUnknownKind     = errors.New("unknown sample kind")
	ErrMalformedSample = errors.New("malformed sample")
	ErrKindMismatch    = errors.New("sample kind does not match accumulator") // e.g. a pair fed to a univariate accumulator
	ErrInvalidConfig   = errors.New("invalid configuration")
)
