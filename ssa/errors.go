package ssa

import "errors"

var (
	// ErrEmptySeries indicates the input series is too short to embed.
	ErrEmptySeries = errors.New("ssa: series must contain at least two observations")
	// ErrInvalidWindowLength indicates the window length is outside [2, N-1].
	ErrInvalidWindowLength = errors.New("ssa: window length must be between 2 and series length minus one")
	// ErrIndexOutOfRange indicates a grouping index outside [1, d].
	ErrIndexOutOfRange = errors.New("ssa: component index out of range")
	// ErrNumericFailure indicates the factorization did not converge or
	// produced non-finite values.
	ErrNumericFailure = errors.New("ssa: numeric factorization failure")
	// ErrShapeMismatch indicates an internal dimension inconsistency between
	// pipeline stages.
	ErrShapeMismatch = errors.New("ssa: shape mismatch between pipeline stages")
)
