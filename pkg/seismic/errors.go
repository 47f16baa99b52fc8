package seismic

import "errors"

// ErrOutOfRange indicates an indexed read outside the valid sample range.
// A trace marked dead has no valid range, so reads against dead data also
// fail with this error regardless of the index.
var ErrOutOfRange = errors.New("sample index out of range")

// ErrIntervalMismatch indicates two traces cannot be time-aligned because
// their sample intervals differ (or an interval is nonpositive).
var ErrIntervalMismatch = errors.New("incompatible sample intervals")

// ErrNegativeLength indicates a constructor was asked for a negative
// number of samples.
var ErrNegativeLength = errors.New("negative sample count")

// ErrKeyNotFound indicates a metadata lookup for a key that is not set.
var ErrKeyNotFound = errors.New("metadata key not found")
