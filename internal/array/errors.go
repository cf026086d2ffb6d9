package array

import (
	"errors"
	"fmt"
)

// Common errors. Structured error types below wrap these sentinels, so
// callers can match with errors.Is and still read the detail fields.
var (
	ErrUnknownType     = errors.New("unknown data type")
	ErrAllocation      = errors.New("allocation exceeds addressable memory")
	ErrShapeMismatch   = errors.New("ragged nested sequence")
	ErrInvalidRange    = errors.New("invalid range")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrRankMismatch    = errors.New("rank mismatch")
)

// UnknownTypeError reports a type designator that does not resolve to any
// supported DataType.
type UnknownTypeError struct {
	Designator any
}

func (e *UnknownTypeError) Error() string {
	if s, ok := e.Designator.(string); ok {
		return fmt.Sprintf("unknown data type %q", s)
	}
	return fmt.Sprintf("unknown data type designator %v (%T)", e.Designator, e.Designator)
}

func (e *UnknownTypeError) Unwrap() error { return ErrUnknownType }

// AllocationError reports a requested array whose element count or byte
// size overflows the addressable range.
type AllocationError struct {
	Shape Shape
	DType DataType
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("cannot allocate array of shape %v and dtype %s: size overflows addressable memory", e.Shape, e.DType)
}

func (e *AllocationError) Unwrap() error { return ErrAllocation }

// ShapeMismatchError reports a ragged nested literal: a sequence at the
// given depth whose length disagrees with its siblings.
type ShapeMismatchError struct {
	Depth int
	Want  int
	Got   int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("ragged nested sequence at depth %d: expected length %d, got %d", e.Depth, e.Want, e.Got)
}

func (e *ShapeMismatchError) Unwrap() error { return ErrShapeMismatch }

// InvalidRangeError reports degenerate range parameters, such as a zero
// step or an interval that contains no values.
type InvalidRangeError struct {
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: %s", e.Reason)
}

func (e *InvalidRangeError) Unwrap() error { return ErrInvalidRange }

// IndexError reports a coordinate outside the bounds of its dimension,
// after negative-index remapping. Index holds the coordinate as given by
// the caller, before remapping.
type IndexError struct {
	Dim    int
	Index  int
	Extent int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for dimension %d (extent %d)", e.Index, e.Dim, e.Extent)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// RankError reports a coordinate tuple whose arity differs from the
// array's number of dimensions.
type RankError struct {
	Want int
	Got  int
}

func (e *RankError) Error() string {
	return fmt.Sprintf("expected %d indices, got %d", e.Want, e.Got)
}

func (e *RankError) Unwrap() error { return ErrRankMismatch }
