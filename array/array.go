// Copyright 2026 NumGo Array Engine. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides the public API of the numgo array engine: a
// homogeneous, typed, n-dimensional numeric container.
//
// The package exposes:
//   - Array: a fixed-shape, fixed-dtype container over a flat buffer
//   - DataType: the closed set of supported element types with promotion
//   - Creation routines: literals, fills, ranges, random draws, identity
//   - Positional indexing with negative-index wraparound
//
// Example:
//
//	a, err := array.FromNested([]any{
//	    []any{1, 2, 3},
//	    []any{4, 5, 6.5},
//	})
//	// a.Shape() == Shape{2, 3}, a.DType() == Float64
//	v, err := a.At(-1, -1) // 6.5
package array

import (
	"github.com/numgo-ml/numgo/internal/array"
	"github.com/numgo-ml/numgo/internal/random"
)

// Array is a homogeneous n-dimensional array over a flat contiguous
// buffer. Shape and dtype are fixed for the array's lifetime; elements
// mutate only through indexed writes.
type Array = array.Array

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} is a 3-dimensional array with extents 2×3×4.
type Shape = array.Shape

// DataType identifies the element type of an array.
type DataType = array.DataType

// TypeKind groups element types into promotion categories.
type TypeKind = array.TypeKind

// Element type constants. Int, Uint, Float and Complex are the
// platform-default kinds.
const (
	Bool       DataType = array.Bool
	Int8       DataType = array.Int8
	Uint8      DataType = array.Uint8
	Int16      DataType = array.Int16
	Uint16     DataType = array.Uint16
	Int32      DataType = array.Int32
	Uint32     DataType = array.Uint32
	Int64      DataType = array.Int64
	Int        DataType = array.Int
	Uint64     DataType = array.Uint64
	Uint       DataType = array.Uint
	Float16    DataType = array.Float16
	Float32    DataType = array.Float32
	Float64    DataType = array.Float64
	Float      DataType = array.Float
	Complex64  DataType = array.Complex64
	Complex128 DataType = array.Complex128
	Complex    DataType = array.Complex
)

// Promotion category constants.
const (
	KindBool    TypeKind = array.KindBool
	KindInt     TypeKind = array.KindInt
	KindUint    TypeKind = array.KindUint
	KindFloat   TypeKind = array.KindFloat
	KindComplex TypeKind = array.KindComplex
)

// Errors. The structured types carry detail fields (offending dimension,
// coordinate, designator); match them with errors.Is against the
// sentinels or errors.As against the types.
var (
	ErrUnknownType     = array.ErrUnknownType
	ErrAllocation      = array.ErrAllocation
	ErrShapeMismatch   = array.ErrShapeMismatch
	ErrInvalidRange    = array.ErrInvalidRange
	ErrIndexOutOfRange = array.ErrIndexOutOfRange
	ErrRankMismatch    = array.ErrRankMismatch
)

// Structured error types.
type (
	UnknownTypeError   = array.UnknownTypeError
	AllocationError    = array.AllocationError
	ShapeMismatchError = array.ShapeMismatchError
	InvalidRangeError  = array.InvalidRangeError
	IndexError         = array.IndexError
	RankError          = array.RankError
)

// Type registry

// ParseDType resolves a symbolic type name ("bool", "int32", "float64",
// ...) to its DataType.
func ParseDType(name string) (DataType, error) {
	return array.ParseDType(name)
}

// ResolveDType resolves a type designator (a DataType constant or a
// symbolic name string) to a DataType.
func ResolveDType(designator any) (DataType, error) {
	return array.ResolveDType(designator)
}

// Promote returns the common type able to represent values of both a and
// b. Promote is associative and commutative.
func Promote(a, b DataType) DataType {
	return array.Promote(a, b)
}

// PromoteAll folds Promote left-to-right over the given types.
func PromoteAll(types ...DataType) DataType {
	return array.PromoteAll(types...)
}

// Creation functions

// FromNested creates an array from a nested Go sequence, inferring the
// dtype by promotion over every scalar.
//
// Example:
//
//	a, err := array.FromNested([]any{[]any{1, 2}, []any{3, 4}})
func FromNested(value any) (*Array, error) {
	return array.FromNested(value)
}

// FromNestedAs is FromNested with an explicit dtype designator; every
// scalar is coerced to it, truncating toward zero on narrowing.
func FromNestedAs(value any, designator any) (*Array, error) {
	return array.FromNestedAs(value, designator)
}

// Zeros creates an array filled with the additive identity of the dtype.
//
// Example:
//
//	a, err := array.Zeros(array.Shape{2, 3}, array.Float64)
func Zeros(shape Shape, dtype DataType) (*Array, error) {
	return array.Zeros(shape, dtype)
}

// Ones creates an array filled with the multiplicative identity of the
// dtype.
func Ones(shape Shape, dtype DataType) (*Array, error) {
	return array.Ones(shape, dtype)
}

// Full creates an array with every element set to value, coerced to the
// dtype.
func Full(shape Shape, value any, dtype DataType) (*Array, error) {
	return array.Full(shape, value, dtype)
}

// Empty allocates an array without defining its contents.
func Empty(shape Shape, dtype DataType) (*Array, error) {
	return array.Empty(shape, dtype)
}

// Eye creates an n-by-n identity array.
//
// Example:
//
//	a, err := array.Eye(3, array.Float64) // [[1 0 0] [0 1 0] [0 0 1]]
func Eye(n int, dtype DataType) (*Array, error) {
	return array.Eye(n, dtype)
}

// Arange creates a 1-dimensional array over the half-open interval
// [start, stop) with the given step.
//
// Example:
//
//	a, err := array.Arange(0, 10, 2, array.Int64) // [0 2 4 6 8]
func Arange(start, stop, step float64, dtype DataType) (*Array, error) {
	return array.Arange(start, stop, step, dtype)
}

// Linspace creates a 1-dimensional array of n values evenly spaced over
// the closed interval [from, to].
//
// Example:
//
//	a, err := array.Linspace(0, 1, 5, array.Float64) // [0 0.25 0.5 0.75 1]
func Linspace(from, to float64, n int, dtype DataType) (*Array, error) {
	return array.Linspace(from, to, n, dtype)
}

// Rand creates an array with elements drawn uniformly from [0, 1) using
// the process-wide generator (see package random).
func Rand(shape Shape, dtype DataType) (*Array, error) {
	return array.Rand(shape, dtype)
}

// RandFrom is Rand drawing from an explicit generator.
func RandFrom(g *random.Generator, shape Shape, dtype DataType) (*Array, error) {
	return array.RandFrom(g, shape, dtype)
}

// Randn creates an array with elements drawn from the normal distribution
// with the given mean and standard deviation, using the process-wide
// generator.
func Randn(shape Shape, mean, std float64, dtype DataType) (*Array, error) {
	return array.Randn(shape, mean, std, dtype)
}

// RandnFrom is Randn drawing from an explicit generator.
func RandnFrom(g *random.Generator, shape Shape, mean, std float64, dtype DataType) (*Array, error) {
	return array.RandnFrom(g, shape, mean, std, dtype)
}

// RandInt creates an integer array with elements drawn uniformly from the
// half-open interval [from, to), using the process-wide generator.
func RandInt(shape Shape, from, to int64, dtype DataType) (*Array, error) {
	return array.RandInt(shape, from, to, dtype)
}

// RandIntFrom is RandInt drawing from an explicit generator.
func RandIntFrom(g *random.Generator, shape Shape, from, to int64, dtype DataType) (*Array, error) {
	return array.RandIntFrom(g, shape, from, to, dtype)
}
