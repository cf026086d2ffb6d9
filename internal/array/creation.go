package array

import (
	"fmt"
	"math"
	"reflect"

	"github.com/numgo-ml/numgo/internal/random"
)

// Empty allocates an array of the given shape and dtype without defining
// its contents: callers must treat the initial buffer as garbage and
// overwrite it before reading.
func Empty(shape Shape, dtype DataType) (*Array, error) {
	return New(shape, dtype)
}

// Zeros creates an array filled with the additive identity of the dtype.
//
// Example:
//
//	a, err := array.Zeros(array.Shape{3, 4}, array.Float64)
func Zeros(shape Shape, dtype DataType) (*Array, error) {
	// make() zero-fills the buffer, which is the additive identity for
	// every supported dtype.
	return New(shape, dtype)
}

// Ones creates an array filled with the multiplicative identity of the
// dtype (true for Bool).
func Ones(shape Shape, dtype DataType) (*Array, error) {
	return Full(shape, 1, dtype)
}

// Full creates an array with every element set to value, coerced to the
// dtype.
//
// Example:
//
//	a, err := array.Full(array.Shape{3, 3}, 3.14, array.Float32)
func Full(shape Shape, value any, dtype DataType) (*Array, error) {
	a, err := New(shape, dtype)
	if err != nil {
		return nil, err
	}
	if err := a.Fill(value); err != nil {
		return nil, err
	}
	return a, nil
}

// Eye creates an n-by-n array with the multiplicative identity on the
// diagonal and the additive identity everywhere else.
//
// Example:
//
//	a, err := array.Eye(3, array.Float64) // [[1 0 0] [0 1 0] [0 0 1]]
func Eye(n int, dtype DataType) (*Array, error) {
	a, err := Zeros(Shape{n, n}, dtype)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err := a.setScalar(i*(n+1), 1); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Arange creates a one-dimensional array with values start, start+step,
// ... over the half-open interval [start, stop). The step may be negative;
// a zero step or an interval that contains no values fails with an
// InvalidRangeError.
//
// Example:
//
//	a, err := array.Arange(0, 10, 2, array.Int64) // [0 2 4 6 8]
func Arange(start, stop, step float64, dtype DataType) (*Array, error) {
	if step == 0 {
		return nil, &InvalidRangeError{Reason: "arange step must be nonzero"}
	}
	n := int(math.Ceil((stop - start) / step))
	if n <= 0 {
		return nil, &InvalidRangeError{
			Reason: fmt.Sprintf("arange(%v, %v, %v) contains no values", start, stop, step),
		}
	}

	a, err := New(Shape{n}, dtype)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err := a.setScalar(i, start+float64(i)*step); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Linspace creates a one-dimensional array of n values evenly spaced over
// the closed interval [from, to], inclusive of both endpoints. For n == 1
// the single value is from. n < 1 fails with an InvalidRangeError.
//
// Example:
//
//	a, err := array.Linspace(0, 1, 5, array.Float64) // [0 0.25 0.5 0.75 1]
func Linspace(from, to float64, n int, dtype DataType) (*Array, error) {
	if n < 1 {
		return nil, &InvalidRangeError{
			Reason: fmt.Sprintf("linspace needs at least 1 sample, got %d", n),
		}
	}

	a, err := New(Shape{n}, dtype)
	if err != nil {
		return nil, err
	}
	if n == 1 {
		if err := a.setScalar(0, from); err != nil {
			return nil, err
		}
		return a, nil
	}

	step := (to - from) / float64(n-1)
	for i := 0; i < n-1; i++ {
		if err := a.setScalar(i, from+float64(i)*step); err != nil {
			return nil, err
		}
	}
	// Write the endpoint exactly rather than through accumulated spacing.
	if err := a.setScalar(n-1, to); err != nil {
		return nil, err
	}
	return a, nil
}

// FromNested creates an array from a nested Go sequence, one nesting level
// per dimension. The element dtype is inferred by folding Promote over
// every scalar in the literal, so mixing integers and floats yields a
// floating-point array. Sequences with inconsistent lengths at any depth
// fail with a ShapeMismatchError.
//
// Example:
//
//	a, err := array.FromNested([]any{
//	    []any{1, 2, 3},
//	    []any{4, 5, 6.5},
//	}) // shape [2 3], dtype float64
func FromNested(value any) (*Array, error) {
	return fromNested(value, Bool, false)
}

// FromNestedAs is FromNested with an explicit dtype designator (a DataType
// constant or a symbolic name string). Every scalar is coerced to the
// resolved dtype instead of promoted; narrowing coercions truncate toward
// zero.
func FromNestedAs(value any, designator any) (*Array, error) {
	dtype, err := ResolveDType(designator)
	if err != nil {
		return nil, err
	}
	return fromNested(value, dtype, true)
}

func fromNested(value any, dtype DataType, forced bool) (*Array, error) {
	w := &nestedWalker{leafDepth: -1}
	if err := w.walk(value, 0); err != nil {
		return nil, err
	}
	if w.leafDepth < 0 {
		return nil, fmt.Errorf("nested literal must be a non-empty sequence, got %T", value)
	}
	if !forced {
		dtype = w.dtype
	}

	a, err := New(w.shape, dtype)
	if err != nil {
		return nil, err
	}
	for i, s := range w.scalars {
		if err := a.setScalar(i, s); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// nestedWalker traverses a nested literal once, collecting shape, scalars
// in row-major order, and the promoted dtype. leafDepth pins the depth at
// which the first scalar appeared; every other scalar must sit at the same
// depth or the literal is ragged.
type nestedWalker struct {
	shape     Shape
	scalars   []any
	dtype     DataType
	leafDepth int
}

func (w *nestedWalker) walk(value any, depth int) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		if w.leafDepth >= 0 && depth >= w.leafDepth {
			// A sequence nested deeper than previously seen scalars.
			return &ShapeMismatchError{Depth: depth, Want: 0, Got: rv.Len()}
		}
		switch {
		case depth == len(w.shape):
			if rv.Len() == 0 {
				return fmt.Errorf("empty sequence at depth %d: dimensions must be > 0", depth)
			}
			w.shape = append(w.shape, rv.Len())
		case rv.Len() != w.shape[depth]:
			return &ShapeMismatchError{Depth: depth, Want: w.shape[depth], Got: rv.Len()}
		}
		for i := 0; i < rv.Len(); i++ {
			if err := w.walk(rv.Index(i).Interface(), depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	// Scalar leaf.
	if depth == 0 {
		return fmt.Errorf("nested literal must be a sequence, got scalar %T", value)
	}
	st, ok := scalarType(value)
	if !ok {
		return &UnknownTypeError{Designator: value}
	}
	switch {
	case w.leafDepth < 0:
		w.leafDepth = depth
		w.dtype = st
	case depth != w.leafDepth:
		return &ShapeMismatchError{Depth: depth, Want: w.shape[depth], Got: 0}
	default:
		w.dtype = Promote(w.dtype, st)
	}
	w.scalars = append(w.scalars, value)
	return nil
}

// Rand creates an array of the given floating-point dtype with elements
// drawn from the uniform distribution on [0, 1), using the process-wide
// generator.
func Rand(shape Shape, dtype DataType) (*Array, error) {
	return RandFrom(random.Default(), shape, dtype)
}

// RandFrom is Rand drawing from an explicit generator.
func RandFrom(g *random.Generator, shape Shape, dtype DataType) (*Array, error) {
	if !dtype.IsFloat() {
		return nil, fmt.Errorf("rand: dtype %s is not a floating-point type", dtype)
	}
	a, err := New(shape, dtype)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.Size(); i++ {
		if err := a.setScalar(i, g.Float64()); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Randn creates an array of the given floating-point dtype with elements
// drawn from the normal distribution with the given mean and standard
// deviation, using the process-wide generator.
func Randn(shape Shape, mean, std float64, dtype DataType) (*Array, error) {
	return RandnFrom(random.Default(), shape, mean, std, dtype)
}

// RandnFrom is Randn drawing from an explicit generator.
func RandnFrom(g *random.Generator, shape Shape, mean, std float64, dtype DataType) (*Array, error) {
	if !dtype.IsFloat() {
		return nil, fmt.Errorf("randn: dtype %s is not a floating-point type", dtype)
	}
	a, err := New(shape, dtype)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.Size(); i++ {
		if err := a.setScalar(i, g.Normal(mean, std)); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// RandInt creates an array of the given integer dtype with elements drawn
// uniformly from the half-open interval [from, to), using the
// process-wide generator. from >= to fails with an InvalidRangeError.
func RandInt(shape Shape, from, to int64, dtype DataType) (*Array, error) {
	return RandIntFrom(random.Default(), shape, from, to, dtype)
}

// RandIntFrom is RandInt drawing from an explicit generator.
func RandIntFrom(g *random.Generator, shape Shape, from, to int64, dtype DataType) (*Array, error) {
	if !dtype.IsInteger() {
		return nil, fmt.Errorf("randint: dtype %s is not an integer type", dtype)
	}
	if from >= to {
		return nil, &InvalidRangeError{
			Reason: fmt.Sprintf("randint interval [%d, %d) is empty", from, to),
		}
	}
	a, err := New(shape, dtype)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.Size(); i++ {
		if err := a.setScalar(i, g.Int63n(from, to)); err != nil {
			return nil, err
		}
	}
	return a, nil
}
