package array

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numgo-ml/numgo/internal/random"
)

func TestZerosOnesFull(t *testing.T) {
	z, err := Zeros(Shape{2, 3}, Float64)
	require.NoError(t, err)
	for _, v := range z.AsFloat64() {
		assert.Equal(t, 0.0, v)
	}

	o, err := Ones(Shape{2, 3}, Int32)
	require.NoError(t, err)
	for _, v := range o.AsInt32() {
		assert.Equal(t, int32(1), v)
	}

	ob, err := Ones(Shape{4}, Bool)
	require.NoError(t, err)
	for _, v := range ob.AsBool() {
		assert.True(t, v)
	}

	f, err := Full(Shape{3}, 3.14, Float32)
	require.NoError(t, err)
	for _, v := range f.AsFloat32() {
		assert.Equal(t, float32(3.14), v)
	}
}

func TestEmpty(t *testing.T) {
	a, err := Empty(Shape{5, 5}, Float16)
	require.NoError(t, err)
	assert.Equal(t, 25, a.Size())
	assert.Equal(t, 50, a.NumBytes())
}

func TestEye(t *testing.T) {
	a, err := Eye(3, Float64)
	require.NoError(t, err)

	want, err := FromNested([]any{
		[]any{1.0, 0.0, 0.0},
		[]any{0.0, 1.0, 0.0},
		[]any{0.0, 0.0, 1.0},
	})
	require.NoError(t, err)
	assert.True(t, a.Equal(want))
}

func TestEyeIntDType(t *testing.T) {
	a, err := Eye(2, Int64)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 0, 0, 1}, a.AsInt64())
}

func TestArange(t *testing.T) {
	a, err := Arange(0, 10, 2, Int64)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, 4, 6, 8}, a.AsInt64())

	b, err := Arange(0, 10, 3, Int64)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 3, 6, 9}, b.AsInt64())
}

func TestArangeNegativeStep(t *testing.T) {
	a, err := Arange(5, 0, -1, Float64)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 4, 3, 2, 1}, a.AsFloat64())
}

func TestArangeFractionalStep(t *testing.T) {
	a, err := Arange(0, 1, 0.25, Float64)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75}, a.AsFloat64())
}

func TestArangeInvalidRange(t *testing.T) {
	_, err := Arange(0, 10, 0, Float64)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRange)

	// An interval the step walks away from contains no values.
	_, err = Arange(0, 10, -1, Float64)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestLinspace(t *testing.T) {
	a, err := Linspace(0, 1, 5, Float64)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1.0}, a.AsFloat64())
}

func TestLinspaceEndpointsExact(t *testing.T) {
	a, err := Linspace(-2.5, 7.5, 11, Float64)
	require.NoError(t, err)

	data := a.AsFloat64()
	assert.Equal(t, -2.5, data[0])
	assert.Equal(t, 7.5, data[len(data)-1], "upper endpoint must be written exactly")
}

func TestLinspaceSingleSample(t *testing.T) {
	a, err := Linspace(3, 9, 1, Float64)
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, a.AsFloat64())
}

func TestLinspaceInvalid(t *testing.T) {
	_, err := Linspace(0, 1, 0, Float64)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestFromNestedInfersDType(t *testing.T) {
	// One float promotes the whole literal to floating point.
	a, err := FromNested([]any{2, 4, 6, 8.1})
	require.NoError(t, err)
	assert.Equal(t, Float64, a.DType())
	assert.Equal(t, []float64{2, 4, 6, 8.1}, a.AsFloat64())

	b, err := FromNested([]any{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, Int, b.DType())

	c, err := FromNested([]any{true, false})
	require.NoError(t, err)
	assert.Equal(t, Bool, c.DType())

	d, err := FromNested([]any{1, complex(2, 3)})
	require.NoError(t, err)
	assert.Equal(t, Complex128, d.DType())
}

func TestFromNestedAsTruncates(t *testing.T) {
	a, err := FromNestedAs([]any{2, 4, 6, 8.1}, Int64)
	require.NoError(t, err)
	assert.Equal(t, Int64, a.DType())
	assert.Equal(t, []int64{2, 4, 6, 8}, a.AsInt64())
}

func TestFromNestedAsNameDesignator(t *testing.T) {
	a, err := FromNestedAs([]any{1, 2, 3}, "float32")
	require.NoError(t, err)
	assert.Equal(t, Float32, a.DType())

	_, err = FromNestedAs([]any{1, 2, 3}, "float128")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestFromNestedShape(t *testing.T) {
	a, err := FromNested([]any{
		[]any{[]any{1, 2}, []any{3, 4}},
		[]any{[]any{5, 6}, []any{7, 8}},
	})
	require.NoError(t, err)
	assert.True(t, a.Shape().Equal(Shape{2, 2, 2}))

	v, err := a.At(1, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, v)
}

func TestFromNestedTypedSlices(t *testing.T) {
	a, err := FromNested([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, Float64, a.DType())
	assert.True(t, a.Shape().Equal(Shape{2, 2}))

	b, err := FromNested([]int32{5, 6, 7})
	require.NoError(t, err)
	assert.Equal(t, Int32, b.DType())
	assert.Equal(t, []int32{5, 6, 7}, b.AsInt32())
}

func TestFromNestedRagged(t *testing.T) {
	_, err := FromNested([]any{
		[]any{1, 2, 3},
		[]any{4, 5},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	var sme *ShapeMismatchError
	require.True(t, errors.As(err, &sme))
	assert.Equal(t, 1, sme.Depth)
	assert.Equal(t, 3, sme.Want)
	assert.Equal(t, 2, sme.Got)
}

func TestFromNestedMixedDepth(t *testing.T) {
	// A scalar next to a sequence is ragged, not padded.
	_, err := FromNested([]any{1, []any{2, 3}})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = FromNested([]any{[]any{2, 3}, 1})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestFromNestedRejectsScalarsAndEmpty(t *testing.T) {
	_, err := FromNested(42)
	assert.Error(t, err)

	_, err = FromNested([]any{})
	assert.Error(t, err)

	_, err = FromNested([]any{"one", "two"})
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestRandBounds(t *testing.T) {
	g := random.New(7)
	a, err := RandFrom(g, Shape{10, 10}, Float64)
	require.NoError(t, err)

	for _, v := range a.AsFloat64() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestRandRejectsNonFloat(t *testing.T) {
	_, err := Rand(Shape{2}, Int32)
	assert.Error(t, err)

	_, err = Randn(Shape{2}, 0, 1, Bool)
	assert.Error(t, err)
}

func TestRandReproducible(t *testing.T) {
	// Same seed, same call sequence: bit-for-bit identical arrays.
	a, err := RandFrom(random.New(0), Shape{4, 4}, Float64)
	require.NoError(t, err)
	b, err := RandFrom(random.New(0), Shape{4, 4}, Float64)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	c, err := RandFrom(random.New(1), Shape{4, 4}, Float64)
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}

func TestRandnReproducibleAfterReseed(t *testing.T) {
	g := random.New(0)
	a, err := RandnFrom(g, Shape{3, 3}, 5, 2, Float64)
	require.NoError(t, err)

	g.Seed(0)
	b, err := RandnFrom(g, Shape{3, 3}, 5, 2, Float64)
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "reseeding must replay the draw sequence")
}

func TestRandInt(t *testing.T) {
	g := random.New(3)
	a, err := RandIntFrom(g, Shape{100}, 10, 20, Int64)
	require.NoError(t, err)

	for _, v := range a.AsInt64() {
		assert.GreaterOrEqual(t, v, int64(10))
		assert.Less(t, v, int64(20), "interval is half-open")
	}
}

func TestRandIntErrors(t *testing.T) {
	_, err := RandInt(Shape{2}, 5, 5, Int64)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = RandInt(Shape{2}, 0, 10, Float64)
	assert.Error(t, err)
}
