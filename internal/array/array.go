package array

import (
	"bytes"
	"fmt"
	"math"
	"unsafe"
)

// Array is a homogeneous n-dimensional array over a flat contiguous
// buffer. Shape and dtype are fixed at construction; the only mutation an
// Array supports afterwards is element-wise writing through SetAt, Fill or
// a typed view.
//
// An Array is not safe for concurrent mutation. Concurrent writes to the
// same Array must be synchronized by the caller.
type Array struct {
	data   []byte
	shape  Shape
	stride []int // row-major, in elements; cached from shape
	dtype  DataType
}

// New allocates an array of the given shape and dtype. The shape must be
// non-empty with all extents > 0. Allocation fails with an AllocationError
// if the element count or byte size overflows int; the buffer contents are
// otherwise unspecified (see Empty for the creation-path contract).
func New(shape Shape, dtype DataType) (*Array, error) {
	if _, err := ResolveDType(dtype); err != nil {
		return nil, err
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	itemSize := dtype.Size()
	numElements := 1
	for _, dim := range shape {
		if numElements > math.MaxInt/dim {
			return nil, &AllocationError{Shape: shape.Clone(), DType: dtype}
		}
		numElements *= dim
	}
	if numElements > math.MaxInt/itemSize {
		return nil, &AllocationError{Shape: shape.Clone(), DType: dtype}
	}

	return &Array{
		data:   make([]byte, numElements*itemSize),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// Shape returns the array's shape.
func (a *Array) Shape() Shape {
	return a.shape
}

// Strides returns the array's row-major strides, in elements.
func (a *Array) Strides() []int {
	return a.stride
}

// DType returns the array's element type.
func (a *Array) DType() DataType {
	return a.dtype
}

// NDim returns the number of dimensions.
func (a *Array) NDim() int {
	return len(a.shape)
}

// Size returns the total number of elements.
func (a *Array) Size() int {
	return a.shape.NumElements()
}

// ItemSize returns the byte width of one element.
func (a *Array) ItemSize() int {
	return a.dtype.Size()
}

// NumBytes returns the total buffer size in bytes.
func (a *Array) NumBytes() int {
	return a.Size() * a.ItemSize()
}

// Bytes returns the raw byte buffer.
// WARNING: Direct access to underlying memory. Use with caution.
func (a *Array) Bytes() []byte {
	return a.data
}

// AsBool interprets the buffer as []bool.
// Panics if the array's dtype is not Bool.
func (a *Array) AsBool() []bool {
	if a.dtype != Bool {
		panic(fmt.Sprintf("array dtype is %s, not bool", a.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by Size()
	return unsafe.Slice((*bool)(unsafe.Pointer(&a.data[0])), a.Size())
}

// AsInt8 interprets the buffer as []int8.
// Panics if the array's dtype is not Int8.
func (a *Array) AsInt8() []int8 {
	if a.dtype != Int8 {
		panic(fmt.Sprintf("array dtype is %s, not int8", a.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by Size()
	return unsafe.Slice((*int8)(unsafe.Pointer(&a.data[0])), a.Size())
}

// AsUint8 interprets the buffer as []uint8.
// Panics if the array's dtype is not Uint8.
func (a *Array) AsUint8() []uint8 {
	if a.dtype != Uint8 {
		panic(fmt.Sprintf("array dtype is %s, not uint8", a.dtype))
	}
	return a.data // Already []byte = []uint8
}

// AsInt16 interprets the buffer as []int16.
// Panics if the array's dtype is not Int16.
func (a *Array) AsInt16() []int16 {
	if a.dtype != Int16 {
		panic(fmt.Sprintf("array dtype is %s, not int16", a.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by Size()
	return unsafe.Slice((*int16)(unsafe.Pointer(&a.data[0])), a.Size())
}

// AsUint16 interprets the buffer as []uint16.
// Panics if the array's dtype is not Uint16.
func (a *Array) AsUint16() []uint16 {
	if a.dtype != Uint16 {
		panic(fmt.Sprintf("array dtype is %s, not uint16", a.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by Size()
	return unsafe.Slice((*uint16)(unsafe.Pointer(&a.data[0])), a.Size())
}

// AsInt32 interprets the buffer as []int32.
// Panics if the array's dtype is not Int32.
func (a *Array) AsInt32() []int32 {
	if a.dtype != Int32 {
		panic(fmt.Sprintf("array dtype is %s, not int32", a.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by Size()
	return unsafe.Slice((*int32)(unsafe.Pointer(&a.data[0])), a.Size())
}

// AsUint32 interprets the buffer as []uint32.
// Panics if the array's dtype is not Uint32.
func (a *Array) AsUint32() []uint32 {
	if a.dtype != Uint32 {
		panic(fmt.Sprintf("array dtype is %s, not uint32", a.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by Size()
	return unsafe.Slice((*uint32)(unsafe.Pointer(&a.data[0])), a.Size())
}

// AsInt64 interprets the buffer as []int64.
// Panics if the array's dtype is not Int64.
func (a *Array) AsInt64() []int64 {
	if a.dtype != Int64 {
		panic(fmt.Sprintf("array dtype is %s, not int64", a.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by Size()
	return unsafe.Slice((*int64)(unsafe.Pointer(&a.data[0])), a.Size())
}

// AsInt interprets the buffer as []int.
// Panics if the array's dtype is not the platform-default Int.
func (a *Array) AsInt() []int {
	if a.dtype != Int {
		panic(fmt.Sprintf("array dtype is %s, not int", a.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by Size()
	return unsafe.Slice((*int)(unsafe.Pointer(&a.data[0])), a.Size())
}

// AsUint64 interprets the buffer as []uint64.
// Panics if the array's dtype is not Uint64.
func (a *Array) AsUint64() []uint64 {
	if a.dtype != Uint64 {
		panic(fmt.Sprintf("array dtype is %s, not uint64", a.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by Size()
	return unsafe.Slice((*uint64)(unsafe.Pointer(&a.data[0])), a.Size())
}

// AsUint interprets the buffer as []uint.
// Panics if the array's dtype is not the platform-default Uint.
func (a *Array) AsUint() []uint {
	if a.dtype != Uint {
		panic(fmt.Sprintf("array dtype is %s, not uint", a.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by Size()
	return unsafe.Slice((*uint)(unsafe.Pointer(&a.data[0])), a.Size())
}

// AsFloat16 interprets the buffer as raw half-precision bit patterns.
// Panics if the array's dtype is not Float16.
func (a *Array) AsFloat16() []uint16 {
	if a.dtype != Float16 {
		panic(fmt.Sprintf("array dtype is %s, not float16", a.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by Size()
	return unsafe.Slice((*uint16)(unsafe.Pointer(&a.data[0])), a.Size())
}

// AsFloat32 interprets the buffer as []float32.
// Panics if the array's dtype is not Float32.
func (a *Array) AsFloat32() []float32 {
	if a.dtype != Float32 {
		panic(fmt.Sprintf("array dtype is %s, not float32", a.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by Size()
	return unsafe.Slice((*float32)(unsafe.Pointer(&a.data[0])), a.Size())
}

// AsFloat64 interprets the buffer as []float64.
// Panics unless the array's dtype is Float64 or the platform-default
// Float, which shares its representation.
func (a *Array) AsFloat64() []float64 {
	if a.dtype != Float64 && a.dtype != Float {
		panic(fmt.Sprintf("array dtype is %s, not float64", a.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by Size()
	return unsafe.Slice((*float64)(unsafe.Pointer(&a.data[0])), a.Size())
}

// AsComplex64 interprets the buffer as []complex64.
// Panics if the array's dtype is not Complex64.
func (a *Array) AsComplex64() []complex64 {
	if a.dtype != Complex64 {
		panic(fmt.Sprintf("array dtype is %s, not complex64", a.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by Size()
	return unsafe.Slice((*complex64)(unsafe.Pointer(&a.data[0])), a.Size())
}

// AsComplex128 interprets the buffer as []complex128.
// Panics unless the array's dtype is Complex128 or the platform-default
// Complex, which shares its representation.
func (a *Array) AsComplex128() []complex128 {
	if a.dtype != Complex128 && a.dtype != Complex {
		panic(fmt.Sprintf("array dtype is %s, not complex128", a.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by Size()
	return unsafe.Slice((*complex128)(unsafe.Pointer(&a.data[0])), a.Size())
}

// At returns the element at the given coordinates as a native Go value.
// Negative coordinates count from the end of their dimension. Float16
// elements decode to float32.
//
// Example:
//
//	a, _ := array.Zeros(array.Shape{3, 4}, array.Float64)
//	v, err := a.At(1, -1) // Row 1, last column
func (a *Array) At(indices ...int) (any, error) {
	offset, err := a.shape.Offset(indices...)
	if err != nil {
		return nil, err
	}
	return a.getScalar(offset), nil
}

// SetAt writes a scalar value at the given coordinates, coercing it to the
// array's dtype. Narrowing coercions truncate toward zero. Negative
// coordinates count from the end of their dimension.
func (a *Array) SetAt(value any, indices ...int) error {
	offset, err := a.shape.Offset(indices...)
	if err != nil {
		return err
	}
	return a.setScalar(offset, value)
}

// Item returns the value of a one-element array.
func (a *Array) Item() (any, error) {
	if a.Size() != 1 {
		return nil, fmt.Errorf("Item only works for one-element arrays, got shape %v", a.shape)
	}
	return a.getScalar(0), nil
}

// Fill sets every element to the given scalar, coerced to the array's
// dtype.
func (a *Array) Fill(value any) error {
	if err := a.setScalar(0, value); err != nil {
		return err
	}
	// Replicate the encoded first element instead of re-coercing per slot.
	item := a.ItemSize()
	for i := 1; i < a.Size(); i++ {
		copy(a.data[i*item:(i+1)*item], a.data[:item])
	}
	return nil
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	clone := &Array{
		data:   make([]byte, len(a.data)),
		shape:  a.shape.Clone(),
		stride: append([]int(nil), a.stride...),
		dtype:  a.dtype,
	}
	copy(clone.data, a.data)
	return clone
}

// Equal reports whether two arrays have the same shape, dtype and
// element-wise contents.
func (a *Array) Equal(other *Array) bool {
	if other == nil {
		return false
	}
	return a.dtype == other.dtype &&
		a.shape.Equal(other.shape) &&
		bytes.Equal(a.data, other.data)
}

// AsType returns a copy of the array cast to the given dtype. Widening
// casts are lossless; narrowing casts truncate toward zero (float->int)
// or drop the imaginary part (complex->real).
func (a *Array) AsType(dtype DataType) (*Array, error) {
	out, err := New(a.shape, dtype)
	if err != nil {
		return nil, err
	}
	if dtype == a.dtype {
		copy(out.data, a.data)
		return out, nil
	}
	for i := 0; i < a.Size(); i++ {
		if err := out.setScalar(i, a.getScalar(i)); err != nil {
			return nil, err
		}
	}
	return out, nil
}
