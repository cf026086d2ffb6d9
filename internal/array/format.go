package array

import "fmt"

// ToNested returns the array contents as nested []any slices, one nesting
// level per dimension, in row-major order. It is the inverse of
// FromNested up to scalar type: elements come back as the native Go values
// getScalar produces.
func (a *Array) ToNested() any {
	return a.nested(0, 0)
}

func (a *Array) nested(dim, offset int) any {
	n := a.shape[dim]
	out := make([]any, n)
	if dim == len(a.shape)-1 {
		for i := 0; i < n; i++ {
			out[i] = a.getScalar(offset + i)
		}
		return out
	}
	for i := 0; i < n; i++ {
		out[i] = a.nested(dim+1, offset+i*a.stride[dim])
	}
	return out
}

// String returns a human-readable representation of the array. Small
// arrays include their contents.
func (a *Array) String() string {
	if a.Size() <= 64 {
		return fmt.Sprintf("Array[%s]%v %v", a.dtype, a.shape, a.ToNested())
	}
	return fmt.Sprintf("Array[%s]%v", a.dtype, a.shape)
}
