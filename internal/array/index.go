package array

// Offset resolves a full coordinate tuple against the shape to a row-major
// linear offset, in elements.
//
// The tuple must have exactly one coordinate per dimension; a different
// arity fails with a RankError. A negative coordinate k counts from the
// end of its dimension and is remapped to extent+k. Any coordinate outside
// [0, extent) after remapping fails with an IndexError naming the
// dimension and the coordinate as given.
//
// Offset never allocates and never modifies the shape.
func (s Shape) Offset(indices ...int) (int, error) {
	if len(indices) != len(s) {
		return 0, &RankError{Want: len(s), Got: len(indices)}
	}

	offset := 0
	stride := 1
	for i := len(s) - 1; i >= 0; i-- {
		n := s[i]
		k := indices[i]
		if k < 0 {
			k += n
		}
		if k < 0 || k >= n {
			return 0, &IndexError{Dim: i, Index: indices[i], Extent: n}
		}
		offset += k * stride
		stride *= n
	}
	return offset, nil
}
