package array

// Promote returns the common type able to represent values of both a and b.
//
// Types are totally ordered by promotion rank (the DataType constant order):
// boolean ranks below every integer, integers below floats, floats below
// complex; within a category, a wider type outranks a narrower one, an
// unsigned type outranks the signed type of the same width, and a
// platform-default type outranks its fixed-width equivalent. Promote picks
// the operand with the higher rank, so it is associative and commutative
// over any sequence of operands.
func Promote(a, b DataType) DataType {
	if b > a {
		return b
	}
	return a
}

// PromoteAll folds Promote left-to-right over the given types. Calling it
// with no arguments returns Bool, the lowest-ranked type.
func PromoteAll(types ...DataType) DataType {
	dt := Bool
	for _, t := range types {
		dt = Promote(dt, t)
	}
	return dt
}
