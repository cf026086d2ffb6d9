package array

// Scalar classification and coercion. Nested-literal construction and
// generic element access move values through the conversions below; every
// narrowing conversion truncates toward zero (Go conversion semantics),
// never rounds and never fails.

// scalarType classifies a Go scalar value as the DataType it natively
// carries. Go literals default to int, float64 and complex128, so an
// untyped literal like 8.1 classifies as Float64.
func scalarType(v any) (DataType, bool) {
	switch v.(type) {
	case bool:
		return Bool, true
	case int8:
		return Int8, true
	case uint8:
		return Uint8, true
	case int16:
		return Int16, true
	case uint16:
		return Uint16, true
	case int32:
		return Int32, true
	case uint32:
		return Uint32, true
	case int64:
		return Int64, true
	case int:
		return Int, true
	case uint64:
		return Uint64, true
	case uint:
		return Uint, true
	case float32:
		return Float32, true
	case float64:
		return Float64, true
	case complex64:
		return Complex64, true
	case complex128:
		return Complex128, true
	default:
		return 0, false
	}
}

// toFloat64 converts any supported scalar to float64. Complex values keep
// only their real part.
func toFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case int8:
		return float64(x), true
	case uint8:
		return float64(x), true
	case int16:
		return float64(x), true
	case uint16:
		return float64(x), true
	case int32:
		return float64(x), true
	case uint32:
		return float64(x), true
	case int64:
		return float64(x), true
	case int:
		return float64(x), true
	case uint64:
		return float64(x), true
	case uint:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	case complex64:
		return float64(real(x)), true
	case complex128:
		return real(x), true
	default:
		return 0, false
	}
}

// toComplex128 converts any supported scalar to complex128.
func toComplex128(v any) (complex128, bool) {
	switch x := v.(type) {
	case complex64:
		return complex128(x), true
	case complex128:
		return x, true
	default:
		f, ok := toFloat64(v)
		if !ok {
			return 0, false
		}
		return complex(f, 0), true
	}
}

// toInt64 converts any supported scalar to int64, truncating floats
// toward zero.
func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case int8:
		return int64(x), true
	case uint8:
		return int64(x), true
	case int16:
		return int64(x), true
	case uint16:
		return int64(x), true
	case int32:
		return int64(x), true
	case uint32:
		return int64(x), true
	case int64:
		return x, true
	case int:
		return int64(x), true
	case uint64:
		return int64(x), true
	case uint:
		return int64(x), true
	case float32:
		return int64(x), true
	case float64:
		return int64(x), true
	case complex64:
		return int64(real(x)), true
	case complex128:
		return int64(real(x)), true
	default:
		return 0, false
	}
}

// toUint64 converts any supported scalar to uint64, truncating floats
// toward zero.
func toUint64(v any) (uint64, bool) {
	switch x := v.(type) {
	case uint8:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint32:
		return uint64(x), true
	case uint64:
		return x, true
	case uint:
		return uint64(x), true
	default:
		n, ok := toInt64(v)
		if !ok {
			return 0, false
		}
		return uint64(n), true
	}
}

// truthy converts any supported scalar to bool: nonzero is true.
func truthy(v any) (bool, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case complex64:
		return x != 0, true
	case complex128:
		return x != 0, true
	default:
		f, ok := toFloat64(v)
		if !ok {
			return false, false
		}
		return f != 0, true
	}
}

// setScalar coerces v into the element at flat offset i. The coercion
// target is the array's dtype; narrowing truncates toward zero.
func (a *Array) setScalar(i int, v any) error {
	switch a.dtype {
	case Bool:
		b, ok := truthy(v)
		if !ok {
			return &UnknownTypeError{Designator: v}
		}
		a.AsBool()[i] = b
	case Int8:
		n, ok := toInt64(v)
		if !ok {
			return &UnknownTypeError{Designator: v}
		}
		a.AsInt8()[i] = int8(n)
	case Uint8:
		n, ok := toUint64(v)
		if !ok {
			return &UnknownTypeError{Designator: v}
		}
		a.AsUint8()[i] = uint8(n)
	case Int16:
		n, ok := toInt64(v)
		if !ok {
			return &UnknownTypeError{Designator: v}
		}
		a.AsInt16()[i] = int16(n)
	case Uint16:
		n, ok := toUint64(v)
		if !ok {
			return &UnknownTypeError{Designator: v}
		}
		a.AsUint16()[i] = uint16(n)
	case Int32:
		n, ok := toInt64(v)
		if !ok {
			return &UnknownTypeError{Designator: v}
		}
		a.AsInt32()[i] = int32(n)
	case Uint32:
		n, ok := toUint64(v)
		if !ok {
			return &UnknownTypeError{Designator: v}
		}
		a.AsUint32()[i] = uint32(n)
	case Int64:
		n, ok := toInt64(v)
		if !ok {
			return &UnknownTypeError{Designator: v}
		}
		a.AsInt64()[i] = n
	case Int:
		n, ok := toInt64(v)
		if !ok {
			return &UnknownTypeError{Designator: v}
		}
		a.AsInt()[i] = int(n)
	case Uint64:
		n, ok := toUint64(v)
		if !ok {
			return &UnknownTypeError{Designator: v}
		}
		a.AsUint64()[i] = n
	case Uint:
		n, ok := toUint64(v)
		if !ok {
			return &UnknownTypeError{Designator: v}
		}
		a.AsUint()[i] = uint(n)
	case Float16:
		f, ok := toFloat64(v)
		if !ok {
			return &UnknownTypeError{Designator: v}
		}
		a.AsFloat16()[i] = float32ToHalf(float32(f))
	case Float32:
		f, ok := toFloat64(v)
		if !ok {
			return &UnknownTypeError{Designator: v}
		}
		a.AsFloat32()[i] = float32(f)
	case Float64, Float:
		f, ok := toFloat64(v)
		if !ok {
			return &UnknownTypeError{Designator: v}
		}
		a.AsFloat64()[i] = f
	case Complex64:
		c, ok := toComplex128(v)
		if !ok {
			return &UnknownTypeError{Designator: v}
		}
		a.AsComplex64()[i] = complex64(c)
	case Complex128, Complex:
		c, ok := toComplex128(v)
		if !ok {
			return &UnknownTypeError{Designator: v}
		}
		a.AsComplex128()[i] = c
	default:
		panic("unknown data type")
	}
	return nil
}

// getScalar reads the element at flat offset i as a native Go value.
// Float16 elements decode to float32; the platform-default kinds read as
// int, uint, float64 and complex128.
func (a *Array) getScalar(i int) any {
	switch a.dtype {
	case Bool:
		return a.AsBool()[i]
	case Int8:
		return a.AsInt8()[i]
	case Uint8:
		return a.AsUint8()[i]
	case Int16:
		return a.AsInt16()[i]
	case Uint16:
		return a.AsUint16()[i]
	case Int32:
		return a.AsInt32()[i]
	case Uint32:
		return a.AsUint32()[i]
	case Int64:
		return a.AsInt64()[i]
	case Int:
		return a.AsInt()[i]
	case Uint64:
		return a.AsUint64()[i]
	case Uint:
		return a.AsUint()[i]
	case Float16:
		return halfToFloat32(a.AsFloat16()[i])
	case Float32:
		return a.AsFloat32()[i]
	case Float64, Float:
		return a.AsFloat64()[i]
	case Complex64:
		return a.AsComplex64()[i]
	case Complex128, Complex:
		return a.AsComplex128()[i]
	default:
		panic("unknown data type")
	}
}
