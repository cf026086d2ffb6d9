// Package array provides the core n-dimensional array types and operations
// for the numgo array engine.
package array

import "strconv"

// DataType identifies the element type of an array.
//
// The declaration order doubles as the promotion order: a larger constant
// value means a higher promotion rank. See Promote.
type DataType int

// Supported element types. Int, Uint, Float and Complex are the
// platform-default kinds; Int and Uint track the platform word size,
// Float is float64 and Complex is complex128.
const (
	Bool DataType = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Int
	Uint64
	Uint
	Float16
	Float32
	Float64
	Float
	Complex64
	Complex128
	Complex

	numDataTypes // sentinel, keep last
)

// TypeKind groups element types into promotion categories.
type TypeKind int

// Promotion categories, ordered bool < integer < float < complex.
const (
	KindBool TypeKind = iota
	KindInt
	KindUint
	KindFloat
	KindComplex
)

// Size returns the byte width of one element of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Bool, Int8, Uint8:
		return 1
	case Int16, Uint16, Float16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64, Float, Complex64:
		return 8
	case Int, Uint:
		return strconv.IntSize / 8
	case Complex128, Complex:
		return 16
	default:
		panic("unknown data type")
	}
}

// Kind returns the promotion category of the data type.
func (dt DataType) Kind() TypeKind {
	switch dt {
	case Bool:
		return KindBool
	case Int8, Int16, Int32, Int64, Int:
		return KindInt
	case Uint8, Uint16, Uint32, Uint64, Uint:
		return KindUint
	case Float16, Float32, Float64, Float:
		return KindFloat
	case Complex64, Complex128, Complex:
		return KindComplex
	default:
		panic("unknown data type")
	}
}

// IsInteger reports whether the data type is a signed or unsigned integer.
func (dt DataType) IsInteger() bool {
	k := dt.Kind()
	return k == KindInt || k == KindUint
}

// IsFloat reports whether the data type is a floating-point type.
func (dt DataType) IsFloat() bool {
	return dt.Kind() == KindFloat
}

// IsComplex reports whether the data type is a complex type.
func (dt DataType) IsComplex() bool {
	return dt.Kind() == KindComplex
}

// String returns the symbolic name of the data type.
func (dt DataType) String() string {
	if name, ok := dtypeNames[dt]; ok {
		return name
	}
	return "unknown"
}

var dtypeNames = map[DataType]string{
	Bool:       "bool",
	Int8:       "int8",
	Uint8:      "uint8",
	Int16:      "int16",
	Uint16:     "uint16",
	Int32:      "int32",
	Uint32:     "uint32",
	Int64:      "int64",
	Int:        "int",
	Uint64:     "uint64",
	Uint:       "uint",
	Float16:    "float16",
	Float32:    "float32",
	Float64:    "float64",
	Float:      "float",
	Complex64:  "complex64",
	Complex128: "complex128",
	Complex:    "complex",
}

var dtypesByName = func() map[string]DataType {
	m := make(map[string]DataType, len(dtypeNames))
	for dt, name := range dtypeNames {
		m[name] = dt
	}
	return m
}()

// ParseDType resolves a symbolic type name ("bool", "int32", "float64", ...)
// to its DataType. Unknown names fail with an UnknownTypeError.
func ParseDType(name string) (DataType, error) {
	dt, ok := dtypesByName[name]
	if !ok {
		return 0, &UnknownTypeError{Designator: name}
	}
	return dt, nil
}

// ResolveDType resolves a type designator to a DataType. The designator is
// either a DataType constant or a symbolic name string; anything else fails
// with an UnknownTypeError. This is the single registry boundary: callers
// resolve once here and pass DataType values downstream.
func ResolveDType(designator any) (DataType, error) {
	switch d := designator.(type) {
	case DataType:
		if d < 0 || d >= numDataTypes {
			return 0, &UnknownTypeError{Designator: d}
		}
		return d, nil
	case string:
		return ParseDType(d)
	default:
		return 0, &UnknownTypeError{Designator: designator}
	}
}
