package params

import "strconv"

// Kind identifies the variant held by a Scalar.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindInt
	KindBool
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Scalar is a string, integer or boolean parameter value.
type Scalar struct {
	kind Kind
	str  string
	num  int64
	flag bool
}

// String returns a string scalar.
func String(s string) Scalar { return Scalar{kind: KindString, str: s} }

// Int returns an integer scalar.
func Int(n int64) Scalar { return Scalar{kind: KindInt, num: n} }

// Bool returns a boolean scalar.
func Bool(b bool) Scalar { return Scalar{kind: KindBool, flag: b} }

// Kind reports which variant s holds. The zero Scalar has no kind.
func (s Scalar) Kind() Kind { return s.kind }

// String renders the scalar the way it appears in the canonical encoding:
// strings verbatim, integers in decimal and booleans as true/false.
func (s Scalar) String() string {
	switch s.kind {
	case KindString:
		return s.str
	case KindInt:
		return strconv.FormatInt(s.num, 10)
	case KindBool:
		return strconv.FormatBool(s.flag)
	default:
		return ""
	}
}

func (Scalar) isValue() {}
