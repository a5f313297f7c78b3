package params

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// ValueOf converts a dynamic Go value into a Value.
//
// Accepted scalars are Scalar, string, bool and every integer type.
// Accepted mappings are *Map, []Pair, map[string]string and map[string]any
// whose values are scalars. Go maps carry no order, so their sub-keys are
// sorted; use *Map or []Pair to control the order.
func ValueOf(v any) (Value, error) {
	if s, ok := scalarOf(v); ok {
		return s, nil
	}

	switch val := v.(type) {
	case *Map:
		if val == nil {
			return nil, fmt.Errorf("%w: nil map", ErrInvalidParameterShape)
		}

		return val.Clone(), nil

	case []Pair:
		m := &Map{}
		for _, p := range val {
			if err := m.Set(p.Key, p.Value); err != nil {
				return nil, err
			}
		}

		return m, nil

	case map[string]string:
		m := &Map{}
		for _, k := range slices.Sorted(maps.Keys(val)) {
			if err := m.Set(k, String(val[k])); err != nil {
				return nil, err
			}
		}

		return m, nil

	case map[string]any:
		m := &Map{}
		for _, k := range slices.Sorted(maps.Keys(val)) {
			s, ok := scalarOf(val[k])
			if !ok {
				return nil, fmt.Errorf("%w: sub-key %q holds %T, only scalars may be nested", ErrInvalidParameterShape, k, val[k])
			}

			if err := m.Set(k, s); err != nil {
				return nil, err
			}
		}

		return m, nil
	}

	return nil, fmt.Errorf("%w: unsupported value %T", ErrInvalidParameterShape, v)
}

func scalarOf(v any) (Scalar, bool) {
	switch val := v.(type) {
	case Scalar:
		return val, val.kind != 0
	case string:
		return String(val), true
	case bool:
		return Bool(val), true
	case int:
		return Int(int64(val)), true
	case int8:
		return Int(int64(val)), true
	case int16:
		return Int(int64(val)), true
	case int32:
		return Int(int64(val)), true
	case int64:
		return Int(val), true
	case uint:
		return uintScalar(uint64(val))
	case uint8:
		return Int(int64(val)), true
	case uint16:
		return Int(int64(val)), true
	case uint32:
		return Int(int64(val)), true
	case uint64:
		return uintScalar(val)
	default:
		return Scalar{}, false
	}
}

func uintScalar(n uint64) (Scalar, bool) {
	if n > math.MaxInt64 {
		return Scalar{}, false
	}

	return Int(int64(n)), true
}
