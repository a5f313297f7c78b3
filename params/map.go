package params

import "fmt"

// Pair is a single sub-key and its scalar value.
type Pair struct {
	Key   string
	Value Scalar
}

// P is shorthand for Pair{Key: key, Value: v}.
func P(key string, v Scalar) Pair { return Pair{Key: key, Value: v} }

// Map is a one-level, insertion-ordered mapping of sub-keys to scalars.
// It renders as key[subkey]=value segments.
type Map struct {
	o ordered[Scalar]
}

// NewMap returns a Map holding pairs in order. It panics if a pair has an
// invalid key; use Set to handle the error instead.
func NewMap(pairs ...Pair) *Map {
	m := &Map{}
	for _, p := range pairs {
		if err := m.Set(p.Key, p.Value); err != nil {
			panic(err)
		}
	}

	return m
}

// Set inserts or replaces the value for key. A replaced key keeps its
// position.
func (m *Map) Set(key string, v Scalar) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	if v.kind == 0 {
		return fmt.Errorf("%w: sub-key %q has no value", ErrInvalidParameterShape, key)
	}

	m.o.set(key, v)

	return nil
}

// Get returns the value stored for key.
func (m *Map) Get(key string) (Scalar, bool) { return m.o.get(key) }

// Len returns the number of sub-entries.
func (m *Map) Len() int { return m.o.len() }

// Pairs returns the sub-entries in insertion order.
func (m *Map) Pairs() []Pair {
	out := make([]Pair, m.o.len())
	for i, k := range m.o.keys {
		out[i] = Pair{Key: k, Value: m.o.vals[i]}
	}

	return out
}

// Clone returns an independent copy of m.
func (m *Map) Clone() *Map {
	return &Map{o: m.o.clone()}
}

func (*Map) isValue() {}
