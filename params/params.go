package params

import "fmt"

// Value is a parameter value: a Scalar or a *Map.
type Value interface {
	isValue()
}

// Entry is a top-level parameter as seen by the encoder.
type Entry struct {
	Key   string
	Value Value
}

// Params is an ordered set of top-level parameters. Keys are unique; setting
// an existing key replaces its value without moving it.
//
// Params is not safe for concurrent mutation.
type Params struct {
	o ordered[Value]
}

// New returns an empty parameter set.
func New() *Params {
	return &Params{}
}

// Set inserts or replaces the value for key. On error the set is unchanged.
func (p *Params) Set(key string, v Value) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	switch val := v.(type) {
	case Scalar:
		if val.kind == 0 {
			return fmt.Errorf("%w: key %q has no value", ErrInvalidParameterShape, key)
		}

		p.o.set(key, val)

	case *Map:
		if val == nil {
			return fmt.Errorf("%w: key %q has a nil map", ErrInvalidParameterShape, key)
		}

		p.o.set(key, val.Clone())

	default:
		return fmt.Errorf("%w: key %q has unsupported value %T", ErrInvalidParameterShape, key, v)
	}

	return nil
}

// Get returns the value stored for key.
func (p *Params) Get(key string) (Value, bool) { return p.o.get(key) }

// Has reports whether key is set.
func (p *Params) Has(key string) bool {
	_, ok := p.o.index[key]
	return ok
}

// Len returns the number of top-level parameters.
func (p *Params) Len() int { return p.o.len() }

// Entries returns the top-level parameters in insertion order. Map values
// are copies; mutating them does not affect p.
func (p *Params) Entries() []Entry {
	out := make([]Entry, p.o.len())
	for i, k := range p.o.keys {
		v := p.o.vals[i]
		if m, ok := v.(*Map); ok {
			v = m.Clone()
		}

		out[i] = Entry{Key: k, Value: v}
	}

	return out
}
