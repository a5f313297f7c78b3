package params

// ordered is an insertion-ordered association. keys and vals are parallel;
// index maps a key to its position in both.
type ordered[V any] struct {
	keys  []string
	vals  []V
	index map[string]int
}

func (o *ordered[V]) set(key string, v V) {
	if i, ok := o.index[key]; ok {
		o.vals[i] = v
		return
	}

	if o.index == nil {
		o.index = make(map[string]int)
	}

	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, v)
}

func (o *ordered[V]) get(key string) (V, bool) {
	i, ok := o.index[key]
	if !ok {
		var zero V
		return zero, false
	}

	return o.vals[i], true
}

func (o *ordered[V]) len() int { return len(o.keys) }

func (o *ordered[V]) clone() ordered[V] {
	c := ordered[V]{
		keys:  make([]string, len(o.keys)),
		vals:  make([]V, len(o.vals)),
		index: make(map[string]int, len(o.index)),
	}

	copy(c.keys, o.keys)
	copy(c.vals, o.vals)

	for k, i := range o.index {
		c.index[k] = i
	}

	return c
}
