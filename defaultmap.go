package orderedmap

// DefaultOrderedMap is an OrderedMap that can build a value for a missing key
// the first time it is read. It is the ordered analogue of a defaultdict: the
// factory runs on the first Get or Value of an absent key, and the produced
// value is stored at the end of the insertion sequence before being returned,
// so a read of a missing key is a mutation.
//
// A nil factory disables vivification, leaving plain OrderedMap lookups.
type DefaultOrderedMap[K comparable, V any] struct {
	*OrderedMap[K, V]

	factory func() V
}

// NewDefault creates a DefaultOrderedMap with the given factory, which may be
// nil. Options are the same as for New.
func NewDefault[K comparable, V any](factory func() V, options ...any) *DefaultOrderedMap[K, V] {
	return &DefaultOrderedMap[K, V]{
		OrderedMap: New[K, V](options...),
		factory:    factory,
	}
}

// Get looks up a key's value. If the key is absent and a factory is set, the
// factory's product is bound to the key at the end of the sequence and
// returned with present == true; without a factory an absent key reads as a
// plain miss.
func (dom *DefaultOrderedMap[K, V]) Get(key K) (val V, present bool) {
	if val, present = dom.OrderedMap.Get(key); present {
		return val, true
	}
	if dom.factory == nil {
		return
	}

	val = dom.factory()
	dom.OrderedMap.Set(key, val)
	return val, true
}

// Value returns the value for key, vivifying it like Get. Without a factory
// an absent key yields V's zero value, as for OrderedMap.Value.
func (dom *DefaultOrderedMap[K, V]) Value(key K) V {
	val, _ := dom.Get(key)
	return val
}

// Copy returns a DefaultOrderedMap sharing the same factory reference over an
// independent copy of the current pairs.
func (dom *DefaultOrderedMap[K, V]) Copy() *DefaultOrderedMap[K, V] {
	return &DefaultOrderedMap[K, V]{
		OrderedMap: dom.OrderedMap.Copy(),
		factory:    dom.factory,
	}
}
