package orderedmap

import "errors"

// ErrEmptyMap is returned by PopOldest and PopNewest on an empty map.
var ErrEmptyMap = errors.New("ordered map is empty")

// PopOldest removes and returns the earliest-inserted pair (FIFO).
// Returns ErrEmptyMap if the map is empty.
func (om *OrderedMap[K, V]) PopOldest() (key K, value V, err error) {
	pair := om.Oldest()
	if pair == nil {
		err = ErrEmptyMap
		return
	}
	om.Delete(pair.Key)
	return pair.Key, pair.Value, nil
}

// PopNewest removes and returns the most-recently-inserted pair (LIFO).
// Returns ErrEmptyMap if the map is empty.
func (om *OrderedMap[K, V]) PopNewest() (key K, value V, err error) {
	pair := om.Newest()
	if pair == nil {
		err = ErrEmptyMap
		return
	}
	om.Delete(pair.Key)
	return pair.Key, pair.Value, nil
}

// PopKey removes key and returns its value. Returns a *KeyNotFoundError if
// key is absent.
func (om *OrderedMap[K, V]) PopKey(key K) (V, error) {
	if value, present := om.Delete(key); present {
		return value, nil
	}
	var zero V
	return zero, &KeyNotFoundError[K]{key}
}

// PopKeyOr removes key and returns its value; if key is absent it returns def
// and leaves the map untouched.
func (om *OrderedMap[K, V]) PopKeyOr(key K, def V) V {
	if value, present := om.Delete(key); present {
		return value
	}
	return def
}

// GetOrSet returns the value bound to key if present; otherwise it binds key
// to value at the end of the sequence and returns value. The boolean reports
// whether the key was already present.
func (om *OrderedMap[K, V]) GetOrSet(key K, value V) (V, bool) {
	if existing, present := om.Get(key); present {
		return existing, true
	}
	om.Set(key, value)
	return value, false
}

// Clear removes all pairs, resetting the sequence to empty. The map remains
// usable.
func (om *OrderedMap[K, V]) Clear() {
	if om == nil || om.pairs == nil {
		return
	}
	clear(om.pairs)
	om.list.Init()
}

// Copy returns a shallow copy: same key/value bindings in the same order,
// with independent sequence storage, so mutating one map never affects the
// other's membership or order.
func (om *OrderedMap[K, V]) Copy() *OrderedMap[K, V] {
	c := New[K, V](WithCapacity[K, V](om.Len()))
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		c.Set(pair.Key, pair.Value)
	}
	return c
}

// Keys returns the keys as a slice, in insertion order. The slice is a
// snapshot taken at call time, not a live view.
func (om *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, om.Len())
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Values returns the values as a slice, in insertion order of their keys.
func (om *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, om.Len())
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		values = append(values, pair.Value)
	}
	return values
}

// Pairs returns the pairs as a slice of plain key/value copies, in insertion
// order.
func (om *OrderedMap[K, V]) Pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, om.Len())
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		pairs = append(pairs, Pair[K, V]{Key: pair.Key, Value: pair.Value})
	}
	return pairs
}
