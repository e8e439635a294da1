package orderedmap

import "iter"

// FromOldest returns an iterator over all pairs, walking the insertion
// sequence from the oldest pair to the newest.
//
// Iterators are restartable: each range over them starts a fresh traversal.
// Mutating the map while a traversal is in progress yields unspecified
// results — pairs may be visited or skipped depending on where they land
// relative to the traversal position — though the traversal itself never
// breaks.
func (om *OrderedMap[K, V]) FromOldest() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for pair := om.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// FromNewest returns an iterator over all pairs, walking the insertion
// sequence from the newest pair to the oldest. See FromOldest for the
// mutation caveats.
func (om *OrderedMap[K, V]) FromNewest() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for pair := om.Newest(); pair != nil; pair = pair.Prev() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// KeysFromOldest returns an iterator over all keys, oldest first.
func (om *OrderedMap[K, V]) KeysFromOldest() iter.Seq[K] {
	return func(yield func(K) bool) {
		for pair := om.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key) {
				return
			}
		}
	}
}

// KeysFromNewest returns an iterator over all keys, newest first.
func (om *OrderedMap[K, V]) KeysFromNewest() iter.Seq[K] {
	return func(yield func(K) bool) {
		for pair := om.Newest(); pair != nil; pair = pair.Prev() {
			if !yield(pair.Key) {
				return
			}
		}
	}
}

// ValuesFromOldest returns an iterator over all values, oldest first.
func (om *OrderedMap[K, V]) ValuesFromOldest() iter.Seq[V] {
	return func(yield func(V) bool) {
		for pair := om.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Value) {
				return
			}
		}
	}
}

// ValuesFromNewest returns an iterator over all values, newest first.
func (om *OrderedMap[K, V]) ValuesFromNewest() iter.Seq[V] {
	return func(yield func(V) bool) {
		for pair := om.Newest(); pair != nil; pair = pair.Prev() {
			if !yield(pair.Value) {
				return
			}
		}
	}
}

// From builds an OrderedMap from a pair sequence. Keys appear in first-seen
// order; a duplicate key overwrites the value but keeps the first position.
func From[K comparable, V any](i iter.Seq2[K, V]) *OrderedMap[K, V] {
	om := New[K, V]()
	for k, v := range i {
		om.Set(k, v)
	}
	return om
}

// FromKeys builds an OrderedMap binding every key in the sequence to the same
// value. Keys appear in first-seen order; duplicates keep the first position.
func FromKeys[K comparable, V any](keys iter.Seq[K], value V) *OrderedMap[K, V] {
	om := New[K, V]()
	for key := range keys {
		om.Set(key, value)
	}
	return om
}
