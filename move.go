package orderedmap

// MoveAfter moves the pair bound to key to the position right after the pair
// bound to markKey. Returns a *KeyNotFoundError if either key is absent.
func (om *OrderedMap[K, V]) MoveAfter(key, markKey K) error {
	pair, mark, err := om.getTwoPairs(key, markKey)
	if err != nil {
		return err
	}
	om.list.MoveAfter(pair.element, mark.element)
	return nil
}

// MoveBefore moves the pair bound to key to the position right before the
// pair bound to markKey. Returns a *KeyNotFoundError if either key is absent.
func (om *OrderedMap[K, V]) MoveBefore(key, markKey K) error {
	pair, mark, err := om.getTwoPairs(key, markKey)
	if err != nil {
		return err
	}
	om.list.MoveBefore(pair.element, mark.element)
	return nil
}

// MoveToFront moves the pair bound to key to the start of the sequence.
// Returns a *KeyNotFoundError if key is absent.
func (om *OrderedMap[K, V]) MoveToFront(key K) error {
	pair, present := om.pairs[key]
	if !present {
		return &KeyNotFoundError[K]{key}
	}
	om.list.MoveToFront(pair.element)
	return nil
}

// MoveToBack moves the pair bound to key to the end of the sequence.
// Returns a *KeyNotFoundError if key is absent.
func (om *OrderedMap[K, V]) MoveToBack(key K) error {
	pair, present := om.pairs[key]
	if !present {
		return &KeyNotFoundError[K]{key}
	}
	om.list.MoveToBack(pair.element)
	return nil
}

// GetAndMoveToFront combines Get and MoveToFront.
func (om *OrderedMap[K, V]) GetAndMoveToFront(key K) (val V, err error) {
	pair, present := om.pairs[key]
	if !present {
		return val, &KeyNotFoundError[K]{key}
	}
	om.list.MoveToFront(pair.element)
	return pair.Value, nil
}

// GetAndMoveToBack combines Get and MoveToBack.
func (om *OrderedMap[K, V]) GetAndMoveToBack(key K) (val V, err error) {
	pair, present := om.pairs[key]
	if !present {
		return val, &KeyNotFoundError[K]{key}
	}
	om.list.MoveToBack(pair.element)
	return pair.Value, nil
}

func (om *OrderedMap[K, V]) getTwoPairs(key, markKey K) (pair, mark *Pair[K, V], err error) {
	if pair = om.pairs[key]; pair == nil {
		return nil, nil, &KeyNotFoundError[K]{key}
	}
	if mark = om.pairs[markKey]; mark == nil {
		return nil, nil, &KeyNotFoundError[K]{markKey}
	}
	return pair, mark, nil
}

// InsertAfter binds key to value and places its pair right after the pair
// bound to markKey. An already-present key is moved there and its value
// replaced; an absent markKey degrades to a plain Set. Returns the previous
// value, if any.
func (om *OrderedMap[K, V]) InsertAfter(markKey, key K, value V) (val V, present bool) {
	mark, markPresent := om.pairs[markKey]
	if !markPresent {
		return om.Set(key, value)
	}

	if pair, ok := om.pairs[key]; ok {
		oldValue := pair.Value
		pair.Value = value
		om.list.MoveAfter(pair.element, mark.element)
		return oldValue, true
	}

	pair := &Pair[K, V]{
		Key:   key,
		Value: value,
	}
	pair.element = om.list.InsertAfter(pair, mark.element)
	om.pairs[key] = pair

	return
}

// InsertBefore binds key to value and places its pair right before the pair
// bound to markKey. An already-present key is moved there and its value
// replaced; an absent markKey degrades to a plain Set. Returns the previous
// value, if any.
func (om *OrderedMap[K, V]) InsertBefore(markKey, key K, value V) (val V, present bool) {
	mark, markPresent := om.pairs[markKey]
	if !markPresent {
		return om.Set(key, value)
	}

	if pair, ok := om.pairs[key]; ok {
		oldValue := pair.Value
		pair.Value = value
		om.list.MoveBefore(pair.element, mark.element)
		return oldValue, true
	}

	pair := &Pair[K, V]{
		Key:   key,
		Value: value,
	}
	pair.element = om.list.InsertBefore(pair, mark.element)
	om.pairs[key] = pair

	return
}

// Replace rebinds the pair at oldKey to newKey, keeping its position in the
// sequence and setting its value. If newKey is already bound elsewhere, that
// other pair is removed first. An absent oldKey degrades to a plain Set.
//
// The pair's sequence node is reused rather than respliced, so a traversal
// currently paused on it keeps walking the sequence unharmed.
func (om *OrderedMap[K, V]) Replace(oldKey, newKey K, value V) (val V, present bool) {
	pair, ok := om.pairs[oldKey]
	if !ok {
		return om.Set(newKey, value)
	}

	if oldKey != newKey {
		om.Delete(newKey)
		delete(om.pairs, oldKey)
	}

	oldValue := pair.Value
	pair.Key = newKey
	pair.Value = value
	om.pairs[newKey] = pair

	return oldValue, true
}

// Filter removes every pair the keep predicate rejects.
func (om *OrderedMap[K, V]) Filter(keep func(key K, value V) bool) {
	for pair := om.Oldest(); pair != nil; {
		next := pair.Next()
		if !keep(pair.Key, pair.Value) {
			om.Delete(pair.Key)
		}
		pair = next
	}
}
