// Package orderedmap implements a generic map that remembers the order in
// which keys were first inserted, with O(1) lookups, inserts and deletes.
//
// The map is backed by a hash index for key access and a doubly linked list
// for the insertion sequence; the list is rooted at a permanent sentinel
// element, so splicing pairs in and out needs no empty/head/tail special
// cases. Overwriting an existing key updates its value in place and does not
// move it; a key regains a fresh position only if it is deleted and re-added.
//
// OrderedMap is not safe for concurrent use; callers that share one across
// goroutines must provide their own synchronization.
package orderedmap

import (
	"fmt"

	list "github.com/PrismAIO/generic-list-go"
)

// Pair is a single key/value binding together with its position in the
// insertion sequence.
type Pair[K comparable, V any] struct {
	Key   K
	Value V

	element *list.Element[*Pair[K, V]]
}

// OrderedMap is a map[K]V that additionally keeps its pairs in insertion
// order. The zero value is not usable; use New.
type OrderedMap[K comparable, V any] struct {
	pairs map[K]*Pair[K, V]
	list  *list.List[*Pair[K, V]]
}

type initConfig[K comparable, V any] struct {
	capacity    int
	initialData []Pair[K, V]
}

// InitOption is an option for New.
type InitOption[K comparable, V any] func(config *initConfig[K, V])

// WithCapacity allocates the map with room for n pairs.
func WithCapacity[K comparable, V any](capacity int) InitOption[K, V] {
	return func(config *initConfig[K, V]) {
		config.capacity = capacity
	}
}

// WithInitialData populates the map with the given pairs, in order.
func WithInitialData[K comparable, V any](initialData ...Pair[K, V]) InitOption[K, V] {
	return func(config *initConfig[K, V]) {
		config.initialData = initialData
		if config.capacity < len(initialData) {
			config.capacity = len(initialData)
		}
	}
}

const invalidOptionMessage = `when using New[K,V](...) with options, either provide one or several InitOption[K, V]; or a single integer which is then interpreted as a capacity`

func invalidOption() { panic(invalidOptionMessage) }

// New creates a new OrderedMap.
//
// New can be called with no arguments, with a single integer which is then
// used as the initial capacity, or with any number of InitOption values. Any
// other argument shape panics.
func New[K comparable, V any](options ...any) *OrderedMap[K, V] {
	om := &OrderedMap[K, V]{}

	var config initConfig[K, V]
	for _, untypedOption := range options {
		switch option := untypedOption.(type) {
		case int:
			if len(options) != 1 {
				invalidOption()
			}
			config.capacity = option

		case InitOption[K, V]:
			option(&config)

		default:
			invalidOption()
		}
	}

	om.initialize(config.capacity)
	om.AddPairs(config.initialData...)

	return om
}

func (om *OrderedMap[K, V]) initialize(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	om.pairs = make(map[K]*Pair[K, V], capacity)
	om.list = list.New[*Pair[K, V]]()
}

// Get looks up a key's value, the boolean reporting whether the key is
// present.
func (om *OrderedMap[K, V]) Get(key K) (val V, present bool) {
	if om == nil || om.pairs == nil {
		return
	}
	if pair, ok := om.pairs[key]; ok {
		return pair.Value, true
	}
	return
}

// Value returns the value for key, or V's zero value if key is absent.
func (om *OrderedMap[K, V]) Value(key K) (val V) {
	if om == nil || om.pairs == nil {
		return
	}
	if pair, ok := om.pairs[key]; ok {
		val = pair.Value
	}
	return
}

// GetPair returns the Pair bound to key, or nil if key is absent.
// The pair can be used to walk the sequence from key's position.
func (om *OrderedMap[K, V]) GetPair(key K) *Pair[K, V] {
	if om == nil || om.pairs == nil {
		return nil
	}
	return om.pairs[key]
}

// Has reports whether key is present.
func (om *OrderedMap[K, V]) Has(key K) bool {
	if om == nil || om.pairs == nil {
		return false
	}
	_, present := om.pairs[key]
	return present
}

// Set binds key to value. A new key is appended at the end of the sequence;
// an existing key keeps its position and only its value is replaced. Returns
// the previous value, if any.
func (om *OrderedMap[K, V]) Set(key K, value V) (val V, present bool) {
	if pair, ok := om.pairs[key]; ok {
		oldValue := pair.Value
		pair.Value = value
		return oldValue, true
	}

	pair := &Pair[K, V]{
		Key:   key,
		Value: value,
	}
	pair.element = om.list.PushBack(pair)
	om.pairs[key] = pair

	return
}

// AddPairs calls Set for each given pair, in order.
func (om *OrderedMap[K, V]) AddPairs(pairs ...Pair[K, V]) {
	for _, pair := range pairs {
		om.Set(pair.Key, pair.Value)
	}
}

// Delete removes key, unlinking its pair from the sequence. Returns the
// deleted value, if the key was present.
func (om *OrderedMap[K, V]) Delete(key K) (val V, present bool) {
	if om == nil || om.pairs == nil {
		return
	}
	if pair, ok := om.pairs[key]; ok {
		om.list.Remove(pair.element)
		delete(om.pairs, key)
		return pair.Value, true
	}
	return
}

// Len returns the number of pairs.
func (om *OrderedMap[K, V]) Len() int {
	if om == nil || om.pairs == nil {
		return 0
	}
	return len(om.pairs)
}

// Oldest returns the earliest-inserted pair, or nil if the map is empty.
func (om *OrderedMap[K, V]) Oldest() *Pair[K, V] {
	if om == nil || om.list == nil {
		return nil
	}
	return listElementToPair(om.list.Front())
}

// Newest returns the most-recently-inserted pair, or nil if the map is empty.
func (om *OrderedMap[K, V]) Newest() *Pair[K, V] {
	if om == nil || om.list == nil {
		return nil
	}
	return listElementToPair(om.list.Back())
}

// Next returns the pair inserted right after p, or nil if p is the newest.
func (p *Pair[K, V]) Next() *Pair[K, V] {
	return listElementToPair(p.element.Next())
}

// Prev returns the pair inserted right before p, or nil if p is the oldest.
func (p *Pair[K, V]) Prev() *Pair[K, V] {
	return listElementToPair(p.element.Prev())
}

func listElementToPair[K comparable, V any](element *list.Element[*Pair[K, V]]) *Pair[K, V] {
	if element == nil {
		return nil
	}
	return element.Value
}

// KeyNotFoundError is returned by operations whose only failure mode is being
// handed an absent key.
type KeyNotFoundError[K comparable] struct {
	MissingKey K
}

func (e *KeyNotFoundError[K]) Error() string {
	return fmt.Sprintf("missing key: %v", e.MissingKey)
}
