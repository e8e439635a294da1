package orderedmap

// Equal reports whether two ordered maps hold the same pairs in the same
// insertion order. Comparison against another ordered map is deliberately
// order-sensitive; use EqualMap to compare against a plain map, which cannot
// carry an order.
func Equal[K, V comparable](om, other *OrderedMap[K, V]) bool {
	return EqualFunc(om, other, func(a, b V) bool { return a == b })
}

// EqualFunc is Equal with a custom value comparator, for values that are not
// comparable.
func EqualFunc[K comparable, V1, V2 any](om *OrderedMap[K, V1], other *OrderedMap[K, V2], eq func(V1, V2) bool) bool {
	if om.Len() != other.Len() {
		return false
	}
	otherPair := other.Oldest()
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key != otherPair.Key || !eq(pair.Value, otherPair.Value) {
			return false
		}
		otherPair = otherPair.Next()
	}
	return true
}

// EqualMap reports whether om holds exactly the pairs of the plain map m,
// ignoring order.
func EqualMap[K, V comparable](om *OrderedMap[K, V], m map[K]V) bool {
	return EqualMapFunc(om, m, func(a, b V) bool { return a == b })
}

// EqualMapFunc is EqualMap with a custom value comparator.
func EqualMapFunc[K comparable, V1, V2 any](om *OrderedMap[K, V1], m map[K]V2, eq func(V1, V2) bool) bool {
	if om.Len() != len(m) {
		return false
	}
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		otherValue, present := m[pair.Key]
		if !present || !eq(pair.Value, otherValue) {
			return false
		}
	}
	return true
}
