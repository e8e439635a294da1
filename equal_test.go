package orderedmap

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	ab := New[string, int]()
	ab.Set("a", 1)
	ab.Set("b", 2)

	t.Run("same pairs, same order", func(t *testing.T) {
		other := New[string, int]()
		other.Set("a", 1)
		other.Set("b", 2)

		assert.True(t, Equal(ab, other))
	})

	t.Run("same pairs, different order", func(t *testing.T) {
		other := New[string, int]()
		other.Set("b", 2)
		other.Set("a", 1)

		// ordered-map comparison is order-sensitive
		assert.False(t, Equal(ab, other))
		// but both hold the same plain-mapping content
		assert.True(t, EqualMap(ab, map[string]int{"a": 1, "b": 2}))
		assert.True(t, EqualMap(other, map[string]int{"a": 1, "b": 2}))
	})

	t.Run("different values", func(t *testing.T) {
		other := New[string, int]()
		other.Set("a", 1)
		other.Set("b", 28)

		assert.False(t, Equal(ab, other))
	})

	t.Run("different lengths", func(t *testing.T) {
		other := New[string, int]()
		other.Set("a", 1)

		assert.False(t, Equal(ab, other))
		assert.False(t, Equal(other, ab))
	})

	t.Run("both empty", func(t *testing.T) {
		assert.True(t, Equal(New[string, int](), New[string, int]()))
	})
}

func TestEqualMap(t *testing.T) {
	om := New[string, int]()
	om.Set("a", 1)
	om.Set("b", 2)

	assert.True(t, EqualMap(om, map[string]int{"b": 2, "a": 1}))
	assert.False(t, EqualMap(om, map[string]int{"a": 1, "b": 28}))
	assert.False(t, EqualMap(om, map[string]int{"a": 1}))
	assert.False(t, EqualMap(om, map[string]int{"a": 1, "b": 2, "c": 3}))
	assert.True(t, EqualMap(New[string, int](), map[string]int{}))
}

func TestEqualFunc(t *testing.T) {
	a := New[string, []int]()
	a.Set("x", []int{1, 2})

	b := New[string, []int]()
	b.Set("x", []int{1, 2})

	eq := func(v1, v2 []int) bool {
		return assert.ObjectsAreEqual(v1, v2)
	}
	assert.True(t, EqualFunc(a, b, eq))

	b.Set("x", []int{1, 2, 3})
	assert.False(t, EqualFunc(a, b, eq))
}

func TestEqualMapFunc(t *testing.T) {
	om := New[string, int]()
	om.Set("a", 1)
	om.Set("b", 2)

	eq := func(v int, s string) bool {
		return strconv.Itoa(v) == s
	}
	assert.True(t, EqualMapFunc(om, map[string]string{"a": "1", "b": "2"}, eq))
	assert.False(t, EqualMapFunc(om, map[string]string{"a": "1", "b": "28"}, eq))
}
