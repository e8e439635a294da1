package orderedmap

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertLenEqual[K comparable, V any](t *testing.T, om *OrderedMap[K, V], expectedLen int) {
	t.Helper()

	assert.Equal(t, expectedLen, om.Len())
}

// checks that the map holds exactly the given pairs in the given order, in
// both traversal directions
func assertOrderedPairsEqual[K comparable, V any](t *testing.T, om *OrderedMap[K, V], expectedKeys []K, expectedValues []V) {
	t.Helper()

	if !assert.Equal(t, len(expectedKeys), len(expectedValues)) ||
		!assert.Equal(t, len(expectedKeys), om.Len()) {
		return
	}

	i := 0
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		assert.Equal(t, expectedKeys[i], pair.Key)
		assert.Equal(t, expectedValues[i], pair.Value)
		i++
	}

	i = om.Len() - 1
	for pair := om.Newest(); pair != nil; pair = pair.Prev() {
		assert.Equal(t, expectedKeys[i], pair.Key)
		assert.Equal(t, expectedValues[i], pair.Value)
		i--
	}
}

func randomHexString(t *testing.T, length int) string {
	t.Helper()

	b := make([]byte, length/2+1)
	if _, err := rand.Read(b); err != nil {
		t.Fatal(err)
	}
	return hex.EncodeToString(b)[:length]
}
