package tree

import (
	"hash/maphash"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWrapUnwrap verifies that unwrapping returns the wrapped value
// unchanged.
func TestWrapUnwrap(t *testing.T) {
	b := Wrap(42)
	assert.Equal(t, 42, b.Unwrap(), "Unwrap should return the wrapped value")

	kb := WrapKeyed("child")
	assert.Equal(t, "child", kb.Unwrap(), "Keyed unwrap should return the wrapped value")
}

// TestBoxEquality verifies that box equality delegates to the wrapped values
// and ignores box identity.
func TestBoxEquality(t *testing.T) {
	a := Wrap(7)
	b := Wrap(7)
	c := Wrap(8)

	assert.True(t, Equal(a, b), "Distinct boxes with equal values should be equal")
	assert.False(t, Equal(a, c), "Boxes with different values should not be equal")
}

// TestBoxHash verifies that hashing delegates to the wrapped value, so equal
// boxes hash alike under one seed.
func TestBoxHash(t *testing.T) {
	seed := maphash.MakeSeed()
	a := Wrap("node")
	b := Wrap("node")

	assert.Equal(t, Hash(seed, a), Hash(seed, b), "Equal boxes should hash to the same value")
}

// TestKeyedBoxes verifies insertion-order iteration and key replacement in
// the keyed child mapping.
func TestKeyedBoxes(t *testing.T) {
	kb := NewKeyedBoxes[string, int]()
	kb.Put("b", 2)
	kb.Put("a", 1)
	kb.Put("c", 3)

	assert.Equal(t, 3, kb.Len(), "Len should count all entries")
	assert.Equal(t, []string{"b", "a", "c"}, kb.Keys(), "Keys should come back in insertion order, not sorted")

	got, ok := kb.Get("a")
	assert.True(t, ok, "Get should find an existing key")
	assert.Equal(t, 1, got.Unwrap(), "Get should return the boxed child for the key")

	_, ok = kb.Get("missing")
	assert.False(t, ok, "Get should report a missing key")

	kb.Put("a", 10)
	assert.Equal(t, 3, kb.Len(), "Replacing a key should not grow the mapping")
	got, _ = kb.Get("a")
	assert.Equal(t, 10, got.Unwrap(), "Put should replace the child for an existing key")

	visited := []string{}
	kb.Each(func(key string, _ KeyedBox[int]) bool {
		visited = append(visited, key)
		return key != "a"
	})
	assert.Equal(t, []string{"b", "a"}, visited, "Each should stop when the visit func returns false")
}

// TestBoxListGrowth verifies the observable child list grows after
// construction and faults on out-of-range access.
func TestBoxListGrowth(t *testing.T) {
	bl := NewBoxList[string]()
	assert.Equal(t, 0, bl.Len(), "A new list should be empty")

	bl.Append("x", "y")
	assert.Equal(t, 2, bl.Len(), "Append should grow the list")
	assert.Equal(t, "x", bl.At(0), "At should return the child at the index")
	assert.Equal(t, "y", bl.At(1), "At should return the child at the index")

	assert.Panics(t, func() { bl.At(2) }, "At past the end should panic")
}
