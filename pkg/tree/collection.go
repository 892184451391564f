package tree

import (
	"github.com/emirpasic/gods/v2/lists/arraylist"
	"github.com/emirpasic/gods/v2/maps/linkedhashmap"
)

// KeyedBoxes is a mapping from unique key to boxed child. Iteration order is
// insertion order, not key order.
type KeyedBoxes[K comparable, T any] struct {
	m *linkedhashmap.Map[K, KeyedBox[T]]
}

// NewKeyedBoxes returns an empty keyed child mapping.
func NewKeyedBoxes[K comparable, T any]() *KeyedBoxes[K, T] {
	return &KeyedBoxes[K, T]{m: linkedhashmap.New[K, KeyedBox[T]]()}
}

// Put maps key to a boxed child, replacing any previous entry for key.
func (kb *KeyedBoxes[K, T]) Put(key K, child T) {
	kb.m.Put(key, WrapKeyed(child))
}

// Get returns the boxed child for key.
func (kb *KeyedBoxes[K, T]) Get(key K) (KeyedBox[T], bool) {
	return kb.m.Get(key)
}

// Len returns the number of entries.
func (kb *KeyedBoxes[K, T]) Len() int {
	return kb.m.Size()
}

// Keys returns all keys in insertion order.
func (kb *KeyedBoxes[K, T]) Keys() []K {
	return kb.m.Keys()
}

// Each visits entries in insertion order until visit returns false.
func (kb *KeyedBoxes[K, T]) Each(visit func(key K, child KeyedBox[T]) bool) {
	it := kb.m.Iterator()
	for it.Next() {
		if !visit(it.Key(), it.Value()) {
			return
		}
	}
}

// BoxList is a growable child sequence. Unlike the indexed variant it may be
// appended to after its node is constructed; traversal over it reads the
// length fresh at every access instead of caching it once.
type BoxList[T any] struct {
	l *arraylist.List[Box[T]]
}

// NewBoxList returns an empty observable child list.
func NewBoxList[T any]() *BoxList[T] {
	return &BoxList[T]{l: arraylist.New[Box[T]]()}
}

// Append adds children to the end of the list.
func (bl *BoxList[T]) Append(children ...T) {
	for _, c := range children {
		bl.l.Add(Wrap(c))
	}
}

// Len returns the current number of children.
func (bl *BoxList[T]) Len() int {
	return bl.l.Size()
}

// At returns the child at index i.
func (bl *BoxList[T]) At(i int) T {
	b, ok := bl.l.Get(i)
	if !ok {
		panic("[BUG] At: index out of range")
	}
	return b.Unwrap()
}
