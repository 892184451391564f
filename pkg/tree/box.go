package tree

import "hash/maphash"

// Box is an owning wrapper around exactly one node value. A node type that
// holds a sequence of itself cannot be laid out as a plain value; boxing each
// child gives the recursion a fixed-size slot to pass through.
type Box[T any] struct {
	v *T
}

// Wrap boxes a bare node value.
func Wrap[T any](v T) Box[T] {
	return Box[T]{v: &v}
}

// Unwrap returns the boxed node value.
func (b Box[T]) Unwrap() T {
	return *b.v
}

// Equal reports whether two boxes hold equal values. The boxes themselves
// have no identity of their own; equality delegates to the wrapped values.
func Equal[T comparable](a, b Box[T]) bool {
	return *a.v == *b.v
}

// Hash hashes the wrapped value, so boxes that are Equal hash alike.
func Hash[T comparable](seed maphash.Seed, b Box[T]) uint64 {
	return maphash.Comparable(seed, *b.v)
}

// KeyedBox is a Box used as the value side of a key-to-child mapping. The
// key is not stored here; it lives as the entry key in the parent's mapping.
type KeyedBox[T any] struct {
	Box[T]
}

// WrapKeyed boxes a bare node value for use in a keyed mapping.
func WrapKeyed[T any](v T) KeyedBox[T] {
	return KeyedBox[T]{Box: Wrap(v)}
}
