package tree

import "iter"

// access abstracts how one child-storage variant hands out children. Every
// traversal algorithm is written once against it and instantiated per variant
// with one of the zero-size accessor types below, so the indexed, keyed and
// observable families share a single implementation.
type access[N any] interface {
	count(n N) int
	each(n N) iter.Seq[N]
}

type indexed[N Parent[N]] struct{}

func (indexed[N]) count(n N) int {
	return len(n.Children())
}

func (indexed[N]) each(n N) iter.Seq[N] {
	return func(yield func(N) bool) {
		for _, b := range n.Children() {
			if !yield(b.Unwrap()) {
				return
			}
		}
	}
}

type keyed[K comparable, N KeyedParent[K, N]] struct{}

func (keyed[K, N]) count(n N) int {
	return n.KeyedChildren().Len()
}

func (keyed[K, N]) each(n N) iter.Seq[N] {
	return func(yield func(N) bool) {
		n.KeyedChildren().Each(func(_ K, b KeyedBox[N]) bool {
			return yield(b.Unwrap())
		})
	}
}

type observable[N ObservableParent[N]] struct{}

func (observable[N]) count(n N) int {
	return n.ObservableChildren().Len()
}

// The loop condition re-reads Len so children appended while the sequence is
// being consumed are still visited.
func (observable[N]) each(n N) iter.Seq[N] {
	return func(yield func(N) bool) {
		l := n.ObservableChildren()
		for i := 0; i < l.Len(); i++ {
			if !yield(l.At(i)) {
				return
			}
		}
	}
}
