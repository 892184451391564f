package tree

func gather[V any, N any, A access[N], F Filter[N], S Selector[N, V]](n N, f F, s S, out []V) []V {
	var a A
	for c := range a.each(n) {
		if f.Match(c) {
			out = append(out, s.Select(c))
		}
		out = gather[V, N, A](c, f, s, out)
	}
	return out
}

// gatherInto writes straight at the cursor; if the matches outrun the buffer
// the write faults with the runtime's index-out-of-range panic. There is no
// count-ahead pass.
func gatherInto[V any, N any, A access[N], F Filter[N], S Selector[N, V]](n N, f F, s S, buf []V, cursor int) int {
	var a A
	for c := range a.each(n) {
		if f.Match(c) {
			buf[cursor] = s.Select(c)
			cursor++
		}
		cursor = gatherInto[V, N, A](c, f, s, buf, cursor)
	}
	return cursor
}

// Collect recurses the whole subtree of root and, for every descendant
// matched by f, appends the value selected by s to a fresh slice. Values
// appear in depth-first visitation order. The result type cannot be inferred
// from the marker, so calls name it explicitly: Collect[int](root, f, s).
func Collect[V any, N Parent[N], F Filter[N], S Selector[N, V]](root N, f F, s S) []V {
	return gather[V, N, indexed[N]](root, f, s, nil)
}

// CollectInto matches and selects exactly like Collect but writes into the
// caller-owned buf starting at start, and returns the advanced cursor. If
// the matches exceed the remaining capacity the overflowing write panics
// with an index-out-of-range error; output is never silently truncated.
func CollectInto[V any, N Parent[N], F Filter[N], S Selector[N, V]](root N, f F, s S, buf []V, start int) int {
	return gatherInto[V, N, indexed[N]](root, f, s, buf, start)
}

// CollectKeyed is Collect for keyed children, in insertion order.
func CollectKeyed[V any, K comparable, N KeyedParent[K, N], F Filter[N], S Selector[N, V]](root N, f F, s S) []V {
	return gather[V, N, keyed[K, N]](root, f, s, nil)
}

// CollectIntoKeyed is CollectInto for keyed children.
func CollectIntoKeyed[V any, K comparable, N KeyedParent[K, N], F Filter[N], S Selector[N, V]](root N, f F, s S, buf []V, start int) int {
	return gatherInto[V, N, keyed[K, N]](root, f, s, buf, start)
}

// CollectObservable is Collect for observable children.
func CollectObservable[V any, N ObservableParent[N], F Filter[N], S Selector[N, V]](root N, f F, s S) []V {
	return gather[V, N, observable[N]](root, f, s, nil)
}

// CollectIntoObservable is CollectInto for observable children.
func CollectIntoObservable[V any, N ObservableParent[N], F Filter[N], S Selector[N, V]](root N, f F, s S, buf []V, start int) int {
	return gatherInto[V, N, observable[N]](root, f, s, buf, start)
}
