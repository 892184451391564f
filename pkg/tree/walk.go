package tree

import "iter"

// deep yields matching descendants of n in depth-first order and reports
// false once the consumer stops the sequence.
func deep[N any, A access[N], F Filter[N]](n N, f F, yield func(N) bool) bool {
	var a A
	for c := range a.each(n) {
		if f.Match(c) && !yield(c) {
			return false
		}
		if !deep[N, A](c, f, yield) {
			return false
		}
	}
	return true
}

func walkDeep[N any, A access[N], F Filter[N]](root N, f F) iter.Seq[N] {
	return func(yield func(N) bool) {
		deep[N, A](root, f, yield)
	}
}

// walkWide yields matching descendants of root in level order: every node at
// one depth before any node at the next. Filtering never prunes; children of
// non-matching nodes are still queued.
func walkWide[N any, A access[N], F Filter[N]](root N, f F) iter.Seq[N] {
	return func(yield func(N) bool) {
		var a A
		queue := []N{root}
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			for c := range a.each(n) {
				if f.Match(c) && !yield(c) {
					return
				}
				queue = append(queue, c)
			}
		}
	}
}

// Walk returns a lazy depth-first sequence of every node below root: a child
// is yielded before its own subtree, and a subtree is exhausted before the
// next sibling. root itself is not yielded. Each call returns a fresh
// sequence, so a walk can be restarted or abandoned at any point.
func Walk[N Parent[N]](root N) iter.Seq[N] {
	return walkDeep[N, indexed[N]](root, MatchAll[N]{})
}

// WalkFiltered is Walk restricted to nodes matched by f. Non-matching nodes
// are still descended into; the filter selects what is yielded, not what is
// visited.
func WalkFiltered[N Parent[N], F Filter[N]](root N, f F) iter.Seq[N] {
	return walkDeep[N, indexed[N]](root, f)
}

// WalkBreadth returns a lazy breadth-first sequence of every node below
// root: all direct children before any grandchild.
func WalkBreadth[N Parent[N]](root N) iter.Seq[N] {
	return walkWide[N, indexed[N]](root, MatchAll[N]{})
}

// WalkBreadthFiltered is WalkBreadth restricted to nodes matched by f, with
// the same non-pruning contract as WalkFiltered.
func WalkBreadthFiltered[N Parent[N], F Filter[N]](root N, f F) iter.Seq[N] {
	return walkWide[N, indexed[N]](root, f)
}

// WalkFiles yields the file nodes below root, depth-first.
func WalkFiles[N FileParent[N]](root N) iter.Seq[N] {
	return WalkFiltered(root, FilesOnly[N]{})
}

// WalkFilesBreadth yields the file nodes below root, breadth-first.
func WalkFilesBreadth[N FileParent[N]](root N) iter.Seq[N] {
	return WalkBreadthFiltered(root, FilesOnly[N]{})
}

// WalkDirectories yields the directory nodes below root, depth-first.
func WalkDirectories[N FileParent[N]](root N) iter.Seq[N] {
	return WalkFiltered(root, DirectoriesOnly[N]{})
}

// WalkDirectoriesBreadth yields the directory nodes below root,
// breadth-first.
func WalkDirectoriesBreadth[N FileParent[N]](root N) iter.Seq[N] {
	return WalkBreadthFiltered(root, DirectoriesOnly[N]{})
}

// WalkKeyed is Walk for keyed children; siblings come in insertion order.
func WalkKeyed[K comparable, N KeyedParent[K, N]](root N) iter.Seq[N] {
	return walkDeep[N, keyed[K, N]](root, MatchAll[N]{})
}

// WalkFilteredKeyed is WalkFiltered for keyed children.
func WalkFilteredKeyed[K comparable, N KeyedParent[K, N], F Filter[N]](root N, f F) iter.Seq[N] {
	return walkDeep[N, keyed[K, N]](root, f)
}

// WalkBreadthKeyed is WalkBreadth for keyed children.
func WalkBreadthKeyed[K comparable, N KeyedParent[K, N]](root N) iter.Seq[N] {
	return walkWide[N, keyed[K, N]](root, MatchAll[N]{})
}

// WalkBreadthFilteredKeyed is WalkBreadthFiltered for keyed children.
func WalkBreadthFilteredKeyed[K comparable, N KeyedParent[K, N], F Filter[N]](root N, f F) iter.Seq[N] {
	return walkWide[N, keyed[K, N]](root, f)
}

// WalkFilesKeyed yields the file nodes below root, depth-first.
func WalkFilesKeyed[K comparable, N KeyedFileParent[K, N]](root N) iter.Seq[N] {
	return WalkFilteredKeyed[K](root, FilesOnly[N]{})
}

// WalkFilesBreadthKeyed yields the file nodes below root, breadth-first.
func WalkFilesBreadthKeyed[K comparable, N KeyedFileParent[K, N]](root N) iter.Seq[N] {
	return WalkBreadthFilteredKeyed[K](root, FilesOnly[N]{})
}

// WalkDirectoriesKeyed yields the directory nodes below root, depth-first.
func WalkDirectoriesKeyed[K comparable, N KeyedFileParent[K, N]](root N) iter.Seq[N] {
	return WalkFilteredKeyed[K](root, DirectoriesOnly[N]{})
}

// WalkDirectoriesBreadthKeyed yields the directory nodes below root,
// breadth-first.
func WalkDirectoriesBreadthKeyed[K comparable, N KeyedFileParent[K, N]](root N) iter.Seq[N] {
	return WalkBreadthFilteredKeyed[K](root, DirectoriesOnly[N]{})
}

// WalkObservable is Walk for observable children. The child list length is
// re-read at every step, so children appended while the sequence is being
// consumed are visited too.
func WalkObservable[N ObservableParent[N]](root N) iter.Seq[N] {
	return walkDeep[N, observable[N]](root, MatchAll[N]{})
}

// WalkFilteredObservable is WalkFiltered for observable children.
func WalkFilteredObservable[N ObservableParent[N], F Filter[N]](root N, f F) iter.Seq[N] {
	return walkDeep[N, observable[N]](root, f)
}

// WalkBreadthObservable is WalkBreadth for observable children.
func WalkBreadthObservable[N ObservableParent[N]](root N) iter.Seq[N] {
	return walkWide[N, observable[N]](root, MatchAll[N]{})
}

// WalkBreadthFilteredObservable is WalkBreadthFiltered for observable
// children.
func WalkBreadthFilteredObservable[N ObservableParent[N], F Filter[N]](root N, f F) iter.Seq[N] {
	return walkWide[N, observable[N]](root, f)
}

// WalkFilesObservable yields the file nodes below root, depth-first.
func WalkFilesObservable[N ObservableFileParent[N]](root N) iter.Seq[N] {
	return WalkFilteredObservable(root, FilesOnly[N]{})
}

// WalkFilesBreadthObservable yields the file nodes below root,
// breadth-first.
func WalkFilesBreadthObservable[N ObservableFileParent[N]](root N) iter.Seq[N] {
	return WalkBreadthFilteredObservable(root, FilesOnly[N]{})
}

// WalkDirectoriesObservable yields the directory nodes below root,
// depth-first.
func WalkDirectoriesObservable[N ObservableFileParent[N]](root N) iter.Seq[N] {
	return WalkFilteredObservable(root, DirectoriesOnly[N]{})
}

// WalkDirectoriesBreadthObservable yields the directory nodes below root,
// breadth-first.
func WalkDirectoriesBreadthObservable[N ObservableFileParent[N]](root N) iter.Seq[N] {
	return WalkBreadthFilteredObservable(root, DirectoriesOnly[N]{})
}
