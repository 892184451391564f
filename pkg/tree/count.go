package tree

// b2i converts a bool to 0 or 1. Filtered counts accumulate through it so
// the tally is an unconditional add per node rather than a branch.
func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func descendants[N any, A access[N]](n N) int {
	var a A
	total := 0
	for c := range a.each(n) {
		total += 1 + descendants[N, A](c)
	}
	return total
}

func matching[N any, A access[N], F Filter[N]](n N, f F) int {
	var a A
	total := 0
	for c := range a.each(n) {
		total += b2i(f.Match(c))
		total += matching[N, A](c, f)
	}
	return total
}

// IsLeaf reports whether n has no children.
func IsLeaf[N Parent[N]](n N) bool {
	return len(n.Children()) == 0
}

// CountChildren returns the number of direct children of n. It does not
// recurse.
func CountChildren[N Parent[N]](n N) int {
	return len(n.Children())
}

// CountDescendants returns the total number of nodes below n, at any depth.
// n itself is not counted.
func CountDescendants[N Parent[N]](n N) int {
	return descendants[N, indexed[N]](n)
}

// CountMatching returns the number of descendants of n matched by f.
func CountMatching[N Parent[N], F Filter[N]](n N, f F) int {
	return matching[N, indexed[N]](n, f)
}

// CountFiles returns the number of file nodes below n.
func CountFiles[N FileParent[N]](n N) int {
	return CountMatching(n, FilesOnly[N]{})
}

// CountDirectories returns the number of directory nodes below n.
func CountDirectories[N FileParent[N]](n N) int {
	return CountMatching(n, DirectoriesOnly[N]{})
}

// IsLeafKeyed reports whether n has no children.
func IsLeafKeyed[K comparable, N KeyedParent[K, N]](n N) bool {
	return n.KeyedChildren().Len() == 0
}

// CountChildrenKeyed returns the number of direct children of n.
func CountChildrenKeyed[K comparable, N KeyedParent[K, N]](n N) int {
	return n.KeyedChildren().Len()
}

// CountDescendantsKeyed returns the total number of nodes below n.
func CountDescendantsKeyed[K comparable, N KeyedParent[K, N]](n N) int {
	return descendants[N, keyed[K, N]](n)
}

// CountMatchingKeyed returns the number of descendants of n matched by f.
func CountMatchingKeyed[K comparable, N KeyedParent[K, N], F Filter[N]](n N, f F) int {
	return matching[N, keyed[K, N]](n, f)
}

// CountFilesKeyed returns the number of file nodes below n.
func CountFilesKeyed[K comparable, N KeyedFileParent[K, N]](n N) int {
	return CountMatchingKeyed[K](n, FilesOnly[N]{})
}

// CountDirectoriesKeyed returns the number of directory nodes below n.
func CountDirectoriesKeyed[K comparable, N KeyedFileParent[K, N]](n N) int {
	return CountMatchingKeyed[K](n, DirectoriesOnly[N]{})
}

// IsLeafObservable reports whether n currently has no children.
func IsLeafObservable[N ObservableParent[N]](n N) bool {
	return n.ObservableChildren().Len() == 0
}

// CountChildrenObservable returns the current number of direct children of n.
func CountChildrenObservable[N ObservableParent[N]](n N) int {
	return n.ObservableChildren().Len()
}

// CountDescendantsObservable returns the total number of nodes below n.
func CountDescendantsObservable[N ObservableParent[N]](n N) int {
	return descendants[N, observable[N]](n)
}

// CountMatchingObservable returns the number of descendants of n matched by
// f.
func CountMatchingObservable[N ObservableParent[N], F Filter[N]](n N, f F) int {
	return matching[N, observable[N]](n, f)
}

// CountFilesObservable returns the number of file nodes below n.
func CountFilesObservable[N ObservableFileParent[N]](n N) int {
	return CountMatchingObservable(n, FilesOnly[N]{})
}

// CountDirectoriesObservable returns the number of directory nodes below n.
func CountDirectoriesObservable[N ObservableFileParent[N]](n N) int {
	return CountMatchingObservable(n, DirectoriesOnly[N]{})
}
