package tree

// Filter is a predicate over a node. Implementations are zero-size marker
// types supplied at the call site as type parameters, so Match specializes
// into the traversal loop instead of going through a call indirection. Match
// must be pure and answer consistently for the same node within one call.
type Filter[N any] interface {
	Match(n N) bool
}

// Selector is a projection from a node to a result value. Same marker-type
// convention as Filter.
type Selector[N, V any] interface {
	Select(n N) V
}

// FilesOnly matches file nodes.
type FilesOnly[N FileOrDirectory] struct{}

func (FilesOnly[N]) Match(n N) bool { return n.IsFile() }

// DirectoriesOnly matches directory nodes.
type DirectoriesOnly[N FileOrDirectory] struct{}

func (DirectoriesOnly[N]) Match(n N) bool { return !n.IsFile() }

// MatchAll matches every node.
type MatchAll[N any] struct{}

func (MatchAll[N]) Match(N) bool { return true }

// Identity selects the node itself.
type Identity[N any] struct{}

func (Identity[N]) Select(n N) N { return n }
