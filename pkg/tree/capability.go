package tree

// Capability interfaces implemented by node types. Each one is minimal and
// independent; a concrete node type composes whichever subset it needs, and
// every algorithm in this package asks only for the subset it uses. They are
// meant as type-parameter constraints, not as boxed interface values, so the
// child access compiles down to direct calls on the concrete node type.

// Parent is the capability of nodes with an ordered, fixed sequence of owned
// children. Length is queryable and access is positional; the sequence does
// not change once the node is built.
type Parent[N any] interface {
	Children() []Box[N]
}

// KeyedParent is the capability of nodes that own their children through a
// unique-key mapping. Iteration order is the insertion order of the mapping.
type KeyedParent[K comparable, N any] interface {
	KeyedChildren() *KeyedBoxes[K, N]
}

// ObservableParent is the capability of nodes whose child sequence may grow
// after the node is constructed. Acyclicity is the caller's responsibility
// for this variant; a cycle makes traversal not terminate.
type ObservableParent[N any] interface {
	ObservableChildren() *BoxList[N]
}

// Valuer is the capability of nodes carrying one scalar value.
type Valuer[V any] interface {
	Value() V
}

// FileOrDirectory is the capability of nodes that are either a file or a
// directory. Directory status is always the negation of IsFile; it is never
// stored or overridden on its own.
type FileOrDirectory interface {
	IsFile() bool
}

// IsDirectory reports whether n is a directory.
func IsDirectory(n FileOrDirectory) bool {
	return !n.IsFile()
}

// FileParent constrains nodes with indexed children and file/directory
// status.
type FileParent[N any] interface {
	Parent[N]
	FileOrDirectory
}

// KeyedFileParent constrains nodes with keyed children and file/directory
// status.
type KeyedFileParent[K comparable, N any] interface {
	KeyedParent[K, N]
	FileOrDirectory
}

// ObservableFileParent constrains nodes with observable children and
// file/directory status.
type ObservableFileParent[N any] interface {
	ObservableParent[N]
	FileOrDirectory
}
