// ## Overview
// Package tree implements composable capability traits for tree nodes and
// generic traversal algorithms over them. There is no node base type: a
// caller-defined node implements whichever capabilities it needs (indexed
// children, keyed children, observable children, a scalar value, file or
// directory status) and the algorithms accept any node type satisfying the
// capabilities they use. Filters and selectors are zero-size marker types
// passed as type parameters, so a traversal instantiated for one
// (filter, selector) pair compiles with the predicate and projection inlined
// into the loop.
//
// ## Example usage:
//
//	type entry struct {
//		name     string
//		regular  bool
//		children []tree.Box[*entry]
//	}
//
//	func (e *entry) IsFile() bool                { return e.regular }
//	func (e *entry) Children() []tree.Box[*entry] { return e.children }
//
//	root := &entry{name: "root", children: []tree.Box[*entry]{
//		tree.Wrap(&entry{name: "a", regular: true}),
//		tree.Wrap(&entry{name: "b"}),
//	}}
//
//	fmt.Println(tree.CountFiles(root)) // Output: 1
//
//	for e := range tree.WalkFiles(root) {
//		fmt.Println(e.name)
//	}
//
// Traversals never yield the root itself, only nodes below it, and a filter
// never prunes: children of a non-matching node are still visited. All
// routines are read-only over the tree and a sequence returned by a Walk
// function can be re-ranged to restart from scratch.
package tree
