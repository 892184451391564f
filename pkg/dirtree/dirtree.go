// Package dirtree snapshots a directory hierarchy into an in-memory tree
// whose nodes satisfy the traversal capabilities. The filesystem is reached
// through afero, so builds run against the OS or an in-memory fs alike.
package dirtree

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/arborlab/treekit/pkg/tree"
)

// Node is a snapshot of one file or directory.
type Node struct {
	name     string
	path     string
	size     int64
	regular  bool
	children []tree.Box[*Node]
}

// Name returns the base name of the entry.
func (n *Node) Name() string { return n.name }

// Path returns the entry's path as given to or joined from Build's root.
func (n *Node) Path() string { return n.path }

// Value returns the entry's size in bytes.
func (n *Node) Value() int64 { return n.size }

// IsFile reports whether the entry is a regular file.
func (n *Node) IsFile() bool { return n.regular }

// Children returns the entry's children in directory read order (sorted by
// name).
func (n *Node) Children() []tree.Box[*Node] { return n.children }

// PathOf selects a node's path.
type PathOf struct{}

func (PathOf) Select(n *Node) string { return n.Path() }

// SizeOf selects a node's size.
type SizeOf struct{}

func (SizeOf) Select(n *Node) int64 { return n.Value() }

// Build reads root and every directory below it into a snapshot tree.
func Build(fsys afero.Fs, root string) (*Node, error) {
	info, err := fsys.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("dirtree: %w", err)
	}
	return build(fsys, root, info)
}

func build(fsys afero.Fs, path string, info fs.FileInfo) (*Node, error) {
	n := &Node{
		name:    info.Name(),
		path:    path,
		size:    info.Size(),
		regular: !info.IsDir(),
	}
	if info.IsDir() {
		entries, err := afero.ReadDir(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("dirtree: %w", err)
		}
		for _, e := range entries {
			child, err := build(fsys, filepath.Join(path, e.Name()), e)
			if err != nil {
				return nil, err
			}
			n.children = append(n.children, tree.Wrap(child))
		}
	}
	return n, nil
}
