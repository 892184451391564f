// Package treefile loads tree definitions from YAML documents. A loaded
// node exposes its children both as an ordered sequence and as a name-keyed
// mapping, so one document can drive either traversal family.
package treefile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arborlab/treekit/pkg/tree"
)

// Node is one node of a loaded tree definition.
type Node struct {
	name     string
	value    int
	regular  bool
	children []tree.Box[*Node]
	byName   *tree.KeyedBoxes[string, *Node]
}

// Name returns the node's name, unique among its siblings.
func (n *Node) Name() string { return n.name }

// Value returns the node's declared value.
func (n *Node) Value() int { return n.value }

// IsFile reports whether the node was declared as a file.
func (n *Node) IsFile() bool { return n.regular }

// Children returns the node's children in document order.
func (n *Node) Children() []tree.Box[*Node] { return n.children }

// KeyedChildren returns the node's children keyed by name, in document
// order.
func (n *Node) KeyedChildren() *tree.KeyedBoxes[string, *Node] { return n.byName }

// doc mirrors the YAML shape of a node.
type doc struct {
	Name     string `yaml:"name"`
	Value    int    `yaml:"value"`
	File     bool   `yaml:"file"`
	Children []doc  `yaml:"children"`
}

// Parse builds a tree from a YAML document.
func Parse(data []byte) (*Node, error) {
	var d doc
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("treefile: %w", err)
	}
	return build(&d)
}

// Load builds a tree from a YAML file on disk.
func Load(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("treefile: %w", err)
	}
	return Parse(data)
}

func build(d *doc) (*Node, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("treefile: node missing name")
	}
	if d.File && len(d.Children) > 0 {
		return nil, fmt.Errorf("treefile: file node %q cannot have children", d.Name)
	}

	n := &Node{
		name:    d.Name,
		value:   d.Value,
		regular: d.File,
		byName:  tree.NewKeyedBoxes[string, *Node](),
	}
	for i := range d.Children {
		child, err := build(&d.Children[i])
		if err != nil {
			return nil, err
		}
		if _, exists := n.byName.Get(child.name); exists {
			return nil, fmt.Errorf("treefile: duplicate child %q under %q", child.name, n.name)
		}
		n.children = append(n.children, tree.Wrap(child))
		n.byName.Put(child.name, child)
	}
	return n, nil
}
