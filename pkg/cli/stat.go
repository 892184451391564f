package cli

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/arborlab/treekit/pkg/tree"
	"github.com/arborlab/treekit/pkg/treefile"
)

// StatCmd reports counts for a tree defined in a YAML file.
type StatCmd struct {
	File string `arg:"" help:"YAML tree definition"`
}

// Run executes the stat command.
func (cmd *StatCmd) Run(ctx *Context) error {
	data, err := afero.ReadFile(ctx.Fs, cmd.File)
	if err != nil {
		return err
	}
	root, err := treefile.Parse(data)
	if err != nil {
		return err
	}

	total := tree.CountDescendants(root)
	// The keyed view of the same document must describe the same tree.
	if keyed := tree.CountDescendantsKeyed[string](root); keyed != total {
		return fmt.Errorf("indexed and keyed views disagree: %d vs %d", total, keyed)
	}
	ctx.Log.Debug().Str("file", cmd.File).Int("nodes", total).Msg("tree loaded")

	fmt.Fprintf(ctx.Out, "name: %s\n", root.Name())
	fmt.Fprintf(ctx.Out, "nodes: %d\n", total)
	fmt.Fprintf(ctx.Out, "files: %d\n", tree.CountFiles(root))
	fmt.Fprintf(ctx.Out, "directories: %d\n", tree.CountDirectories(root))
	fmt.Fprintf(ctx.Out, "leaf: %v\n", tree.IsLeaf(root))
	return nil
}
