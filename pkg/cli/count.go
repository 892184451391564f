package cli

import (
	"fmt"

	"github.com/arborlab/treekit/pkg/dirtree"
	"github.com/arborlab/treekit/pkg/tree"
)

// CountCmd counts the files and directories below a path.
type CountCmd struct {
	Path string `arg:"" help:"Directory to count"`
}

// Run executes the count command.
func (cmd *CountCmd) Run(ctx *Context) error {
	root, err := dirtree.Build(ctx.Fs, cmd.Path)
	if err != nil {
		return err
	}
	ctx.Log.Debug().Str("path", cmd.Path).Msg("tree built")

	fmt.Fprintf(ctx.Out, "files: %d\n", tree.CountFiles(root))
	fmt.Fprintf(ctx.Out, "directories: %d\n", tree.CountDirectories(root))
	fmt.Fprintf(ctx.Out, "total: %d\n", tree.CountDescendants(root))
	return nil
}
