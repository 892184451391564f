package cli

import (
	"fmt"
	"iter"
	"slices"

	"github.com/arborlab/treekit/pkg/dirtree"
	"github.com/arborlab/treekit/pkg/tree"
)

// ListCmd enumerates files or directories below a path.
type ListCmd struct {
	Path   string `arg:"" help:"Directory to list"`
	Filter string `help:"Which nodes to list" enum:"files,dirs,all" default:"files"`
	Order  string `help:"Traversal order" enum:"dfs,bfs" default:"dfs"`
	Format string `help:"Output format" enum:"text,json,csv" default:"text"`
}

// Run executes the list command.
func (cmd *ListCmd) Run(ctx *Context) error {
	root, err := dirtree.Build(ctx.Fs, cmd.Path)
	if err != nil {
		return err
	}
	nodes := slices.Collect(cmd.enumerate(root))
	ctx.Log.Debug().
		Str("path", cmd.Path).
		Str("filter", cmd.Filter).
		Str("order", cmd.Order).
		Int("matches", len(nodes)).
		Msg("tree enumerated")

	w, err := newWriter(cmd.Format)
	if err != nil {
		return err
	}
	return w.Write(ctx.Out, nodes)
}

func (cmd *ListCmd) enumerate(root *dirtree.Node) iter.Seq[*dirtree.Node] {
	bfs := cmd.Order == "bfs"
	switch cmd.Filter {
	case "files":
		if bfs {
			return tree.WalkFilesBreadth(root)
		}
		return tree.WalkFiles(root)
	case "dirs":
		if bfs {
			return tree.WalkDirectoriesBreadth(root)
		}
		return tree.WalkDirectories(root)
	default:
		if bfs {
			return tree.WalkBreadth(root)
		}
		return tree.Walk(root)
	}
}

func newWriter(format string) (Writer, error) {
	switch format {
	case "json":
		return JsonWriter{}, nil
	case "csv":
		return CsvWriter{}, nil
	case "text":
		return TextWriter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
