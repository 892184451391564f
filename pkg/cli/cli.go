package cli

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// CLI is the top-level command set parsed by kong.
var CLI struct {
	Count CountCmd `cmd:"" help:"Count files and directories under a path"`
	List  ListCmd  `cmd:"" help:"List files or directories under a path"`
	Stat  StatCmd  `cmd:"" help:"Report counts for a YAML tree definition"`
	Debug bool     `help:"Enable debug logging"`
}

// Context carries what every command needs: the filesystem to read, the
// stream to print results on, and the logger.
type Context struct {
	Fs  afero.Fs
	Out io.Writer
	Log zerolog.Logger
}
