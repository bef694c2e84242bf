package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger returns the run logger. Verbose enables debug output, quiet
// disables it entirely, otherwise only warnings and errors are shown.
func newLogger(out io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case quiet:
		level = hclog.Off
	case verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "colorbmp",
		Output: out,
		Level:  level,
	})
}
