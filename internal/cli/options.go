package cli

import (
	"fmt"

	"github.com/jmylchreest/colorbmp/internal/bmp"
)

// Summary formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options holds the flag values of a run.
type Options struct {
	Output  string
	Layout  bmp.Layout
	Format  string
	Preview bool
	Verbose bool
	Quiet   bool
}

// Validate checks the options for invalid values and conflicting flags.
func (o *Options) Validate() error {
	if o.Output == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	if o.Format != FormatText && o.Format != FormatJSON {
		return fmt.Errorf("unsupported format: %s (supported: text, json)", o.Format)
	}
	if o.Verbose && o.Quiet {
		return fmt.Errorf("--verbose and --quiet cannot be used together")
	}
	return nil
}
