package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorbmp/internal/bmp"
	"github.com/jmylchreest/colorbmp/internal/image"
)

// runGenerate validates the arguments, then builds and writes the bitmap.
// Nothing touches the filesystem until every argument is valid.
func runGenerate(cmd *cobra.Command, opts *Options, args []string) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose, opts.Quiet)

	req, err := image.ParseRequest(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}
	logger.Debug("validated request", "request", req.String())

	buf := bmp.BuildPixelBuffer(req.Width, req.Height, req.Colour)
	logger.Debug("built pixel buffer", "pixels", req.Width*req.Height, "bytes", humanize.Bytes(uint64(buf.Len()))) // #nosec G115 - buffer length is non-negative

	headers, err := bmp.WriteFile(opts.Output, buf, opts.Layout)
	if err != nil {
		return err
	}
	logger.Debug("wrote bitmap",
		"path", opts.Output,
		"layout", opts.Layout.String(),
		"size", humanize.Bytes(uint64(headers.File.FileSize)),
	)

	if opts.Quiet && opts.Format == FormatText {
		return nil
	}

	summary := NewSummary(opts.Output, req, opts.Layout, headers)
	output, err := formatSummary(summary, opts.Format, opts.Preview && isTerminal(cmd.OutOrStdout()))
	if err != nil {
		return fmt.Errorf("failed to format summary: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), output)

	return nil
}
