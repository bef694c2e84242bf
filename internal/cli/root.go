// Package cli provides the command-line interface for colorbmp.
package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/colorbmp/internal/bmp"
	"github.com/jmylchreest/colorbmp/internal/image"
	"github.com/jmylchreest/colorbmp/internal/version"
)

// DefaultOutput is the file written when --output is not given.
const DefaultOutput = "colorimg.bmp"

// ErrArgumentCount is returned when the command is not given exactly three arguments.
var ErrArgumentCount = errors.New("wrong number of arguments")

// negativeNumberFlag matches the pflag error for an argument such as "-5".
var negativeNumberFlag = regexp.MustCompile(`^unknown shorthand flag: '\d' in (-\d+)$`)

var _ pflag.Value = (*bmp.Layout)(nil)

// NewRootCmd builds the colorbmp command.
func NewRootCmd() *cobra.Command {
	opts := &Options{
		Output: DefaultOutput,
		Layout: bmp.LayoutStandard,
		Format: FormatText,
	}

	rootCmd := &cobra.Command{
		Use:   "colorbmp <width> <height> <color>",
		Short: "Create a single-colour bitmap image",
		Long: fmt.Sprintf(`colorbmp writes an uncompressed 24-bit BMP file filled with one colour.

Width and height must be whole numbers between %d and %d. The colour is
picked by its first letter: %s (so "r" and "ruby" are
both red).

By default each pixel row is padded to a multiple of four bytes and rows are
stored bottom-up, so the file opens in any BMP reader. Use --layout compact
for unpadded rows: the file is then exactly 54 + width*height*3 bytes
(354 bytes for 10x10), but readers that enforce row alignment may reject it
when width*3 is not a multiple of four.

Examples:
  # Write a 640x480 red image to colorimg.bmp
  colorbmp 640 480 red

  # Write a 10x10 blue image without row padding
  colorbmp --layout compact 10 10 blue

  # Write to a different file and print a JSON summary
  colorbmp -o green.bmp -f json 200 100 green`,
			image.MinDimension, image.MaxDimension, image.ColourChoices()),
		Version:      version.Short(),
		SilenceUsage: true,
		Args:         exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.Output, "output", "o", DefaultOutput, "output file")
	flags.Var(&opts.Layout, "layout", fmt.Sprintf("pixel row layout (%s)", strings.Join(bmp.LayoutNames(), ", ")))
	flags.StringVarP(&opts.Format, "format", "f", FormatText, "summary format (text, json)")
	flags.BoolVar(&opts.Preview, "preview", false, "show a colour swatch when writing to a terminal")

	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")
	rootCmd.SetFlagErrorFunc(dimensionFlagError)

	return rootCmd
}

func usageLine() string {
	return fmt.Sprintf("USAGE: colorbmp WIDTH HEIGHT COLOR (%s)", image.ColourChoices())
}

// exactArgs is cobra.ExactArgs with the usage line attached to the error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: expected %d, got %d\n%s", ErrArgumentCount, n, len(args), usageLine())
		}
		return nil
	}
}

// dimensionFlagError reports a negative number that pflag rejected as an
// unknown shorthand flag as the argument it stands in for. pflag stops at the
// offending token, so the positional arguments parsed so far give its index.
func dimensionFlagError(cmd *cobra.Command, err error) error {
	m := negativeNumberFlag.FindStringSubmatch(err.Error())
	if m == nil {
		return err
	}

	args := append(cmd.Flags().Args(), m[1])
	if len(args) > 3 {
		return fmt.Errorf("%w: expected 3, got more\n%s", ErrArgumentCount, usageLine())
	}

	if _, werr := image.ParseWidth(args[0]); werr != nil {
		return werr
	}
	if len(args) > 1 {
		if _, herr := image.ParseHeight(args[1]); herr != nil {
			return herr
		}
	}
	if len(args) > 2 {
		if _, cerr := image.ParseColour(args[2]); cerr != nil {
			return cerr
		}
	}
	return err
}
