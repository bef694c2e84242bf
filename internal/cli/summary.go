package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"golang.org/x/term"

	"github.com/jmylchreest/colorbmp/internal/bmp"
	"github.com/jmylchreest/colorbmp/internal/colour"
	"github.com/jmylchreest/colorbmp/internal/image"
)

// Summary describes a written bitmap.
type Summary struct {
	Path            string     `json:"path"`
	Width           int        `json:"width"`
	Height          int        `json:"height"`
	Colour          string     `json:"color"`
	RGB             colour.RGB `json:"rgb"`
	Hex             string     `json:"hex"`
	Layout          string     `json:"layout"`
	FileSize        uint32     `json:"file_size"`
	PixelDataOffset uint32     `json:"pixel_data_offset"`
	ImageSize       uint32     `json:"image_size"`
}

// NewSummary builds a Summary from the request and the headers that were written.
func NewSummary(path string, req image.Request, layout bmp.Layout, headers bmp.Headers) Summary {
	rgb := req.Colour.RGB()
	return Summary{
		Path:            path,
		Width:           req.Width,
		Height:          req.Height,
		Colour:          req.Colour.String(),
		RGB:             rgb,
		Hex:             rgb.Hex(),
		Layout:          layout.String(),
		FileSize:        headers.File.FileSize,
		PixelDataOffset: headers.File.PixelDataOffset,
		ImageSize:       headers.DIB.ImageSize,
	}
}

// formatSummary renders the summary in the given format.
func formatSummary(s Summary, format string, showPreview bool) (string, error) {
	switch format {
	case FormatText:
		return formatSummaryText(s, showPreview), nil
	case FormatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: text, json)", format)
	}
}

func formatSummaryText(s Summary, showPreview bool) string {
	colourText := fmt.Sprintf("%s %s", s.Colour, s.Hex)
	if showPreview {
		colourText = fmt.Sprintf("%s %s", s.Colour, colour.FormatWithPreview(s.RGB, 4))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Wrote %s (%s)\n", s.Path, humanize.Bytes(uint64(s.FileSize)))
	fmt.Fprintf(&b, "  %-18s %dx%d\n", "dimensions:", s.Width, s.Height)
	fmt.Fprintf(&b, "  %-18s %s\n", "colour:", colourText)
	fmt.Fprintf(&b, "  %-18s %s\n", "layout:", s.Layout)
	fmt.Fprintf(&b, "  %-18s %d bytes\n", "file size:", s.FileSize)
	fmt.Fprintf(&b, "  %-18s %d\n", "pixel data offset:", s.PixelDataOffset)
	fmt.Fprintf(&b, "  %-18s %d bytes\n", "image size:", s.ImageSize)
	return b.String()
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 - file descriptors fit in int
}
