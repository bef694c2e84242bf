package bmp

import (
	"fmt"
	"strings"
)

// Layout selects how the pixel buffer is arranged in the file.
type Layout int

const (
	// LayoutStandard pads each row to a multiple of four bytes and stores
	// rows bottom-up, as conformant BMP readers expect.
	LayoutStandard Layout = iota
	// LayoutCompact stores rows unpadded in fill order. The file is exactly
	// PixelDataOffset + width*height*3 bytes long. Readers that enforce row
	// alignment reject it when width*3 is not a multiple of four.
	LayoutCompact
)

// layoutNames is indexed by Layout.
var layoutNames = []string{
	LayoutStandard: "standard",
	LayoutCompact:  "compact",
}

// LayoutNames returns the layout names in declaration order.
func LayoutNames() []string {
	return append([]string(nil), layoutNames...)
}

// String returns the layout name.
func (l Layout) String() string {
	if l >= 0 && int(l) < len(layoutNames) {
		return layoutNames[l]
	}
	return fmt.Sprintf("layout(%d)", int(l))
}

// Set parses a layout name. It makes *Layout usable as a command-line flag value.
func (l *Layout) Set(s string) error {
	for i, name := range layoutNames {
		if strings.EqualFold(s, name) {
			*l = Layout(i)
			return nil
		}
	}
	return fmt.Errorf("unknown layout %q (valid: %s)", s, strings.Join(layoutNames, ", "))
}

// Type returns the flag type name.
func (l *Layout) Type() string {
	return "layout"
}

// RowSize returns the number of bytes one row of width pixels occupies on disk.
func (l Layout) RowSize(width int) int {
	n := width * PixelSize
	if l == LayoutCompact {
		return n
	}
	return (n + 3) &^ 3
}

// PixelArraySize returns the on-disk pixel array length for the given dimensions.
func (l Layout) PixelArraySize(width, height int) int {
	return l.RowSize(width) * height
}

// PixelArray arranges buf into the bytes stored after the headers.
func (l Layout) PixelArray(buf PixelBuffer) []byte {
	if l == LayoutCompact {
		return buf.Pix
	}

	rowSize := l.RowSize(buf.Width)
	out := make([]byte, l.PixelArraySize(buf.Width, buf.Height))
	for y := 0; y < buf.Height; y++ {
		// Bottom-up: the first buffer row is the last row on disk.
		dst := out[(buf.Height-1-y)*rowSize:]
		copy(dst, buf.Row(y))
	}
	return out
}
