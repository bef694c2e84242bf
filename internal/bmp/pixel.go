// Package bmp encodes single-colour 24-bit uncompressed BMP files.
//
// Every multi-byte field is written little-endian regardless of the host, as
// the BMP format requires. Files are laid out as:
//
//	offset  size  field
//	     0     2  signature "BM"
//	     2    12  file header (size, reserved1, reserved2, pixel data offset)
//	    14    40  DIB header (BITMAPINFOHEADER)
//	    54     n  pixel array
package bmp

import (
	"bytes"

	"github.com/jmylchreest/colorbmp/internal/colour"
)

// PixelSize is the number of bytes in one 24-bit pixel.
const PixelSize = 3

// Pixel is a 24-bit pixel in on-disk blue-green-red order.
type Pixel struct {
	B uint8
	G uint8
	R uint8
}

// PixelFromRGB converts an RGB triple to its on-disk pixel.
func PixelFromRGB(c colour.RGB) Pixel {
	return Pixel{B: c.B, G: c.G, R: c.R}
}

// Bytes returns the pixel's three bytes in on-disk order.
func (p Pixel) Bytes() [PixelSize]byte {
	return [PixelSize]byte{p.B, p.G, p.R}
}

// PixelBuffer holds width*height packed pixels, row-major, without row padding.
// Row 0 is the first row filled.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// BuildPixelBuffer returns a buffer of width*height pixels all set to c.
func BuildPixelBuffer(width, height int, c colour.Colour) PixelBuffer {
	p := PixelFromRGB(c.RGB()).Bytes()
	return PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    bytes.Repeat(p[:], width*height),
	}
}

// Len returns the buffer length in bytes.
func (b PixelBuffer) Len() int {
	return len(b.Pix)
}

// Stride returns the number of bytes in one unpadded row.
func (b PixelBuffer) Stride() int {
	return b.Width * PixelSize
}

// Row returns the bytes of row y.
func (b PixelBuffer) Row(y int) []byte {
	off := y * b.Stride()
	return b.Pix[off : off+b.Stride()]
}
