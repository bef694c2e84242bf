package bmp

import (
	"encoding/binary"
	"io"
)

// Format constants.
const (
	SignatureSize   = 2
	FileHeaderSize  = 12
	DIBHeaderSize   = 40
	PixelDataOffset = SignatureSize + FileHeaderSize + DIBHeaderSize
	Planes          = 1
	BitsPerPixel    = PixelSize * 8
	CompressionNone = 0
	PixelsPerMeter  = 2834 // ~72 DPI
)

// Signature is the two-byte magic at the start of every BMP file.
var Signature = [SignatureSize]byte{'B', 'M'}

// FileHeader is the bitmap file header that follows the signature.
// The two reserved fields are always zero.
type FileHeader struct {
	FileSize        uint32
	Reserved1       uint16
	Reserved2       uint16
	PixelDataOffset uint32
}

// DIBHeader is a BITMAPINFOHEADER.
type DIBHeader struct {
	HeaderSize      uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitsPerPixel    uint16
	Compression     uint32
	ImageSize       uint32
	XPixelsPerMeter int32
	YPixelsPerMeter int32
	ColorsUsed      uint32
	ImportantColors uint32
}

// PlanesAndBitsPerPixel returns Planes and BitsPerPixel packed the way they
// sit on disk as one little-endian 32-bit word: planes in bits 0-15, bits per
// pixel in bits 16-31. For a 24-bit image this is 0x00180001.
func (h DIBHeader) PlanesAndBitsPerPixel() uint32 {
	return uint32(h.Planes) | uint32(h.BitsPerPixel)<<16
}

// Headers groups everything written before the pixel array.
type Headers struct {
	Signature [SignatureSize]byte
	File      FileHeader
	DIB       DIBHeader
}

// BuildHeaders computes the headers for an image whose pixel array, as stored
// on disk, is pixelDataLen bytes long.
func BuildHeaders(width, height, pixelDataLen int) Headers {
	return Headers{
		Signature: Signature,
		File: FileHeader{
			FileSize:        uint32(PixelDataOffset + pixelDataLen), // #nosec G115 - bounded by validated dimensions
			PixelDataOffset: PixelDataOffset,
		},
		DIB: DIBHeader{
			HeaderSize:      DIBHeaderSize,
			Width:           int32(width),  // #nosec G115 - bounded by validated dimensions
			Height:          int32(height), // #nosec G115 - bounded by validated dimensions
			Planes:          Planes,
			BitsPerPixel:    BitsPerPixel,
			Compression:     CompressionNone,
			ImageSize:       uint32(pixelDataLen), // #nosec G115 - bounded by validated dimensions
			XPixelsPerMeter: PixelsPerMeter,
			YPixelsPerMeter: PixelsPerMeter,
		},
	}
}

// Write writes the signature, file header and DIB header to w.
func (h Headers) Write(w io.Writer) error {
	if _, err := w.Write(h.Signature[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, h.File); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, h.DIB)
}
