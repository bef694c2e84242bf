package bmp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrIO matches any error returned by WriteFile.
var ErrIO = errors.New("i/o error")

// WriteError records a failed file operation.
type WriteError struct {
	Op   string
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is reports ErrIO as matching.
func (e *WriteError) Is(target error) bool {
	return target == ErrIO
}

// Encode writes buf to w as a complete BMP file and returns the headers it wrote.
// The headers are computed from the laid-out pixel array, so their size fields
// always agree with what follows them.
func Encode(w io.Writer, buf PixelBuffer, layout Layout) (Headers, error) {
	pix := layout.PixelArray(buf)
	headers := BuildHeaders(buf.Width, buf.Height, len(pix))

	if err := headers.Write(w); err != nil {
		return Headers{}, fmt.Errorf("failed to write headers: %w", err)
	}
	if _, err := w.Write(pix); err != nil {
		return Headers{}, fmt.Errorf("failed to write pixel data: %w", err)
	}
	return headers, nil
}

// WriteFile encodes buf into the file at path, creating it or truncating an
// existing file. The file is always closed before returning. On failure the
// partially written file is removed.
func WriteFile(path string, buf PixelBuffer, layout Layout) (headers Headers, err error) {
	f, err := os.Create(path) // #nosec G304 - output path chosen by the user
	if err != nil {
		return Headers{}, &WriteError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = &WriteError{Op: "close", Path: path, Err: closeErr}
		}
		if err != nil {
			_ = os.Remove(path)
			headers = Headers{}
		}
	}()

	bw := bufio.NewWriter(f)
	headers, err = Encode(bw, buf, layout)
	if err != nil {
		return Headers{}, &WriteError{Op: "write", Path: path, Err: err}
	}
	if err := bw.Flush(); err != nil {
		return Headers{}, &WriteError{Op: "flush", Path: path, Err: err}
	}
	return headers, nil
}
