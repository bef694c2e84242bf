// Package image validates the parameters of a generated image.
package image

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/colorbmp/internal/colour"
)

// Dimension limits, inclusive.
const (
	MinDimension = 10
	MaxDimension = 1000
)

var (
	// ErrNotANumber is returned when a dimension is not a base-10 integer.
	ErrNotANumber = errors.New("not a number")
	// ErrWidthOutOfRange is returned when the width is outside [MinDimension, MaxDimension].
	ErrWidthOutOfRange = errors.New("width out of range")
	// ErrHeightOutOfRange is returned when the height is outside [MinDimension, MaxDimension].
	ErrHeightOutOfRange = errors.New("height out of range")
	// ErrUnknownColour is returned when the colour argument is not red, green or blue.
	ErrUnknownColour = colour.ErrUnknownColour
)

// ValidationError reports which argument failed validation and why.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

// Error returns a message identifying the failed constraint.
func (e *ValidationError) Error() string {
	switch {
	case errors.Is(e.Err, ErrNotANumber):
		return fmt.Sprintf("%s must be a whole number, got %q", e.Field, e.Value)
	case errors.Is(e.Err, ErrWidthOutOfRange), errors.Is(e.Err, ErrHeightOutOfRange):
		return fmt.Sprintf("choose %s between %d and %d (got %s)", e.Field, MinDimension, MaxDimension, e.Value)
	case errors.Is(e.Err, ErrUnknownColour):
		return fmt.Sprintf("just type %s for the %s (got %q)", ColourChoices(), e.Field, e.Value)
	default:
		return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
	}
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ColourChoices lists the colour names for messages, e.g. `"red", "green", or "blue"`.
func ColourChoices() string {
	names := colour.Names()
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = strconv.Quote(name)
	}
	if len(quoted) < 2 {
		return strings.Join(quoted, "")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}

// Request describes a validated single-colour image.
type Request struct {
	Width  int
	Height int
	Colour colour.Colour
}

// ParseRequest validates raw width, height and colour arguments.
// Arguments are checked in order and the first failure is returned.
func ParseRequest(rawWidth, rawHeight, rawColour string) (Request, error) {
	width, err := ParseWidth(rawWidth)
	if err != nil {
		return Request{}, err
	}

	height, err := ParseHeight(rawHeight)
	if err != nil {
		return Request{}, err
	}

	c, err := ParseColour(rawColour)
	if err != nil {
		return Request{}, err
	}

	return Request{Width: width, Height: height, Colour: c}, nil
}

// ParseWidth validates a raw width argument.
func ParseWidth(raw string) (int, error) {
	return parseDimension("width", raw, ErrWidthOutOfRange)
}

// ParseHeight validates a raw height argument.
func ParseHeight(raw string) (int, error) {
	return parseDimension("height", raw, ErrHeightOutOfRange)
}

// ParseColour validates a raw colour argument.
func ParseColour(raw string) (colour.Colour, error) {
	c, err := colour.Parse(raw)
	if err != nil {
		return 0, &ValidationError{Field: "color", Value: raw, Err: ErrUnknownColour}
	}
	return c, nil
}

// Validate checks the invariants of a Request.
func (r Request) Validate() error {
	if !inRange(r.Width) {
		return &ValidationError{Field: "width", Value: strconv.Itoa(r.Width), Err: ErrWidthOutOfRange}
	}
	if !inRange(r.Height) {
		return &ValidationError{Field: "height", Value: strconv.Itoa(r.Height), Err: ErrHeightOutOfRange}
	}
	if !r.Colour.Valid() {
		return &ValidationError{Field: "color", Value: r.Colour.String(), Err: ErrUnknownColour}
	}
	return nil
}

// String returns a short description such as "640x480 red".
func (r Request) String() string {
	return fmt.Sprintf("%dx%d %s", r.Width, r.Height, r.Colour)
}

func parseDimension(field, raw string, rangeErr error) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		// An integer too large for int is still an integer, just out of range.
		if errors.Is(err, strconv.ErrRange) {
			return 0, &ValidationError{Field: field, Value: raw, Err: rangeErr}
		}
		return 0, &ValidationError{Field: field, Value: raw, Err: ErrNotANumber}
	}
	if !inRange(n) {
		return 0, &ValidationError{Field: field, Value: raw, Err: rangeErr}
	}
	return n, nil
}

func inRange(n int) bool {
	return n >= MinDimension && n <= MaxDimension
}
