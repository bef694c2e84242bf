// Package colour provides the fill colours supported by colorbmp.
package colour

import (
	"errors"
	"fmt"
)

// ErrUnknownColour is returned when a colour name does not map to a fill colour.
var ErrUnknownColour = errors.New("unknown colour")

// Colour identifies one of the supported fill colours.
type Colour int

const (
	// Red fills with rgb(255, 0, 0).
	Red Colour = iota + 1
	// Green fills with rgb(0, 255, 0).
	Green
	// Blue fills with rgb(0, 0, 255).
	Blue
)

// String returns the lower-case colour name.
func (c Colour) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("colour(%d)", int(c))
	}
}

// Valid reports whether c is one of Red, Green or Blue.
func (c Colour) Valid() bool {
	return c == Red || c == Green || c == Blue
}

// RGB returns the fixed triple for the colour.
// An invalid colour yields black.
func (c Colour) RGB() RGB {
	switch c {
	case Red:
		return RGB{R: 0xff}
	case Green:
		return RGB{G: 0xff}
	case Blue:
		return RGB{B: 0xff}
	default:
		return RGB{}
	}
}

// Parse maps a colour name to a Colour by its first character.
// "r", "red" and "ruby" all resolve to Red. Matching is case-sensitive.
func Parse(name string) (Colour, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: empty colour name", ErrUnknownColour)
	}

	switch name[0] {
	case 'r':
		return Red, nil
	case 'g':
		return Green, nil
	case 'b':
		return Blue, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownColour, name)
	}
}

// Names returns the canonical colour names in declaration order.
func Names() []string {
	return []string{Red.String(), Green.String(), Blue.String()}
}
