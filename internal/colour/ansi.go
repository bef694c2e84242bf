package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for 24-bit terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns a solid block of width spaces drawn in the colour's
// background. A non-positive width falls back to 8.
func Preview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// FormatWithPreview formats a colour as its preview block followed by its hex code.
func FormatWithPreview(c RGB, width int) string {
	return fmt.Sprintf("%s %s", Preview(c, width), c.Hex())
}
