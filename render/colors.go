package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor converts a wire display hint ("#fff" or "#ffffff") into a tcell
// color. Unparseable hints fall back to white so a bad hint stays visible
// instead of vanishing into the background.
func ParseColor(hint string) tcell.Color {
	c, err := colorful.Hex(expandShorthand(hint))
	if err != nil {
		return tcell.ColorWhite
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// expandShorthand turns CSS #rgb shorthand into the #rrggbb form colorful
// parses.
func expandShorthand(hint string) string {
	if len(hint) != 4 || hint[0] != '#' {
		return hint
	}
	var b strings.Builder
	b.WriteByte('#')
	for _, ch := range hint[1:] {
		b.WriteRune(ch)
		b.WriteRune(ch)
	}
	return b.String()
}
