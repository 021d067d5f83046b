package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		hint string
		want tcell.Color
	}{
		{"#fff", tcell.NewRGBColor(255, 255, 255)},
		{"#c84", tcell.NewRGBColor(204, 136, 68)},
		{"#0f0", tcell.NewRGBColor(0, 255, 0)},
		{"#1a2b3c", tcell.NewRGBColor(0x1a, 0x2b, 0x3c)},
		{"", tcell.ColorWhite},
		{"red", tcell.ColorWhite},
		{"#zzz", tcell.ColorWhite},
	}
	for _, tt := range tests {
		if got := ParseColor(tt.hint); got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.hint, got, tt.want)
		}
	}
}
