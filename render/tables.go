package render

import (
	"github.com/gdamore/tcell/v2"

	"fortress-client/models"
)

// Appearance is a glyph plus foreground color for one material.
type Appearance struct {
	Rune  rune
	Color tcell.Color
}

// Unknown is the sentinel returned for material codes missing from a table.
// It is deliberately loud: a gap in the tables should be visible in play,
// never rendered as blank.
var Unknown = Appearance{Rune: '?', Color: tcell.ColorFuchsia}

var wallTable = map[models.Material]Appearance{
	models.MaterialSoil:      {Rune: '▓', Color: tcell.NewRGBColor(139, 101, 54)},
	models.MaterialStone:     {Rune: '█', Color: tcell.NewRGBColor(128, 128, 128)},
	models.MaterialGranite:   {Rune: '█', Color: tcell.NewRGBColor(168, 168, 168)},
	models.MaterialWater:     {Rune: '≈', Color: tcell.NewRGBColor(60, 120, 216)},
	models.MaterialMagma:     {Rune: '≈', Color: tcell.NewRGBColor(230, 90, 30)},
	models.MaterialGrass:     {Rune: '▓', Color: tcell.NewRGBColor(70, 160, 70)},
	models.MaterialIronOre:   {Rune: '▒', Color: tcell.NewRGBColor(190, 120, 100)},
	models.MaterialCopperOre: {Rune: '▒', Color: tcell.NewRGBColor(205, 130, 60)},
	models.MaterialGoldOre:   {Rune: '▒', Color: tcell.NewRGBColor(218, 165, 32)},
}

var floorTable = map[models.Material]Appearance{
	models.MaterialSoil:      {Rune: '.', Color: tcell.NewRGBColor(120, 85, 45)},
	models.MaterialStone:     {Rune: '.', Color: tcell.NewRGBColor(110, 110, 110)},
	models.MaterialGranite:   {Rune: '.', Color: tcell.NewRGBColor(150, 150, 150)},
	models.MaterialWater:     {Rune: '~', Color: tcell.NewRGBColor(60, 120, 216)},
	models.MaterialMagma:     {Rune: '~', Color: tcell.NewRGBColor(230, 90, 30)},
	models.MaterialGrass:     {Rune: ',', Color: tcell.NewRGBColor(80, 180, 80)},
	models.MaterialIronOre:   {Rune: '.', Color: tcell.NewRGBColor(190, 120, 100)},
	models.MaterialCopperOre: {Rune: '.', Color: tcell.NewRGBColor(205, 130, 60)},
	models.MaterialGoldOre:   {Rune: '.', Color: tcell.NewRGBColor(218, 165, 32)},
}

// WallAppearance looks up the glyph for a wall material. Codes missing from
// the table return the Unknown sentinel.
func WallAppearance(m models.Material) Appearance {
	if a, ok := wallTable[m]; ok {
		return a
	}
	return Unknown
}

// FloorAppearance looks up the glyph for a floor material.
func FloorAppearance(m models.Material) Appearance {
	if a, ok := floorTable[m]; ok {
		return a
	}
	return Unknown
}
