package anthill

import (
	"image/color"

	"anthill/internal/field"
)

var (
	// AntColor is used for searching ants.
	AntColor = color.RGBA{R: 0xc2, G: 0x23, B: 0x30, A: 0xff}
	// CarryingColor is used for ants that have found food.
	CarryingColor = color.RGBA{R: 0xf2, G: 0xc1, B: 0x4e, A: 0xff}
	// FoodColor fills the food rectangles.
	FoodColor = color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}
)

var trailPalette = buildTrailPalette()

// Palette maps Cells() values to colors.
func (g *Ground) Palette() []color.RGBA {
	return trailPalette
}

func buildTrailPalette() []color.RGBA {
	palette := make([]color.RGBA, len(field.Kinds))
	for _, k := range field.Kinds {
		palette[k] = TrailColor(k)
	}
	return palette
}

// TrailColor returns the color used for a grid cell holding k.
func TrailColor(k field.Kind) color.RGBA {
	switch k {
	case field.ToFood:
		return color.RGBA{R: 0x6d, G: 0x5a, B: 0x1e, A: 0xff}
	case field.ToHome:
		return color.RGBA{R: 0x2a, G: 0x3d, B: 0x5c, A: 0xff}
	case field.None:
		return color.RGBA{R: 0x18, G: 0x14, B: 0x10, A: 0xff}
	}
	return color.RGBA{A: 0xff}
}

// AntRGBA returns the color an ant should be drawn with.
func AntRGBA(carrying bool) color.RGBA {
	if carrying {
		return CarryingColor
	}
	return AntColor
}
