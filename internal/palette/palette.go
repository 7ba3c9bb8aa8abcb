// Package palette picks the colors particle groups are drawn with.
package palette

import (
	"image/color"
	"math"

	hsluv "github.com/hsluv/hsluv-go"
)

// Saturation and lightness of group colors, in HSLuv percent.
const (
	saturation = 100
	lightness  = 60
)

// Groups returns n colors with evenly spaced hues and the given alpha.
// HSLuv keeps the perceived brightness equal across groups, so no group
// stands out only because of its hue.
func Groups(n int, alpha uint8) []color.NRGBA {
	colors := make([]color.NRGBA, n)
	for i := range colors {
		r, g, b := hsluv.HsluvToRGB(360*float64(i)/float64(n), saturation, lightness)
		colors[i] = color.NRGBA{R: channel(r), G: channel(g), B: channel(b), A: alpha}
	}
	return colors
}

// channel converts a [0, 1] component to 8 bits.
func channel(v float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(v, 0), 1) * 0xff))
}
