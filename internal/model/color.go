package model

import "fmt"

// Color is an RGB triple, marshaled to JSON as [r, g, b].
type Color [3]uint8

// ColorGray is the fallback color for categories without a color entry.
var ColorGray = Color{156, 163, 175}

// Hex returns the color as a #rrggbb string suitable for terminal styling.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
