package scene

import (
	"fmt"
	"math"
)

// Color is an RGBA color with channels in [0, 1]. The alpha channel is kept
// separate from the RGB text form: SVG presentation attributes carry it as a
// sibling *-opacity attribute.
type Color struct {
	R, G, B, A float64
}

// RGBA returns an opaque-capable color from channel values in [0, 1].
func RGBA(r, g, b, a float64) Color { return Color{R: r, G: g, B: b, A: a} }

// RGB returns a fully opaque color from channel values in [0, 1].
func RGB(r, g, b float64) Color { return Color{R: r, G: g, B: b, A: 1} }

// CSS returns the rgb(r,g,b) text form with channels scaled to 0-255.
func (c Color) CSS() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	return int(math.Round(v * 255))
}
