package scene

import "github.com/matzehuels/scenesvg/pkg/geom"

// Texture is a fill or stroke paint source. The implementations form a closed
// set: SolidColor, LinearGradient, and RadialGradient.
type Texture interface {
	texture()
}

// SolidColor paints with a single color. It renders as direct fill/stroke
// presentation attributes rather than a paint-server definition.
type SolidColor struct {
	Color Color
}

// SpreadMethod controls how a gradient extends beyond its defined stop range.
type SpreadMethod int

const (
	// SpreadPad clamps to the terminal stop colors.
	SpreadPad SpreadMethod = iota
	// SpreadReflect mirrors the stop range.
	SpreadReflect
	// SpreadRepeat tiles the stop range.
	SpreadRepeat
)

// Stop is a single gradient stop. Offset is a fraction in [0, 1] across the
// gradient's geometry.
type Stop struct {
	Offset  float64
	Color   Color
	Opacity float64
}

// LinearGradient paints along the line from Start to End in the gradient's
// own coordinate space, placed into user space by Transform.
type LinearGradient struct {
	Stops     []Stop
	Spread    SpreadMethod
	Transform geom.Affine
	Start     geom.Point
	End       geom.Point
}

// RadialGradient paints between two circles: an inner circle (Center0,
// Radius0) and an outer circle (Center1, Radius1). SVG supports only a focal
// point plus one outer circle, so the compiler remaps the two-circle form at
// encoding time.
type RadialGradient struct {
	Stops     []Stop
	Spread    SpreadMethod
	Transform geom.Affine
	Center0   geom.Point
	Radius0   float64
	Center1   geom.Point
	Radius1   float64
}

func (*SolidColor) texture()     {}
func (*LinearGradient) texture() {}
func (*RadialGradient) texture() {}

// Solid is a convenience constructor for a solid-color texture.
func Solid(c Color) *SolidColor { return &SolidColor{Color: c} }
