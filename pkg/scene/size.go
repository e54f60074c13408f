package scene

// SizeSpec is an abstract output size request: an explicit width (keeping
// aspect), an explicit height (keeping aspect), both dimensions, or fully
// unconstrained. The zero value is unconstrained.
type SizeSpec struct {
	Width  *float64
	Height *float64
}

// Default dimensions used when a size spec is fully unconstrained.
const (
	DefaultWidth  = 100.0
	DefaultHeight = 100.0
)

// Unconstrained returns the empty size spec.
func Unconstrained() SizeSpec { return SizeSpec{} }

// WidthOnly requests an explicit width, deriving height from the natural
// aspect ratio.
func WidthOnly(w float64) SizeSpec { return SizeSpec{Width: &w} }

// HeightOnly requests an explicit height, deriving width from the natural
// aspect ratio.
func HeightOnly(h float64) SizeSpec { return SizeSpec{Height: &h} }

// Dims requests both dimensions explicitly.
func Dims(w, h float64) SizeSpec { return SizeSpec{Width: &w, Height: &h} }

// Resolve computes concrete output dimensions. naturalW and naturalH describe
// the scene's own aspect ratio and are consulted only when one dimension must
// be derived from the other; pass zero when unknown, in which case the
// missing dimension copies the explicit one. A fully unconstrained spec
// resolves to the 100x100 fallback.
func (s SizeSpec) Resolve(naturalW, naturalH float64) (w, h float64) {
	switch {
	case s.Width != nil && s.Height != nil:
		return *s.Width, *s.Height
	case s.Width != nil:
		w = *s.Width
		if naturalW > 0 && naturalH > 0 {
			return w, w * naturalH / naturalW
		}
		return w, w
	case s.Height != nil:
		h = *s.Height
		if naturalW > 0 && naturalH > 0 {
			return h * naturalW / naturalH, h
		}
		return h, h
	default:
		return DefaultWidth, DefaultHeight
	}
}
