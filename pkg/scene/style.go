package scene

// LineCap names the stroke endpoint shapes. The set is closed.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin names the stroke corner shapes. The set is closed.
type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// FillRule names the interior test used when filling self-intersecting
// paths. The set is closed.
type FillRule int

const (
	FillWinding FillRule = iota
	FillEvenOdd
)

// FontSlant names the font posture variants. The set is closed.
type FontSlant int

const (
	SlantNormal FontSlant = iota
	SlantItalic
	SlantOblique
)

// FontWeight names the font weight variants. The set is closed.
type FontWeight int

const (
	WeightNormal FontWeight = iota
	WeightBold
)

// Dashing is a stroke dash pattern: a sequence of on/off lengths and a
// starting offset into the pattern.
type Dashing struct {
	Array  []float64
	Offset float64
}

// Style is the attribute bag attached to a StyleNode. Every field is
// independently optional; a nil field means the attribute is absent and the
// corresponding SVG output is omitted entirely, inheriting the parent or
// default value.
type Style struct {
	FillTexture *Texture
	LineTexture *Texture
	LineWidth   *float64
	LineCap     *LineCap
	LineJoin    *LineJoin
	FillRule    *FillRule
	Dashing     *Dashing
	Opacity     *float64
	FontSize    *float64
	FontSlant   *FontSlant
	FontWeight  *FontWeight
	FontFamily  *string
	MiterLimit  *float64

	// ClipPaths is an ordered clip stack, outermost first. Content is
	// clipped by every path in the stack.
	ClipPaths []Path
}

// WithFill sets the fill texture.
func (s Style) WithFill(t Texture) Style { s.FillTexture = &t; return s }

// WithLine sets the line (stroke) texture.
func (s Style) WithLine(t Texture) Style { s.LineTexture = &t; return s }

// WithLineWidth sets the stroke width.
func (s Style) WithLineWidth(w float64) Style { s.LineWidth = &w; return s }

// WithLineCap sets the stroke line cap.
func (s Style) WithLineCap(c LineCap) Style { s.LineCap = &c; return s }

// WithLineJoin sets the stroke line join.
func (s Style) WithLineJoin(j LineJoin) Style { s.LineJoin = &j; return s }

// WithFillRule sets the fill rule.
func (s Style) WithFillRule(r FillRule) Style { s.FillRule = &r; return s }

// WithDashing sets the stroke dash pattern.
func (s Style) WithDashing(array []float64, offset float64) Style {
	s.Dashing = &Dashing{Array: array, Offset: offset}
	return s
}

// WithOpacity sets the element opacity.
func (s Style) WithOpacity(o float64) Style { s.Opacity = &o; return s }

// WithFontSize sets the font size.
func (s Style) WithFontSize(v float64) Style { s.FontSize = &v; return s }

// WithFontSlant sets the font slant.
func (s Style) WithFontSlant(v FontSlant) Style { s.FontSlant = &v; return s }

// WithFontWeight sets the font weight.
func (s Style) WithFontWeight(v FontWeight) Style { s.FontWeight = &v; return s }

// WithFontFamily sets the font family.
func (s Style) WithFontFamily(v string) Style { s.FontFamily = &v; return s }

// WithMiterLimit sets the stroke miter limit.
func (s Style) WithMiterLimit(v float64) Style { s.MiterLimit = &v; return s }

// WithClip pushes a clip path onto the clip stack (outermost first).
func (s Style) WithClip(p Path) Style {
	s.ClipPaths = append(append([]Path{}, s.ClipPaths...), p)
	return s
}
