package io

import (
	"github.com/matzehuels/scenesvg/pkg/errors"
	"github.com/matzehuels/scenesvg/pkg/geom"
	"github.com/matzehuels/scenesvg/pkg/scene"
)

// Scene is a decoded scene document: the tree itself plus the optional
// natural dimensions used for aspect-preserving size resolution.
type Scene struct {
	NaturalWidth  float64
	NaturalHeight float64
	Root          scene.Node
}

// =============================================================================
// Wire Types
// =============================================================================

type document struct {
	NaturalWidth  float64 `json:"natural_width,omitempty"`
	NaturalHeight float64 `json:"natural_height,omitempty"`
	Scene         *node   `json:"scene"`
}

type node struct {
	Kind string `json:"kind"`

	// path
	Trails []trail `json:"trails,omitempty"`

	// text
	Content string `json:"content,omitempty"`

	// image
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	MIME   string  `json:"mime,omitempty"`
	Data   []byte  `json:"data,omitempty"` // base64 on the wire

	// style / transform / annotations
	Style     *style       `json:"style,omitempty"`
	Transform *[6]float64  `json:"transform,omitempty"`
	Href      string       `json:"href,omitempty"`
	Opacity   *float64     `json:"opacity,omitempty"`
	Children  []node       `json:"children,omitempty"`
}

type trail struct {
	Start    [2]float64 `json:"start"`
	Closed   bool       `json:"closed,omitempty"`
	Segments []segment  `json:"segments,omitempty"`
}

// segment is a one-of: exactly one of line or cubic is set.
type segment struct {
	Line  *[2]float64 `json:"line,omitempty"`
	Cubic *[6]float64 `json:"cubic,omitempty"`
}

type style struct {
	Fill       *texture  `json:"fill,omitempty"`
	Line       *texture  `json:"line,omitempty"`
	LineWidth  *float64  `json:"line_width,omitempty"`
	LineCap    string    `json:"line_cap,omitempty"`
	LineJoin   string    `json:"line_join,omitempty"`
	FillRule   string    `json:"fill_rule,omitempty"`
	Dash       *dash     `json:"dash,omitempty"`
	Opacity    *float64  `json:"opacity,omitempty"`
	FontSize   *float64  `json:"font_size,omitempty"`
	FontSlant  string    `json:"font_slant,omitempty"`
	FontWeight string    `json:"font_weight,omitempty"`
	FontFamily *string   `json:"font_family,omitempty"`
	MiterLimit *float64  `json:"miter_limit,omitempty"`
	Clips      [][]trail `json:"clips,omitempty"`
}

type dash struct {
	Array  []float64 `json:"array"`
	Offset float64   `json:"offset,omitempty"`
}

type texture struct {
	Type      string      `json:"type"`
	Color     *[4]float64 `json:"color,omitempty"`
	Stops     []stop      `json:"stops,omitempty"`
	Spread    string      `json:"spread,omitempty"`
	Transform *[6]float64 `json:"transform,omitempty"`
	Start     *[2]float64 `json:"start,omitempty"`
	End       *[2]float64 `json:"end,omitempty"`
	Center0   *[2]float64 `json:"center0,omitempty"`
	Radius0   float64     `json:"radius0,omitempty"`
	Center1   *[2]float64 `json:"center1,omitempty"`
	Radius1   float64     `json:"radius1,omitempty"`
}

type stop struct {
	Offset  float64    `json:"offset"`
	Color   [4]float64 `json:"color"`
	Opacity float64    `json:"opacity"`
}

// =============================================================================
// Closed-Set Mappings
// =============================================================================

// The wire format uses open strings where the scene model uses closed
// enumerations, so decoding validates against these tables and treats any
// unrecognized value as a hard error rather than a silent default.

var (
	lineCapFromString = map[string]scene.LineCap{
		"butt": scene.CapButt, "round": scene.CapRound, "square": scene.CapSquare,
	}
	lineCapToString = map[scene.LineCap]string{
		scene.CapButt: "butt", scene.CapRound: "round", scene.CapSquare: "square",
	}
	lineJoinFromString = map[string]scene.LineJoin{
		"miter": scene.JoinMiter, "round": scene.JoinRound, "bevel": scene.JoinBevel,
	}
	lineJoinToString = map[scene.LineJoin]string{
		scene.JoinMiter: "miter", scene.JoinRound: "round", scene.JoinBevel: "bevel",
	}
	fillRuleFromString = map[string]scene.FillRule{
		"nonzero": scene.FillWinding, "evenodd": scene.FillEvenOdd,
	}
	fillRuleToString = map[scene.FillRule]string{
		scene.FillWinding: "nonzero", scene.FillEvenOdd: "evenodd",
	}
	fontSlantFromString = map[string]scene.FontSlant{
		"normal": scene.SlantNormal, "italic": scene.SlantItalic, "oblique": scene.SlantOblique,
	}
	fontSlantToString = map[scene.FontSlant]string{
		scene.SlantNormal: "normal", scene.SlantItalic: "italic", scene.SlantOblique: "oblique",
	}
	fontWeightFromString = map[string]scene.FontWeight{
		"normal": scene.WeightNormal, "bold": scene.WeightBold,
	}
	fontWeightToString = map[scene.FontWeight]string{
		scene.WeightNormal: "normal", scene.WeightBold: "bold",
	}
	spreadFromString = map[string]scene.SpreadMethod{
		"pad": scene.SpreadPad, "reflect": scene.SpreadReflect, "repeat": scene.SpreadRepeat,
	}
	spreadToString = map[scene.SpreadMethod]string{
		scene.SpreadPad: "pad", scene.SpreadReflect: "reflect", scene.SpreadRepeat: "repeat",
	}
)

// =============================================================================
// Decoding
// =============================================================================

func decodeNode(n *node) (scene.Node, error) {
	switch n.Kind {
	case "path":
		return &scene.Path{Trails: decodeTrails(n.Trails)}, nil

	case "text":
		return &scene.Text{Content: n.Content}, nil

	case "image":
		return &scene.Image{
			Width:  n.Width,
			Height: n.Height,
			MIME:   n.MIME,
			Data:   n.Data,
		}, nil

	case "style":
		st, err := decodeStyle(n.Style)
		if err != nil {
			return nil, err
		}
		children, err := decodeChildren(n.Children)
		if err != nil {
			return nil, err
		}
		return &scene.StyleNode{Style: st, Children: children}, nil

	case "transform":
		if n.Transform == nil {
			return nil, errors.New(errors.ErrCodeInvalidScene, "transform node missing matrix")
		}
		children, err := decodeChildren(n.Children)
		if err != nil {
			return nil, err
		}
		return &scene.TransformNode{Transform: geom.Affine(*n.Transform), Children: children}, nil

	case "link":
		children, err := decodeChildren(n.Children)
		if err != nil {
			return nil, err
		}
		return scene.Link(n.Href, children...), nil

	case "opacity":
		if n.Opacity == nil {
			return nil, errors.New(errors.ErrCodeInvalidScene, "opacity node missing value")
		}
		children, err := decodeChildren(n.Children)
		if err != nil {
			return nil, err
		}
		return scene.OpacityGroup(*n.Opacity, children...), nil

	case "group":
		children, err := decodeChildren(n.Children)
		if err != nil {
			return nil, err
		}
		return &scene.Group{Children: children}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidScene, "unknown node kind %q", n.Kind)
}

func decodeChildren(nodes []node) ([]scene.Node, error) {
	out := make([]scene.Node, 0, len(nodes))
	for i := range nodes {
		child, err := decodeNode(&nodes[i])
		if err != nil {
			return nil, err
		}
		out = append(out, child)
	}
	return out, nil
}

func decodeTrails(trails []trail) []scene.Located {
	out := make([]scene.Located, 0, len(trails))
	for _, t := range trails {
		lt := scene.Located{
			Start: geom.Pt(t.Start[0], t.Start[1]),
			Trail: scene.Trail{Closed: t.Closed},
		}
		for _, s := range t.Segments {
			switch {
			case s.Cubic != nil:
				c := *s.Cubic
				lt.Trail.Segments = append(lt.Trail.Segments, scene.Cubic(
					geom.Pt(c[0], c[1]), geom.Pt(c[2], c[3]), geom.Pt(c[4], c[5]),
				))
			case s.Line != nil:
				lt.Trail.Segments = append(lt.Trail.Segments, scene.Linear(s.Line[0], s.Line[1]))
			}
		}
		out = append(out, lt)
	}
	return out
}

func decodeStyle(s *style) (scene.Style, error) {
	var out scene.Style
	if s == nil {
		return out, nil
	}

	if s.Fill != nil {
		t, err := decodeTexture(s.Fill)
		if err != nil {
			return out, err
		}
		out.FillTexture = &t
	}
	if s.Line != nil {
		t, err := decodeTexture(s.Line)
		if err != nil {
			return out, err
		}
		out.LineTexture = &t
	}
	out.LineWidth = s.LineWidth
	if s.LineCap != "" {
		v, ok := lineCapFromString[s.LineCap]
		if !ok {
			return out, errors.New(errors.ErrCodeInvalidScene, "unknown line cap %q", s.LineCap)
		}
		out.LineCap = &v
	}
	if s.LineJoin != "" {
		v, ok := lineJoinFromString[s.LineJoin]
		if !ok {
			return out, errors.New(errors.ErrCodeInvalidScene, "unknown line join %q", s.LineJoin)
		}
		out.LineJoin = &v
	}
	if s.FillRule != "" {
		v, ok := fillRuleFromString[s.FillRule]
		if !ok {
			return out, errors.New(errors.ErrCodeInvalidScene, "unknown fill rule %q", s.FillRule)
		}
		out.FillRule = &v
	}
	if s.Dash != nil {
		out.Dashing = &scene.Dashing{Array: s.Dash.Array, Offset: s.Dash.Offset}
	}
	out.Opacity = s.Opacity
	out.FontSize = s.FontSize
	if s.FontSlant != "" {
		v, ok := fontSlantFromString[s.FontSlant]
		if !ok {
			return out, errors.New(errors.ErrCodeInvalidScene, "unknown font slant %q", s.FontSlant)
		}
		out.FontSlant = &v
	}
	if s.FontWeight != "" {
		v, ok := fontWeightFromString[s.FontWeight]
		if !ok {
			return out, errors.New(errors.ErrCodeInvalidScene, "unknown font weight %q", s.FontWeight)
		}
		out.FontWeight = &v
	}
	out.FontFamily = s.FontFamily
	out.MiterLimit = s.MiterLimit
	for _, clip := range s.Clips {
		out.ClipPaths = append(out.ClipPaths, scene.Path{Trails: decodeTrails(clip)})
	}

	return out, nil
}

func decodeTexture(t *texture) (scene.Texture, error) {
	switch t.Type {
	case "solid":
		if t.Color == nil {
			return nil, errors.New(errors.ErrCodeInvalidScene, "solid texture missing color")
		}
		c := *t.Color
		return scene.Solid(scene.RGBA(c[0], c[1], c[2], c[3])), nil

	case "linear":
		stops, err := decodeStops(t.Stops)
		if err != nil {
			return nil, err
		}
		spread, err := decodeSpread(t.Spread)
		if err != nil {
			return nil, err
		}
		g := &scene.LinearGradient{
			Stops:     stops,
			Spread:    spread,
			Transform: decodeTransform(t.Transform),
		}
		if t.Start != nil {
			g.Start = geom.Pt(t.Start[0], t.Start[1])
		}
		if t.End != nil {
			g.End = geom.Pt(t.End[0], t.End[1])
		}
		return g, nil

	case "radial":
		stops, err := decodeStops(t.Stops)
		if err != nil {
			return nil, err
		}
		spread, err := decodeSpread(t.Spread)
		if err != nil {
			return nil, err
		}
		g := &scene.RadialGradient{
			Stops:     stops,
			Spread:    spread,
			Transform: decodeTransform(t.Transform),
			Radius0:   t.Radius0,
			Radius1:   t.Radius1,
		}
		if t.Center0 != nil {
			g.Center0 = geom.Pt(t.Center0[0], t.Center0[1])
		}
		if t.Center1 != nil {
			g.Center1 = geom.Pt(t.Center1[0], t.Center1[1])
		}
		return g, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidScene, "unknown texture type %q", t.Type)
}

func decodeStops(stops []stop) ([]scene.Stop, error) {
	out := make([]scene.Stop, 0, len(stops))
	for _, s := range stops {
		out = append(out, scene.Stop{
			Offset:  s.Offset,
			Color:   scene.RGBA(s.Color[0], s.Color[1], s.Color[2], s.Color[3]),
			Opacity: s.Opacity,
		})
	}
	return out, nil
}

func decodeSpread(s string) (scene.SpreadMethod, error) {
	if s == "" {
		return scene.SpreadPad, nil
	}
	v, ok := spreadFromString[s]
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidScene, "unknown spread method %q", s)
	}
	return v, nil
}

func decodeTransform(t *[6]float64) geom.Affine {
	if t == nil {
		return geom.Identity()
	}
	return geom.Affine(*t)
}

// =============================================================================
// Encoding
// =============================================================================

func encodeNode(n scene.Node) (*node, error) {
	switch v := n.(type) {
	case *scene.Path:
		return &node{Kind: "path", Trails: encodeTrails(v.Trails)}, nil

	case *scene.Text:
		return &node{Kind: "text", Content: v.Content}, nil

	case *scene.Image:
		return &node{Kind: "image", Width: v.Width, Height: v.Height, MIME: v.MIME, Data: v.Data}, nil

	case *scene.StyleNode:
		st, err := encodeStyle(v.Style)
		if err != nil {
			return nil, err
		}
		children, err := encodeChildren(v.Children)
		if err != nil {
			return nil, err
		}
		return &node{Kind: "style", Style: st, Children: children}, nil

	case *scene.TransformNode:
		children, err := encodeChildren(v.Children)
		if err != nil {
			return nil, err
		}
		m := [6]float64(v.Transform)
		return &node{Kind: "transform", Transform: &m, Children: children}, nil

	case *scene.Annotation:
		children, err := encodeChildren(v.Children)
		if err != nil {
			return nil, err
		}
		switch v.Kind {
		case scene.AnnotationHref:
			return &node{Kind: "link", Href: v.Href, Children: children}, nil
		case scene.AnnotationOpacity:
			op := v.Opacity
			return &node{Kind: "opacity", Opacity: &op, Children: children}, nil
		}
		return nil, errors.New(errors.ErrCodeInvalidScene, "unknown annotation kind %d", v.Kind)

	case *scene.Group:
		children, err := encodeChildren(v.Children)
		if err != nil {
			return nil, err
		}
		return &node{Kind: "group", Children: children}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidScene, "unknown scene node type %T", n)
}

func encodeChildren(children []scene.Node) ([]node, error) {
	out := make([]node, 0, len(children))
	for _, c := range children {
		n, err := encodeNode(c)
		if err != nil {
			return nil, err
		}
		out = append(out, *n)
	}
	return out, nil
}

func encodeTrails(trails []scene.Located) []trail {
	out := make([]trail, 0, len(trails))
	for _, lt := range trails {
		t := trail{
			Start:  [2]float64{lt.Start.X, lt.Start.Y},
			Closed: lt.Trail.Closed,
		}
		for _, s := range lt.Trail.Segments {
			if s.Kind == scene.SegCubic {
				c := [6]float64{s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.End.X, s.End.Y}
				t.Segments = append(t.Segments, segment{Cubic: &c})
			} else {
				l := [2]float64{s.End.X, s.End.Y}
				t.Segments = append(t.Segments, segment{Line: &l})
			}
		}
		out = append(out, t)
	}
	return out
}

func encodeStyle(s scene.Style) (*style, error) {
	out := &style{
		LineWidth:  s.LineWidth,
		Opacity:    s.Opacity,
		FontSize:   s.FontSize,
		FontFamily: s.FontFamily,
		MiterLimit: s.MiterLimit,
	}

	if s.FillTexture != nil {
		t, err := encodeTexture(*s.FillTexture)
		if err != nil {
			return nil, err
		}
		out.Fill = t
	}
	if s.LineTexture != nil {
		t, err := encodeTexture(*s.LineTexture)
		if err != nil {
			return nil, err
		}
		out.Line = t
	}
	if s.LineCap != nil {
		out.LineCap = lineCapToString[*s.LineCap]
	}
	if s.LineJoin != nil {
		out.LineJoin = lineJoinToString[*s.LineJoin]
	}
	if s.FillRule != nil {
		out.FillRule = fillRuleToString[*s.FillRule]
	}
	if s.Dashing != nil {
		out.Dash = &dash{Array: s.Dashing.Array, Offset: s.Dashing.Offset}
	}
	if s.FontSlant != nil {
		out.FontSlant = fontSlantToString[*s.FontSlant]
	}
	if s.FontWeight != nil {
		out.FontWeight = fontWeightToString[*s.FontWeight]
	}
	for _, clip := range s.ClipPaths {
		out.Clips = append(out.Clips, encodeTrails(clip.Trails))
	}

	return out, nil
}

func encodeTexture(t scene.Texture) (*texture, error) {
	switch v := t.(type) {
	case *scene.SolidColor:
		c := [4]float64{v.Color.R, v.Color.G, v.Color.B, v.Color.A}
		return &texture{Type: "solid", Color: &c}, nil

	case *scene.LinearGradient:
		m := [6]float64(v.Transform)
		start := [2]float64{v.Start.X, v.Start.Y}
		end := [2]float64{v.End.X, v.End.Y}
		return &texture{
			Type:      "linear",
			Stops:     encodeStops(v.Stops),
			Spread:    spreadToString[v.Spread],
			Transform: &m,
			Start:     &start,
			End:       &end,
		}, nil

	case *scene.RadialGradient:
		m := [6]float64(v.Transform)
		c0 := [2]float64{v.Center0.X, v.Center0.Y}
		c1 := [2]float64{v.Center1.X, v.Center1.Y}
		return &texture{
			Type:      "radial",
			Stops:     encodeStops(v.Stops),
			Spread:    spreadToString[v.Spread],
			Transform: &m,
			Center0:   &c0,
			Radius0:   v.Radius0,
			Center1:   &c1,
			Radius1:   v.Radius1,
		}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidScene, "unknown texture type %T", t)
}

func encodeStops(stops []scene.Stop) []stop {
	out := make([]stop, 0, len(stops))
	for _, s := range stops {
		out = append(out, stop{
			Offset:  s.Offset,
			Color:   [4]float64{s.Color.R, s.Color.G, s.Color.B, s.Color.A},
			Opacity: s.Opacity,
		})
	}
	return out
}
