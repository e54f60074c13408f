package svg

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/matzehuels/scenesvg/pkg/errors"
	"github.com/matzehuels/scenesvg/pkg/scene"
)

// textureAttrs maps a texture onto presentation attributes for the given role
// ("fill" or "stroke"). Solid colors become direct attributes with the alpha
// channel split into the matching -opacity attribute. Gradients become a
// url(#...) reference at full opacity (opacity lives in the stops) plus a
// paint-server definition destined for the defs element.
//
// The id is allocated by the tree compiler; this encoder only consumes it.
func textureAttrs(t scene.Texture, role string, id int, prefix string) ([]attr, *etree.Element, error) {
	switch tex := t.(type) {
	case *scene.SolidColor:
		return []attr{
			{role, tex.Color.CSS()},
			{role + "-opacity", num(tex.Color.A)},
		}, nil, nil

	case *scene.LinearGradient:
		name := gradientName(prefix, id)
		def, err := linearGradientElement(tex, name)
		if err != nil {
			return nil, nil, err
		}
		return []attr{
			{role, "url(#" + name + ")"},
			{role + "-opacity", "1"},
		}, def, nil

	case *scene.RadialGradient:
		name := gradientName(prefix, id)
		def, err := radialGradientElement(tex, name)
		if err != nil {
			return nil, nil, err
		}
		return []attr{
			{role, "url(#" + name + ")"},
			{role + "-opacity", "1"},
		}, def, nil
	}
	return nil, nil, errors.New(errors.ErrCodeInvalidScene, "unknown texture type %T", t)
}

func gradientName(prefix string, id int) string {
	return fmt.Sprintf("%sgradient%d", prefix, id)
}

// linearGradientElement emits a <linearGradient> paint server. Endpoints are
// expressed in the gradient's own coordinate space and placed into user space
// by gradientTransform.
func linearGradientElement(g *scene.LinearGradient, name string) (*etree.Element, error) {
	spread, err := spreadMethodValue(g.Spread)
	if err != nil {
		return nil, err
	}
	el := etree.NewElement("linearGradient")
	el.CreateAttr("id", name)
	el.CreateAttr("x1", num(g.Start.X))
	el.CreateAttr("y1", num(g.Start.Y))
	el.CreateAttr("x2", num(g.End.X))
	el.CreateAttr("y2", num(g.End.Y))
	el.CreateAttr("gradientTransform", matrix(g.Transform))
	el.CreateAttr("gradientUnits", "userSpaceOnUse")
	el.CreateAttr("spreadMethod", spread)
	for _, s := range g.Stops {
		el.AddChild(stopElement(s))
	}
	return el, nil
}

// radialGradientElement emits a <radialGradient> paint server. The source
// model describes two circles (inner r0 at center0, outer r1 at center1) but
// SVG supports only a focal point plus one outer circle, so the outer circle
// maps to cx/cy/r, the inner center becomes the focal point, and stop offsets
// are remapped from [0,1] over [r0,r1] into the single-circle [0,1] range:
//
//	newOffset = (r0 + oldOffset*(r1-r0)) / r1
//
// A synthetic leading stop duplicates the first stop's color at offset r0/r1
// so the inner circle's perimeter is reproduced exactly; the region inside it
// flattens to that solid lead-in color. An empty stop list gets no synthetic
// stop.
func radialGradientElement(g *scene.RadialGradient, name string) (*etree.Element, error) {
	if g.Radius1 <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidScene, "radial gradient outer radius must be positive, got %v", g.Radius1)
	}
	spread, err := spreadMethodValue(g.Spread)
	if err != nil {
		return nil, err
	}
	el := etree.NewElement("radialGradient")
	el.CreateAttr("id", name)
	el.CreateAttr("r", num(g.Radius1))
	el.CreateAttr("cx", num(g.Center1.X))
	el.CreateAttr("cy", num(g.Center1.Y))
	el.CreateAttr("fx", num(g.Center0.X))
	el.CreateAttr("fy", num(g.Center0.Y))
	el.CreateAttr("gradientTransform", matrix(g.Transform))
	el.CreateAttr("gradientUnits", "userSpaceOnUse")
	el.CreateAttr("spreadMethod", spread)

	for _, s := range remapStops(g) {
		el.AddChild(stopElement(s))
	}
	return el, nil
}

// remapStops rescales stop offsets for the two-circle to one-circle mapping
// and prepends the synthetic lead-in stop. For r0 == 0 the remapping is the
// identity. The caller has already rejected r1 <= 0.
func remapStops(g *scene.RadialGradient) []scene.Stop {
	if len(g.Stops) == 0 {
		return nil
	}
	r0, r1 := g.Radius0, g.Radius1
	lead := g.Stops[0]
	lead.Offset = r0 / r1

	out := make([]scene.Stop, 0, len(g.Stops)+1)
	out = append(out, lead)
	for _, s := range g.Stops {
		s.Offset = (r0 + s.Offset*(r1-r0)) / r1
		out = append(out, s)
	}
	return out
}

func stopElement(s scene.Stop) *etree.Element {
	el := etree.NewElement("stop")
	el.CreateAttr("offset", num(s.Offset))
	el.CreateAttr("stop-color", s.Color.CSS())
	el.CreateAttr("stop-opacity", num(s.Opacity))
	return el
}

func spreadMethodValue(m scene.SpreadMethod) (string, error) {
	switch m {
	case scene.SpreadPad:
		return "pad", nil
	case scene.SpreadReflect:
		return "reflect", nil
	case scene.SpreadRepeat:
		return "repeat", nil
	}
	return "", errors.New(errors.ErrCodeInvalidScene, "unknown spread method %d", m)
}
