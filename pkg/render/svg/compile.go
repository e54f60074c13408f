package svg

import (
	"github.com/beevik/etree"

	"github.com/matzehuels/scenesvg/pkg/errors"
	"github.com/matzehuels/scenesvg/pkg/geom"
	"github.com/matzehuels/scenesvg/pkg/scene"
)

// renderState holds the identifier counters for one document compile. It is
// created fresh per Render call, threaded by pointer through the whole
// traversal, and discarded afterwards; allocations therefore observe
// left-to-right depth-first program order even though the structure is a
// tree. Fill and line gradients draw from disjoint parity pools so the two
// can never collide inside the shared defs namespace.
type renderState struct {
	clipID   int
	fillGrad int
	lineGrad int
	prefix   string
}

func newRenderState(prefix string) *renderState {
	return &renderState{fillGrad: 0, lineGrad: 1, prefix: prefix}
}

func (s *renderState) nextClipID() int {
	id := s.clipID
	s.clipID++
	return id
}

func (s *renderState) nextFillGradientID() int {
	id := s.fillGrad
	s.fillGrad += 2
	return id
}

func (s *renderState) nextLineGradientID() int {
	id := s.lineGrad
	s.lineGrad += 2
	return id
}

// compileNode compiles one scene node into a fragment, carrying the
// accumulated transform down the tree. The second result reports whether the
// subtree consists entirely of open trails; the enclosing style wrapper reads
// it to suppress fill rendering for line-only content.
func compileNode(n scene.Node, tr geom.Affine, st *renderState) (fragment, bool, error) {
	switch node := n.(type) {
	case *scene.Path:
		return frag(pathElement(node, tr)), onlyOpenLines(node), nil

	case *scene.Text:
		return frag(textElement(node, tr)), false, nil

	case *scene.Image:
		el, err := imageElement(node, tr)
		if err != nil {
			return fragment{}, false, err
		}
		return frag(el), false, nil

	case *scene.Group:
		return compileChildren(node.Children, tr, st)

	case *scene.TransformNode:
		return compileChildren(node.Children, tr.Mul(node.Transform), st)

	case *scene.Annotation:
		return compileAnnotation(node, tr, st)

	case *scene.StyleNode:
		return compileStyle(node, tr, st)
	}
	return fragment{}, false, errors.New(errors.ErrCodeInvalidScene, "unknown scene node type %T", n)
}

// compileChildren compiles children in order and merges their fragments.
// The line-only flag survives the merge only if every child reports it.
func compileChildren(children []scene.Node, tr geom.Affine, st *renderState) (fragment, bool, error) {
	merged := fragment{}
	line := len(children) > 0
	for _, child := range children {
		f, l, err := compileNode(child, tr, st)
		if err != nil {
			return fragment{}, false, err
		}
		merged = merged.concat(f)
		line = line && l
	}
	return merged, line, nil
}

// compileAnnotation wraps children in a hyperlink anchor or an opacity group.
func compileAnnotation(n *scene.Annotation, tr geom.Affine, st *renderState) (fragment, bool, error) {
	children, line, err := compileChildren(n.Children, tr, st)
	if err != nil {
		return fragment{}, false, err
	}

	var wrapper *etree.Element
	switch n.Kind {
	case scene.AnnotationHref:
		wrapper = etree.NewElement("a")
		wrapper.CreateAttr("xlink:href", n.Href)
	case scene.AnnotationOpacity:
		wrapper = etree.NewElement("g")
		wrapper.CreateAttr("opacity", num(n.Opacity))
	default:
		return fragment{}, false, errors.New(errors.ErrCodeInvalidScene, "unknown annotation kind %d", n.Kind)
	}
	children.attachTo(wrapper)
	return frag(wrapper), line, nil
}

// compileStyle renders children first, then wraps them as
//
//	<defs>{gradient defs}</defs><g {style attrs}>{children}</g>
//
// with the whole thing nested inside the clip-group chain. Children run
// first so the wrapper knows whether the subtree is line-only before it
// resolves the fill texture. Allocation order within the node is clips, then
// fill texture, then line texture.
func compileStyle(n *scene.StyleNode, tr geom.Affine, st *renderState) (fragment, bool, error) {
	children, line, err := compileChildren(n.Children, tr, st)
	if err != nil {
		return fragment{}, false, err
	}

	presentation, err := styleAttrs(n.Style)
	if err != nil {
		return fragment{}, false, err
	}

	chain := newClipChain(n.Style.ClipPaths, tr, st)

	var defChildren []*etree.Element
	var texture []attr

	switch {
	case line:
		// Open lines have no interior: fill is forced off and no fill
		// paint server is ever allocated for the group.
		texture = append(texture, attr{"fill", "none"})
	case n.Style.FillTexture != nil:
		attrs, def, err := resolveTexture(*n.Style.FillTexture, "fill", st)
		if err != nil {
			return fragment{}, false, err
		}
		texture = append(texture, attrs...)
		if def != nil {
			defChildren = append(defChildren, def)
		}
	}

	if n.Style.LineTexture != nil {
		attrs, def, err := resolveTexture(*n.Style.LineTexture, "stroke", st)
		if err != nil {
			return fragment{}, false, err
		}
		texture = append(texture, attrs...)
		if def != nil {
			defChildren = append(defChildren, def)
		}
	}

	var defs *etree.Element
	if len(defChildren) > 0 {
		defs = etree.NewElement("defs")
		for _, d := range defChildren {
			defs.AddChild(d)
		}
	}

	group := etree.NewElement("g")
	for _, a := range texture {
		group.CreateAttr(a.key, a.value)
	}
	for _, a := range presentation {
		group.CreateAttr(a.key, a.value)
	}
	children.attachTo(group)

	return chain.wrap(frag(defs, group)), line, nil
}

// resolveTexture allocates a gradient ID from the matching parity pool when
// the texture is a gradient, then hands encoding to the texture encoder.
// Solid colors consume no ID.
func resolveTexture(t scene.Texture, role string, st *renderState) ([]attr, *etree.Element, error) {
	id := 0
	switch t.(type) {
	case *scene.LinearGradient, *scene.RadialGradient:
		if role == "fill" {
			id = st.nextFillGradientID()
		} else {
			id = st.nextLineGradientID()
		}
	}
	return textureAttrs(t, role, id, st.prefix)
}

// textElement renders a text leaf. The vertical flip undoes the y-up scene
// coordinate system so glyphs come out upright.
func textElement(t *scene.Text, tr geom.Affine) *etree.Element {
	el := etree.NewElement("text")
	el.CreateAttr("transform", matrix(tr.Mul(geom.FlipY())))
	el.SetText(t.Content)
	return el
}
