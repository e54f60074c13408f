package scene

import "github.com/matzehuels/scenesvg/pkg/geom"

// Node is a node in the scene tree. The implementations form a closed set:
// Path, Text, Image, StyleNode, TransformNode, Annotation, and Group.
type Node interface {
	// node seals the interface to this package.
	node()
}

// StyleNode attaches a style context to a subtree. Style attributes inherit
// downward; nested style nodes layer their attributes over ancestors via SVG
// attribute inheritance rather than explicit merging.
type StyleNode struct {
	Style    Style
	Children []Node
}

// TransformNode attaches a coordinate transform to a subtree. Transforms
// compose associatively down the tree and apply innermost-first.
type TransformNode struct {
	Transform geom.Affine
	Children  []Node
}

// AnnotationKind distinguishes the semantic decorations a scene can carry.
type AnnotationKind int

const (
	// AnnotationHref wraps children in a hyperlink target.
	AnnotationHref AnnotationKind = iota
	// AnnotationOpacity wraps children in a group-opacity context.
	AnnotationOpacity
)

// Annotation wraps children in a semantic decoration.
type Annotation struct {
	Kind     AnnotationKind
	Href     string  // link target, for AnnotationHref
	Opacity  float64 // group opacity in [0,1], for AnnotationOpacity
	Children []Node
}

// Group is a structural node with no semantics of its own. Rendering a group
// concatenates its children's output in order.
type Group struct {
	Children []Node
}

// Text is a primitive text leaf. The content is rendered at the local origin
// with font attributes taken from the enclosing style context.
type Text struct {
	Content string
}

// Image is a primitive raster image leaf. Data holds the already-encoded
// image bytes and MIME names their encoding (e.g. "image/png"). The image is
// positioned with its center at the local origin.
type Image struct {
	Width  float64
	Height float64
	MIME   string
	Data   []byte
}

func (*Path) node()          {}
func (*Text) node()          {}
func (*Image) node()         {}
func (*StyleNode) node()     {}
func (*TransformNode) node() {}
func (*Annotation) node()    {}
func (*Group) node()         {}

// Styled is a convenience constructor wrapping children in a StyleNode.
func Styled(s Style, children ...Node) *StyleNode {
	return &StyleNode{Style: s, Children: children}
}

// Transformed is a convenience constructor wrapping children in a TransformNode.
func Transformed(t geom.Affine, children ...Node) *TransformNode {
	return &TransformNode{Transform: t, Children: children}
}

// Link wraps children in a hyperlink annotation.
func Link(href string, children ...Node) *Annotation {
	return &Annotation{Kind: AnnotationHref, Href: href, Children: children}
}

// OpacityGroup wraps children in a group-opacity annotation.
func OpacityGroup(opacity float64, children ...Node) *Annotation {
	return &Annotation{Kind: AnnotationOpacity, Opacity: opacity, Children: children}
}
