// Package scene defines the input model for the SVG rendering backend: a tree
// of geometric primitives, styles, transforms, and annotations as produced by
// a diagram construction layer.
//
// # Node Kinds
//
// The tree is a closed sum of node kinds:
//
//   - [Path], [Text], [Image] - primitive leaves
//   - [StyleNode] - attaches a style context to a subtree
//   - [TransformNode] - attaches a coordinate transform to a subtree
//   - [Annotation] - semantic decoration (hyperlink target, opacity group)
//   - [Group] - structural grouping only
//
// The set is sealed via an unexported marker method so consumers can dispatch
// exhaustively: the upstream construction layer enumerates exactly these kinds.
//
// # Styles and Textures
//
// Every [Style] attribute is independently optional. Absence means the
// corresponding SVG attribute is omitted and inherits its parent or default
// value; it is never an error. Textures form their own closed union:
// [SolidColor], [LinearGradient], [RadialGradient].
//
// # Geometry
//
// Paths are sequences of located trails. A [Trail] is an ordered run of
// linear and cubic segments expressed as relative offsets, either open (a
// line) or closed (a loop, where the final point implicitly reconnects to
// the start).
package scene
