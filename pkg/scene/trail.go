package scene

import "github.com/matzehuels/scenesvg/pkg/geom"

// SegmentKind distinguishes the two segment shapes a trail can contain.
type SegmentKind int

const (
	// SegLinear is a straight segment described by its end offset.
	SegLinear SegmentKind = iota
	// SegCubic is a cubic Bezier segment described by two control offsets
	// and an end offset.
	SegCubic
)

// Segment is one step of a trail. All points are offsets relative to the
// segment's start, not absolute coordinates.
type Segment struct {
	Kind SegmentKind
	C1   geom.Point // first control offset (cubic only)
	C2   geom.Point // second control offset (cubic only)
	End  geom.Point // end offset
}

// Linear returns a straight segment with the given end offset.
func Linear(dx, dy float64) Segment {
	return Segment{Kind: SegLinear, End: geom.Pt(dx, dy)}
}

// Cubic returns a cubic Bezier segment with two control offsets and an end
// offset.
func Cubic(c1, c2, end geom.Point) Segment {
	return Segment{Kind: SegCubic, C1: c1, C2: c2, End: end}
}

// Trail is an ordered run of connected segments. In a closed trail (a loop)
// the segments trace the full circuit: the final segment ends back at the
// start point. An open trail is a line.
type Trail struct {
	Segments []Segment
	Closed   bool
}

// Located is a trail anchored at an absolute start point.
type Located struct {
	Start geom.Point
	Trail Trail
}

// Path is a primitive leaf holding zero or more located trails. A path with
// no trails renders nothing.
type Path struct {
	Trails []Located
}

// Line returns an open located trail starting at start.
func Line(start geom.Point, segments ...Segment) Located {
	return Located{Start: start, Trail: Trail{Segments: segments}}
}

// Loop returns a closed located trail starting at start.
func Loop(start geom.Point, segments ...Segment) Located {
	return Located{Start: start, Trail: Trail{Segments: segments, Closed: true}}
}

// Rect returns a closed axis-aligned rectangle with its lower-left corner at
// (x, y).
func Rect(x, y, w, h float64) Located {
	return Loop(geom.Pt(x, y),
		Linear(w, 0),
		Linear(0, h),
		Linear(-w, 0),
		Linear(0, -h),
	)
}
