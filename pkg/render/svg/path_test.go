package svg

import (
	"testing"

	"github.com/matzehuels/scenesvg/pkg/geom"
	"github.com/matzehuels/scenesvg/pkg/scene"
)

func TestPathDataRectangle(t *testing.T) {
	trails := []scene.Located{scene.Rect(10, 10, 80, 80)}

	got := pathData(trails, geom.Identity())

	// The closing edge is implied by Z, and axis-aligned edges shrink to h/v.
	want := "M 10,10 h 80 v 80 h -80 Z"
	if got != want {
		t.Errorf("pathData() = %q, want %q", got, want)
	}
}

func TestPathDataOpenTrail(t *testing.T) {
	trails := []scene.Located{
		scene.Line(geom.Pt(0, 0), scene.Linear(10, 0), scene.Linear(5, 5)),
	}

	got := pathData(trails, geom.Identity())

	// No Z, and the diagonal segment stays a plain l command.
	want := "M 0,0 h 10 l 5,5"
	if got != want {
		t.Errorf("pathData() = %q, want %q", got, want)
	}
}

func TestPathDataClosedTrailKeepsFinalCubic(t *testing.T) {
	trails := []scene.Located{
		scene.Loop(geom.Pt(0, 0),
			scene.Linear(10, 0),
			scene.Cubic(geom.Pt(0, 5), geom.Pt(-5, 10), geom.Pt(-10, 0)),
		),
	}

	got := pathData(trails, geom.Identity())

	// Only a final linear segment may be dropped in favor of Z.
	want := "M 0,0 h 10 c 0,5 -5,10 -10,0 Z"
	if got != want {
		t.Errorf("pathData() = %q, want %q", got, want)
	}
}

func TestPathDataAppliesTransform(t *testing.T) {
	trails := []scene.Located{
		scene.Line(geom.Pt(1, 2), scene.Linear(3, 0), scene.Linear(0, 4)),
	}
	tr := geom.Translate(10, 20).Mul(geom.Scale(2))

	got := pathData(trails, tr)

	// The start point takes the full transform; offsets scale but do not
	// translate.
	want := "M 12,24 h 6 v 8"
	if got != want {
		t.Errorf("pathData() = %q, want %q", got, want)
	}
}

func TestPathDataAxisClassificationAfterTransform(t *testing.T) {
	// A horizontal offset sheared into a diagonal must not encode as h.
	trails := []scene.Located{
		scene.Line(geom.Pt(0, 0), scene.Linear(10, 0)),
	}
	shear := geom.Affine{1, 1, 0, 1, 0, 0}

	got := pathData(trails, shear)

	want := "M 0,0 l 10,10"
	if got != want {
		t.Errorf("pathData() = %q, want %q", got, want)
	}
}

func TestPathDataCubicTransformsControlOffsets(t *testing.T) {
	trails := []scene.Located{
		scene.Line(geom.Pt(0, 0),
			scene.Cubic(geom.Pt(1, 1), geom.Pt(2, 0), geom.Pt(3, 1)),
		),
	}

	got := pathData(trails, geom.Scale(2))

	want := "M 0,0 c 2,2 4,0 6,2"
	if got != want {
		t.Errorf("pathData() = %q, want %q", got, want)
	}
}

func TestPathDataMultipleTrails(t *testing.T) {
	trails := []scene.Located{
		scene.Line(geom.Pt(0, 0), scene.Linear(5, 0)),
		scene.Line(geom.Pt(10, 0), scene.Linear(0, 5)),
	}

	got := pathData(trails, geom.Identity())

	want := "M 0,0 h 5 M 10,0 v 5"
	if got != want {
		t.Errorf("pathData() = %q, want %q", got, want)
	}
}

func TestPathElementEmptyPath(t *testing.T) {
	el := pathElement(&scene.Path{}, geom.Identity())

	if el != nil {
		t.Errorf("pathElement() on empty path = %v, want nil", el)
	}
}

func TestOnlyOpenLines(t *testing.T) {
	open := scene.Line(geom.Pt(0, 0), scene.Linear(1, 0))
	closed := scene.Rect(0, 0, 1, 1)

	tests := []struct {
		name string
		path *scene.Path
		want bool
	}{
		{"empty path", &scene.Path{}, false},
		{"single open trail", &scene.Path{Trails: []scene.Located{open}}, true},
		{"single closed trail", &scene.Path{Trails: []scene.Located{closed}}, false},
		{"mixed trails", &scene.Path{Trails: []scene.Located{open, closed}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := onlyOpenLines(tt.path); got != tt.want {
				t.Errorf("onlyOpenLines() = %v, want %v", got, tt.want)
			}
		})
	}
}
