package svg

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/matzehuels/scenesvg/pkg/geom"
	"github.com/matzehuels/scenesvg/pkg/scene"
)

// pathData serializes located trails into the SVG path-data mini-language,
// applying the accumulated transform to every point. Each trail opens with an
// absolute move-to; segment offsets stay relative.
//
// Two encoding details are deliberate:
//
//   - Axis-aligned linear segments shrink to h/v commands. Plain l commands
//     would be equally correct; this is a size optimization.
//   - A closed loop whose final segment is linear drops that segment and lets
//     the close-path command imply it, avoiding a duplicate final edge.
func pathData(trails []scene.Located, tr geom.Affine) string {
	var cmds []string
	for _, lt := range trails {
		start := tr.Apply(lt.Start)
		cmds = append(cmds, "M "+pair(start))

		segs := lt.Trail.Segments
		closing := false
		if lt.Trail.Closed {
			closing = true
			if n := len(segs); n > 0 && segs[n-1].Kind == scene.SegLinear {
				segs = segs[:n-1]
			}
		}
		for _, s := range segs {
			cmds = append(cmds, segmentData(s, tr))
		}
		if closing {
			cmds = append(cmds, "Z")
		}
	}
	return strings.Join(cmds, " ")
}

// segmentData encodes one segment. Offsets are transformed as directions so
// the accumulated translation is not applied twice.
func segmentData(s scene.Segment, tr geom.Affine) string {
	switch s.Kind {
	case scene.SegCubic:
		return "c " + pair(tr.ApplyVector(s.C1)) + " " + pair(tr.ApplyVector(s.C2)) + " " + pair(tr.ApplyVector(s.End))
	default:
		end := tr.ApplyVector(s.End)
		switch {
		case end.Y == 0:
			return "h " + num(end.X)
		case end.X == 0:
			return "v " + num(end.Y)
		default:
			return "l " + pair(end)
		}
	}
}

// pathElement builds a <path> element for the given trails, or nil when the
// path holds no trails: an empty path is a no-op, not an empty d attribute.
func pathElement(p *scene.Path, tr geom.Affine) *etree.Element {
	if len(p.Trails) == 0 {
		return nil
	}
	el := etree.NewElement("path")
	el.CreateAttr("d", pathData(p.Trails, tr))
	return el
}

// onlyOpenLines reports whether a path consists entirely of open trails.
// An empty path does not count as line-only.
func onlyOpenLines(p *scene.Path) bool {
	if len(p.Trails) == 0 {
		return false
	}
	for _, lt := range p.Trails {
		if lt.Trail.Closed {
			return false
		}
	}
	return true
}
