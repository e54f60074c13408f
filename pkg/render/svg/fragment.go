package svg

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/matzehuels/scenesvg/pkg/geom"
)

// fragment is an ordered sequence of SVG elements not yet attached to a
// parent. Compiled subtrees merge via concat, which is associative and
// order-preserving, so partial results can be combined before their full
// context exists (a defs element can sit next to the group it describes).
type fragment struct {
	els []*etree.Element
}

// frag builds a fragment from elements, skipping nils.
func frag(els ...*etree.Element) fragment {
	f := fragment{}
	for _, el := range els {
		if el != nil {
			f.els = append(f.els, el)
		}
	}
	return f
}

// concat appends other's elements after f's, preserving order.
func (f fragment) concat(other fragment) fragment {
	return fragment{els: append(append([]*etree.Element{}, f.els...), other.els...)}
}

// attachTo adds every element in f as a child of parent, in order.
func (f fragment) attachTo(parent *etree.Element) {
	for _, el := range f.els {
		parent.AddChild(el)
	}
}

// num formats a coordinate or length with the shortest exact decimal form
// ("100", "0.5", "-2.25").
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// pair formats a coordinate pair as "x,y".
func pair(p geom.Point) string {
	return num(p.X) + "," + num(p.Y)
}

// matrix formats an affine transform as an SVG matrix(...) value.
func matrix(m geom.Affine) string {
	return "matrix(" + num(m[0]) + "," + num(m[1]) + "," + num(m[2]) + "," +
		num(m[3]) + "," + num(m[4]) + "," + num(m[5]) + ")"
}
