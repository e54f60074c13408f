package svg

import (
	"fmt"
	"io"
	"math"

	"github.com/beevik/etree"

	"github.com/matzehuels/scenesvg/pkg/geom"
	"github.com/matzehuels/scenesvg/pkg/scene"
)

// Options configures one document compile.
type Options struct {
	// Size is the requested output size. The zero value resolves to the
	// 100x100 fallback.
	Size scene.SizeSpec

	// NaturalWidth and NaturalHeight describe the scene's own aspect
	// ratio, consulted when Size fixes only one dimension. Zero means
	// unknown.
	NaturalWidth  float64
	NaturalHeight float64

	// IDPrefix namespaces every clip-path and gradient identifier so
	// several documents can be embedded in one page without collisions.
	IDPrefix string

	// GlobalDefs are extra definitions spliced into a top-level <defs>
	// element ahead of the document body.
	GlobalDefs []*etree.Element
}

// Document is a compiled in-memory SVG document. It exposes a compact and a
// pretty-printed serialization; the underlying element tree stays available
// for callers that post-process the markup.
type Document struct {
	doc    *etree.Document
	Width  float64
	Height float64
}

// prettyIndent is the indentation width for pretty-printed output.
const prettyIndent = 2

// Render compiles a scene tree into an SVG document. Each call owns a fresh
// set of ID counters; documents compiled concurrently from separate calls do
// not share state. Compilation either returns a complete document or an
// error, never a partial result.
func Render(root scene.Node, opts Options) (*Document, error) {
	st := newRenderState(opts.IDPrefix)
	body, _, err := compileNode(root, geom.Identity(), st)
	if err != nil {
		return nil, err
	}

	w, h := opts.Size.Resolve(opts.NaturalWidth, opts.NaturalHeight)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	svgRoot := doc.CreateElement("svg")
	svgRoot.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	svgRoot.CreateAttr("xmlns:xlink", "http://www.w3.org/1999/xlink")
	svgRoot.CreateAttr("version", "1.1")
	svgRoot.CreateAttr("width", num(w))
	svgRoot.CreateAttr("height", num(h))
	svgRoot.CreateAttr("viewBox", fmt.Sprintf("0 0 %d %d", round(w), round(h)))
	svgRoot.CreateAttr("font-size", "1")
	svgRoot.CreateAttr("stroke", "rgb(0,0,0)")
	svgRoot.CreateAttr("stroke-opacity", "1")

	if len(opts.GlobalDefs) > 0 {
		defs := svgRoot.CreateElement("defs")
		for _, d := range opts.GlobalDefs {
			defs.AddChild(d)
		}
	}
	body.attachTo(svgRoot)

	return &Document{doc: doc, Width: w, Height: h}, nil
}

func round(v float64) int {
	return int(math.Round(v))
}

// Tree returns the underlying element tree.
func (d *Document) Tree() *etree.Document { return d.doc }

// Compact serializes the document with no extraneous whitespace.
func (d *Document) Compact() ([]byte, error) {
	return d.bytes(false)
}

// Pretty serializes the document indented for human readers.
func (d *Document) Pretty() ([]byte, error) {
	return d.bytes(true)
}

func (d *Document) bytes(pretty bool) ([]byte, error) {
	out := d.doc
	if pretty {
		out = d.doc.Copy()
		out.Indent(prettyIndent)
	}
	return out.WriteToBytes()
}

// WriteTo writes the serialized document to w.
func (d *Document) WriteTo(w io.Writer, pretty bool) (int64, error) {
	out := d.doc
	if pretty {
		out = d.doc.Copy()
		out.Indent(prettyIndent)
	}
	return out.WriteTo(w)
}

// WriteFile writes the serialized document to path.
func (d *Document) WriteFile(path string, pretty bool) error {
	out := d.doc
	if pretty {
		out = d.doc.Copy()
		out.Indent(prettyIndent)
	}
	return out.WriteToFile(path)
}
