package svg

import (
	"strings"
	"testing"

	"github.com/beevik/etree"

	"github.com/matzehuels/scenesvg/pkg/errors"
	"github.com/matzehuels/scenesvg/pkg/geom"
	"github.com/matzehuels/scenesvg/pkg/scene"
)

func renderString(t *testing.T, root scene.Node, opts Options) string {
	t.Helper()
	doc, err := Render(root, opts)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out, err := doc.Compact()
	if err != nil {
		t.Fatalf("Compact() error = %v", err)
	}
	return string(out)
}

func redSquare() scene.Node {
	style := scene.Style{}.WithFill(scene.Solid(scene.RGB(1, 0, 0)))
	return scene.Styled(style, &scene.Path{Trails: []scene.Located{scene.Rect(10, 10, 80, 80)}})
}

func linearFill() scene.Texture {
	return &scene.LinearGradient{
		Stops: []scene.Stop{
			{Offset: 0, Color: scene.RGB(0, 0, 0), Opacity: 1},
			{Offset: 1, Color: scene.RGB(1, 1, 1), Opacity: 1},
		},
		Transform: geom.Identity(),
		End:       geom.Pt(10, 0),
	}
}

func TestRenderRedSquare(t *testing.T) {
	out := renderString(t, redSquare(), Options{Size: scene.Dims(100, 100)})

	// Root element carries the fixed document attributes.
	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`xmlns="http://www.w3.org/2000/svg"`,
		`xmlns:xlink="http://www.w3.org/1999/xlink"`,
		`version="1.1"`,
		`width="100"`,
		`height="100"`,
		`viewBox="0 0 100 100"`,
		`font-size="1"`,
		`stroke="rgb(0,0,0)"`,
		`stroke-opacity="1"`,
		`fill="rgb(255,0,0)"`,
		`fill-opacity="1"`,
		`d="M 10,10 h 80 v 80 h -80 Z"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\noutput: %s", want, out)
		}
	}
}

func TestRenderDimensions(t *testing.T) {
	tests := []struct {
		name         string
		opts         Options
		wantW, wantH float64
		wantViewBox  string
	}{
		{"explicit dims", Options{Size: scene.Dims(200, 50)}, 200, 50, "0 0 200 50"},
		{
			"width keeps aspect",
			Options{Size: scene.WidthOnly(50), NaturalWidth: 200, NaturalHeight: 100},
			50, 25, "0 0 50 25",
		},
		{
			"height keeps aspect",
			Options{Size: scene.HeightOnly(50), NaturalWidth: 200, NaturalHeight: 100},
			100, 50, "0 0 100 50",
		},
		{"unconstrained fallback", Options{}, 100, 100, "0 0 100 100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Render(redSquare(), tt.opts)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if doc.Width != tt.wantW || doc.Height != tt.wantH {
				t.Errorf("dimensions = %vx%v, want %vx%v", doc.Width, doc.Height, tt.wantW, tt.wantH)
			}
			if got := doc.Tree().Root().SelectAttrValue("viewBox", ""); got != tt.wantViewBox {
				t.Errorf("viewBox = %q, want %q", got, tt.wantViewBox)
			}
		})
	}
}

func TestRenderGradientIDParity(t *testing.T) {
	rect := func(x float64) *scene.Path {
		return &scene.Path{Trails: []scene.Located{scene.Rect(x, 0, 10, 10)}}
	}
	root := &scene.Group{Children: []scene.Node{
		scene.Styled(scene.Style{}.WithFill(linearFill()), rect(0)),
		scene.Styled(scene.Style{}.WithLine(linearFill()), rect(20)),
		scene.Styled(scene.Style{}.WithFill(linearFill()), rect(40)),
		scene.Styled(scene.Style{}.WithLine(linearFill()), rect(60)),
	}}

	doc, err := Render(root, Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// Fill gradients take even IDs, line gradients odd, each in tree order.
	tree := doc.Tree()
	for _, id := range []string{"gradient0", "gradient1", "gradient2", "gradient3"} {
		if tree.FindElement("//linearGradient[@id='" + id + "']") == nil {
			t.Errorf("document missing gradient def %q", id)
		}
	}

	out, _ := doc.Compact()
	for _, want := range []string{
		`fill="url(#gradient0)"`,
		`stroke="url(#gradient1)"`,
		`fill="url(#gradient2)"`,
		`stroke="url(#gradient3)"`,
	} {
		if !strings.Contains(string(out), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderGradientDefsPrecedeGroup(t *testing.T) {
	root := scene.Styled(scene.Style{}.WithFill(linearFill()),
		&scene.Path{Trails: []scene.Located{scene.Rect(0, 0, 10, 10)}})

	doc, err := Render(root, Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	svgRoot := doc.Tree().Root()
	children := svgRoot.ChildElements()
	if len(children) != 2 {
		t.Fatalf("root has %d children, want defs and g", len(children))
	}
	if children[0].Tag != "defs" || children[1].Tag != "g" {
		t.Errorf("root children = [%s, %s], want [defs, g]", children[0].Tag, children[1].Tag)
	}
	if children[0].FindElement("linearGradient") == nil {
		t.Error("defs element missing the gradient def")
	}
}

func TestRenderLineOnlySuppressesFill(t *testing.T) {
	open := &scene.Path{Trails: []scene.Located{
		scene.Line(geom.Pt(0, 0), scene.Linear(10, 0)),
	}}
	closed := &scene.Path{Trails: []scene.Located{scene.Rect(0, 0, 10, 10)}}

	root := &scene.Group{Children: []scene.Node{
		scene.Styled(scene.Style{}.WithFill(linearFill()), open),
		scene.Styled(scene.Style{}.WithFill(linearFill()), closed),
	}}

	out := renderString(t, root, Options{})

	if !strings.Contains(out, `fill="none"`) {
		t.Error("line-only group should render fill=\"none\"")
	}
	// The suppressed fill consumes no gradient ID, so the second style node
	// still gets the first even ID.
	if !strings.Contains(out, `fill="url(#gradient0)"`) {
		t.Error("second fill gradient should be allocated as gradient0")
	}
	if strings.Contains(out, "gradient2") {
		t.Error("line-only subtree must not allocate a gradient ID")
	}
}

func TestRenderLineOnlyMergeAcrossChildren(t *testing.T) {
	open := &scene.Path{Trails: []scene.Located{
		scene.Line(geom.Pt(0, 0), scene.Linear(10, 0)),
	}}
	closed := &scene.Path{Trails: []scene.Located{scene.Rect(0, 0, 10, 10)}}

	// One closed child defeats the line-only flag for the whole group.
	root := scene.Styled(scene.Style{}.WithFill(scene.Solid(scene.RGB(0, 1, 0))),
		open, closed)

	out := renderString(t, root, Options{})

	if strings.Contains(out, `fill="none"`) {
		t.Error("mixed subtree should not suppress fill")
	}
	if !strings.Contains(out, `fill="rgb(0,255,0)"`) {
		t.Error("mixed subtree should carry the solid fill")
	}
}

func TestRenderStyleWithoutChildren(t *testing.T) {
	// No children means not line-only: the fill still renders.
	root := scene.Styled(scene.Style{}.WithFill(scene.Solid(scene.RGB(0, 0, 1))))

	out := renderString(t, root, Options{})

	if !strings.Contains(out, `fill="rgb(0,0,255)"`) {
		t.Error("childless style node should still emit its fill")
	}
}

func TestRenderClipNesting(t *testing.T) {
	clip := func(x float64) scene.Path {
		return scene.Path{Trails: []scene.Located{scene.Rect(x, 0, 50, 50)}}
	}
	style := scene.Style{}.WithClip(clip(0)).WithClip(clip(10))
	root := scene.Styled(style,
		&scene.Path{Trails: []scene.Located{scene.Rect(0, 0, 10, 10)}})

	doc, err := Render(root, Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	tree := doc.Tree()

	outer := tree.FindElement("//g[@clip-path='url(#clip0)']")
	if outer == nil {
		t.Fatal("document missing outer clip group")
	}
	// Each clip group carries its own definition as the first child.
	kids := outer.ChildElements()
	if len(kids) != 2 || kids[0].Tag != "clipPath" {
		t.Fatalf("outer clip group children = %v, want [clipPath, g]", kids)
	}
	if kids[0].SelectAttrValue("id", "") != "clip0" {
		t.Errorf("outer def id = %q, want clip0", kids[0].SelectAttrValue("id", ""))
	}

	inner := kids[1]
	if inner.SelectAttrValue("clip-path", "") != "url(#clip1)" {
		t.Errorf("inner group clip-path = %q, want url(#clip1)", inner.SelectAttrValue("clip-path", ""))
	}
	innerKids := inner.ChildElements()
	if len(innerKids) != 2 || innerKids[0].Tag != "clipPath" {
		t.Fatalf("inner clip group children want [clipPath, g]")
	}
	// The styled group sits at the innermost level, clipped by both paths.
	if innerKids[1].Tag != "g" || innerKids[1].FindElement("path") == nil {
		t.Error("styled content should sit inside the innermost clip group")
	}
}

func TestRenderIDPrefix(t *testing.T) {
	style := scene.Style{}.
		WithClip(scene.Path{Trails: []scene.Located{scene.Rect(0, 0, 50, 50)}}).
		WithFill(linearFill())
	root := scene.Styled(style,
		&scene.Path{Trails: []scene.Located{scene.Rect(0, 0, 10, 10)}})

	out := renderString(t, root, Options{IDPrefix: "d1-"})

	for _, want := range []string{
		`id="d1-clip0"`,
		`clip-path="url(#d1-clip0)"`,
		`id="d1-gradient0"`,
		`fill="url(#d1-gradient0)"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderFreshStatePerCall(t *testing.T) {
	root := scene.Styled(scene.Style{}.WithFill(linearFill()),
		&scene.Path{Trails: []scene.Located{scene.Rect(0, 0, 10, 10)}})

	first := renderString(t, root, Options{})
	second := renderString(t, root, Options{})

	if first != second {
		t.Error("repeated Render calls should produce identical output")
	}
	if !strings.Contains(second, `id="gradient0"`) {
		t.Error("counters should restart at zero on each call")
	}
}

func TestRenderAnnotations(t *testing.T) {
	leaf := &scene.Path{Trails: []scene.Located{scene.Rect(0, 0, 10, 10)}}
	root := &scene.Group{Children: []scene.Node{
		scene.Link("https://example.com", leaf),
		scene.OpacityGroup(0.5, leaf),
	}}

	out := renderString(t, root, Options{})

	if !strings.Contains(out, `<a xlink:href="https://example.com">`) {
		t.Error("link annotation should render an anchor element")
	}
	if !strings.Contains(out, `<g opacity="0.5">`) {
		t.Error("opacity annotation should render a group with opacity")
	}
}

func TestRenderTextFlipsVertically(t *testing.T) {
	root := scene.Transformed(geom.Translate(10, 20), &scene.Text{Content: "hello"})

	out := renderString(t, root, Options{})

	// The accumulated transform composes with a vertical flip so glyphs
	// come out upright in the y-up scene space.
	if !strings.Contains(out, `<text transform="matrix(1,0,0,-1,10,20)">hello</text>`) {
		t.Errorf("unexpected text element in output: %s", out)
	}
}

func TestRenderImage(t *testing.T) {
	img := &scene.Image{
		Width:  4,
		Height: 2,
		MIME:   "image/png",
		Data:   []byte{0x89, 0x50, 0x4e, 0x47},
	}

	out := renderString(t, img, Options{})

	if !strings.Contains(out, `xlink:href="data:image/png;base64,iVBORw=="`) {
		t.Errorf("output missing data URI: %s", out)
	}
	// Centering translate then vertical flip under the identity transform.
	if !strings.Contains(out, `transform="matrix(1,0,0,-1,-2,1)"`) {
		t.Errorf("output missing image transform: %s", out)
	}
	if !strings.Contains(out, `width="4"`) || !strings.Contains(out, `height="2"`) {
		t.Error("output missing image dimensions")
	}
}

func TestRenderImageErrors(t *testing.T) {
	tests := []struct {
		name     string
		img      *scene.Image
		wantCode errors.Code
	}{
		{
			"unsupported mime",
			&scene.Image{Width: 1, Height: 1, MIME: "image/webp", Data: []byte{1}},
			errors.ErrCodeUnsupportedMIME,
		},
		{
			"empty payload",
			&scene.Image{Width: 1, Height: 1, MIME: "image/png"},
			errors.ErrCodeUnsupportedImage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(tt.img, Options{})
			if err == nil {
				t.Fatal("Render() should fail")
			}
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("error code = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestRenderGlobalDefs(t *testing.T) {
	style := etree.NewElement("style")
	style.CreateAttr("type", "text/css")
	style.SetText(`@font-face{font-family:"Hand";}`)

	doc, err := Render(redSquare(), Options{GlobalDefs: []*etree.Element{style}})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	children := doc.Tree().Root().ChildElements()
	if len(children) == 0 || children[0].Tag != "defs" {
		t.Fatal("global defs should render as the first child of the root")
	}
	if children[0].FindElement("style") == nil {
		t.Error("defs element missing the injected style")
	}
}

func TestDocumentPretty(t *testing.T) {
	doc, err := Render(redSquare(), Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	compact, err := doc.Compact()
	if err != nil {
		t.Fatalf("Compact() error = %v", err)
	}
	pretty, err := doc.Pretty()
	if err != nil {
		t.Fatalf("Pretty() error = %v", err)
	}

	if !strings.Contains(string(pretty), "\n  ") {
		t.Error("pretty output should be indented")
	}
	// Pretty-printing works on a copy: the compact form must survive.
	again, err := doc.Compact()
	if err != nil {
		t.Fatalf("Compact() error = %v", err)
	}
	if string(again) != string(compact) {
		t.Error("Pretty() must not mutate the compact serialization")
	}
}
