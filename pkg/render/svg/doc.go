// Package svg compiles a scene tree into an SVG document.
//
// This is the core of scenesvg: a recursive descent over the scene tree that
// accumulates coordinate transforms and style context, allocates stable
// collision-free identifiers for paint servers and clip paths, and serializes
// geometry into the SVG path-data mini-language.
//
// # Pipeline Position
//
// The compiler sits between two external collaborators: the scene
// construction layer ([github.com/matzehuels/scenesvg/pkg/scene]) upstream,
// and the XML element tree (github.com/beevik/etree) downstream, which
// handles pretty-printing and byte output.
//
// # Identifier Allocation
//
// One render call owns a fresh set of monotonic counters: clip-path IDs count
// 0, 1, 2, ... in depth-first traversal order; fill-gradient IDs are the even
// numbers starting at 0 and line-gradient IDs the odd numbers starting at 1,
// so a node carrying both a fill and a line gradient can never collide inside
// the shared defs namespace. An optional ID prefix namespaces all identifiers
// so multiple rendered documents can be embedded in a single page.
//
// # Usage
//
//	doc, err := svg.Render(tree, svg.Options{Size: scene.Dims(400, 300)})
//	if err != nil {
//	    return err
//	}
//	err = doc.WriteFile("out.svg", true) // pretty-printed
package svg
