package svg

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/matzehuels/scenesvg/pkg/geom"
	"github.com/matzehuels/scenesvg/pkg/scene"
)

// clipChain is a nest of clip groups, outermost first. Content placed at the
// innermost level is clipped by every path in the stack.
type clipChain struct {
	outer *etree.Element
	inner *etree.Element
}

// newClipChain builds one clip group per path in the clip stack. Each group
// carries its own <clipPath> definition as the first child rather than
// hoisting it to a top-level defs table; downstream consumers depend on this
// exact nesting, so it is preserved as-is.
//
// Clip IDs come from the shared render-state counter at build time, so they
// are sequential outer-to-inner and unique across the whole document
// regardless of tree shape. An empty clip stack yields a chain with no
// levels.
func newClipChain(clips []scene.Path, tr geom.Affine, st *renderState) clipChain {
	var chain clipChain
	for i := range clips {
		name := fmt.Sprintf("%sclip%d", st.prefix, st.nextClipID())

		def := etree.NewElement("clipPath")
		def.CreateAttr("id", name)
		if el := pathElement(&clips[i], tr); el != nil {
			def.AddChild(el)
		}

		group := etree.NewElement("g")
		group.CreateAttr("clip-path", "url(#"+name+")")
		group.AddChild(def)

		if chain.inner == nil {
			chain.outer = group
		} else {
			chain.inner.AddChild(group)
		}
		chain.inner = group
	}
	return chain
}

// wrap nests content inside the chain. With no levels it returns content
// unchanged.
func (c clipChain) wrap(content fragment) fragment {
	if c.outer == nil {
		return content
	}
	content.attachTo(c.inner)
	return frag(c.outer)
}
