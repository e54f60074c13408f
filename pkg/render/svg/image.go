package svg

import (
	"encoding/base64"

	"github.com/beevik/etree"

	"github.com/matzehuels/scenesvg/pkg/errors"
	"github.com/matzehuels/scenesvg/pkg/geom"
	"github.com/matzehuels/scenesvg/pkg/scene"
)

// mimeTypes is the closed set of raster encodings the backend will embed.
var mimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
}

// imageElement embeds a raster image as an inline data URI, keeping the
// output document self-contained. The element transform composes three
// pieces, applied right to left: a translation centering the image on its
// logical anchor point, a vertical flip correcting for the y-up scene
// coordinate system, and the accumulated scene transform.
//
// An unknown MIME type or empty payload is a hard failure: a broken document
// must never be emitted.
func imageElement(img *scene.Image, tr geom.Affine) (*etree.Element, error) {
	if !mimeTypes[img.MIME] {
		return nil, errors.New(errors.ErrCodeUnsupportedMIME, "cannot embed image type %q", img.MIME)
	}
	if len(img.Data) == 0 {
		return nil, errors.New(errors.ErrCodeUnsupportedImage, "image has no encoded data")
	}

	uri := "data:" + img.MIME + ";base64," + base64.StdEncoding.EncodeToString(img.Data)

	final := tr.
		Mul(geom.FlipY()).
		Mul(geom.Translate(-img.Width/2, -img.Height/2))

	el := etree.NewElement("image")
	el.CreateAttr("transform", matrix(final))
	el.CreateAttr("width", num(img.Width))
	el.CreateAttr("height", num(img.Height))
	el.CreateAttr("xlink:href", uri)
	return el, nil
}
