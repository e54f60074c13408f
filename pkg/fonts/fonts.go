// Package fonts provides @font-face definitions for SVG rendering.
//
// Rendered documents reference fonts by family name only. When a document
// must be self-contained (no reliance on viewer-installed fonts), a font
// file can be embedded as a CSS @font-face rule with a base64 data URI and
// injected into the document's global defs.
package fonts

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"

	"github.com/matzehuels/scenesvg/pkg/errors"
)

// Face names a font family backed by a font file on disk.
type Face struct {
	Family string
	Path   string
}

// formats maps font file extensions to CSS format identifiers and MIME types.
var formats = map[string]struct{ format, mime string }{
	".woff":  {"woff", "font/woff"},
	".woff2": {"woff2", "font/woff2"},
	".ttf":   {"truetype", "font/ttf"},
	".otf":   {"opentype", "font/otf"},
}

// ParseFace parses a "family=path" specification.
func ParseFace(spec string) (Face, error) {
	family, path, ok := strings.Cut(spec, "=")
	if !ok || family == "" || path == "" {
		return Face{}, errors.New(errors.ErrCodeInvalidFormat, "font spec %q must be family=path", spec)
	}
	return Face{Family: family, Path: path}, nil
}

// Def loads the font file and returns a style element carrying the
// @font-face rule. The font data is embedded as a base64 data URI so the
// document stays self-contained.
func (f Face) Def() (*etree.Element, error) {
	ext := strings.ToLower(filepath.Ext(f.Path))
	fm, ok := formats[ext]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported font file %q (use woff, woff2, ttf, or otf)", f.Path)
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read font %s", f.Path)
	}

	rule := fmt.Sprintf(
		"@font-face{font-family:%q;src:url(data:%s;base64,%s) format(%q);}",
		f.Family, fm.mime, base64.StdEncoding.EncodeToString(data), fm.format,
	)

	el := etree.NewElement("style")
	el.CreateAttr("type", "text/css")
	el.SetText(rule)
	return el, nil
}

// Defs builds style elements for all faces, preserving order.
func Defs(faces []Face) ([]*etree.Element, error) {
	els := make([]*etree.Element, 0, len(faces))
	for _, f := range faces {
		el, err := f.Def()
		if err != nil {
			return nil, err
		}
		els = append(els, el)
	}
	return els, nil
}
