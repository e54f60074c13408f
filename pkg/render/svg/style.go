package svg

import (
	"strings"

	"github.com/matzehuels/scenesvg/pkg/errors"
	"github.com/matzehuels/scenesvg/pkg/scene"
)

// attr is a presentation attribute destined for a group element.
type attr struct {
	key   string
	value string
}

// styleAttrs maps the non-texture style attributes onto SVG presentation
// attributes. Every attribute is independently optional: a nil field emits
// nothing and inherits the parent or default value. The mapping is total over
// the closed enumerations; an out-of-range value is a hard error rather than
// a silent default, since only a corrupted scene can produce one.
func styleAttrs(s scene.Style) ([]attr, error) {
	var attrs []attr

	if s.LineWidth != nil {
		attrs = append(attrs, attr{"stroke-width", num(*s.LineWidth)})
	}
	if s.LineCap != nil {
		v, err := lineCapValue(*s.LineCap)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr{"stroke-linecap", v})
	}
	if s.LineJoin != nil {
		v, err := lineJoinValue(*s.LineJoin)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr{"stroke-linejoin", v})
	}
	if s.FillRule != nil {
		v, err := fillRuleValue(*s.FillRule)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr{"fill-rule", v})
	}
	if s.Dashing != nil {
		parts := make([]string, len(s.Dashing.Array))
		for i, d := range s.Dashing.Array {
			parts[i] = num(d)
		}
		attrs = append(attrs,
			attr{"stroke-dasharray", strings.Join(parts, ",")},
			attr{"stroke-dashoffset", num(s.Dashing.Offset)},
		)
	}
	if s.Opacity != nil {
		attrs = append(attrs, attr{"opacity", num(*s.Opacity)})
	}
	if s.FontSize != nil {
		attrs = append(attrs, attr{"font-size", num(*s.FontSize) + "px"})
	}
	if s.FontSlant != nil {
		v, err := fontSlantValue(*s.FontSlant)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr{"font-style", v})
	}
	if s.FontWeight != nil {
		v, err := fontWeightValue(*s.FontWeight)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr{"font-weight", v})
	}
	if s.FontFamily != nil {
		attrs = append(attrs, attr{"font-family", *s.FontFamily})
	}
	if s.MiterLimit != nil {
		attrs = append(attrs, attr{"stroke-miterlimit", num(*s.MiterLimit)})
	}

	return attrs, nil
}

func lineCapValue(c scene.LineCap) (string, error) {
	switch c {
	case scene.CapButt:
		return "butt", nil
	case scene.CapRound:
		return "round", nil
	case scene.CapSquare:
		return "square", nil
	}
	return "", errors.New(errors.ErrCodeInvalidScene, "unknown line cap %d", c)
}

func lineJoinValue(j scene.LineJoin) (string, error) {
	switch j {
	case scene.JoinMiter:
		return "miter", nil
	case scene.JoinRound:
		return "round", nil
	case scene.JoinBevel:
		return "bevel", nil
	}
	return "", errors.New(errors.ErrCodeInvalidScene, "unknown line join %d", j)
}

func fillRuleValue(r scene.FillRule) (string, error) {
	switch r {
	case scene.FillWinding:
		return "nonzero", nil
	case scene.FillEvenOdd:
		return "evenodd", nil
	}
	return "", errors.New(errors.ErrCodeInvalidScene, "unknown fill rule %d", r)
}

func fontSlantValue(v scene.FontSlant) (string, error) {
	switch v {
	case scene.SlantNormal:
		return "normal", nil
	case scene.SlantItalic:
		return "italic", nil
	case scene.SlantOblique:
		return "oblique", nil
	}
	return "", errors.New(errors.ErrCodeInvalidScene, "unknown font slant %d", v)
}

func fontWeightValue(v scene.FontWeight) (string, error) {
	switch v {
	case scene.WeightNormal:
		return "normal", nil
	case scene.WeightBold:
		return "bold", nil
	}
	return "", errors.New(errors.ErrCodeInvalidScene, "unknown font weight %d", v)
}
