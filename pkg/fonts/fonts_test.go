package fonts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/scenesvg/pkg/errors"
)

func TestParseFace(t *testing.T) {
	f, err := ParseFace("Handwriting=fonts/hand.woff")
	if err != nil {
		t.Fatalf("ParseFace: %v", err)
	}
	if f.Family != "Handwriting" || f.Path != "fonts/hand.woff" {
		t.Errorf("Face = %+v", f)
	}

	for _, bad := range []string{"", "nofamily", "=path", "family="} {
		if _, err := ParseFace(bad); err == nil {
			t.Errorf("ParseFace(%q) should fail", bad)
		}
	}
}

func TestFaceDef(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hand.woff")
	if err := os.WriteFile(path, []byte("fontdata"), 0o644); err != nil {
		t.Fatal(err)
	}

	el, err := Face{Family: "Hand", Path: path}.Def()
	if err != nil {
		t.Fatalf("Def: %v", err)
	}
	if el.Tag != "style" {
		t.Errorf("tag = %q, want style", el.Tag)
	}
	css := el.Text()
	if !strings.Contains(css, `font-family:"Hand"`) {
		t.Errorf("missing family in rule: %s", css)
	}
	if !strings.Contains(css, "data:font/woff;base64,Zm9udGRhdGE=") {
		t.Errorf("missing data URI in rule: %s", css)
	}
}

func TestFaceDefUnsupportedExtension(t *testing.T) {
	_, err := Face{Family: "Hand", Path: "hand.svg"}.Def()
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidFormat {
		t.Errorf("code = %v", errors.GetCode(err))
	}
}

func TestFaceDefMissingFile(t *testing.T) {
	_, err := Face{Family: "Hand", Path: filepath.Join(t.TempDir(), "nope.ttf")}.Def()
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.GetCode(err) != errors.ErrCodeFileNotFound {
		t.Errorf("code = %v", errors.GetCode(err))
	}
}
