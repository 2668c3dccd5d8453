package font

import (
	"path/filepath"
	"testing"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

func TestFaceNeverNil(t *testing.T) {
	for _, points := range []float64{4, 13, 42.6} {
		if Face(points) == nil {
			t.Fatalf("no face for %v points", points)
		}
	}
}

func TestFaceWithoutSystemFonts(t *testing.T) {
	old := systemFonts
	systemFonts = []string{filepath.Join(t.TempDir(), "missing.ttf")}
	defer func() { systemFonts = old }()

	face := Face(21)
	if face == nil {
		t.Fatal("expected bundled fallback face")
	}
	if face == xfont.Face(basicfont.Face7x13) {
		t.Error("expected a scalable face from the bundled font")
	}
}

func TestFaceBitmapFallback(t *testing.T) {
	old := providers
	providers = nil
	defer func() { providers = old }()

	if Face(30) != xfont.Face(basicfont.Face7x13) {
		t.Error("expected the bitmap fallback face")
	}
}

func TestFaceMeasures(t *testing.T) {
	if xfont.MeasureString(Face(16), "SEO") <= 0 {
		t.Error("expected positive advance for SEO")
	}
}
