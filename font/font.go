// Package font resolves a glyph-rendering face for a requested point size.
// Resolution walks an ordered provider chain and always succeeds: when no
// scalable font is usable the generic bitmap face is returned.
package font

import (
	"os"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Only plain TTF files are probed, TTC collections are not supported.
var systemFonts = []string{
	"C:\\Windows\\Fonts\\arial.ttf",
	"C:\\Windows\\Fonts\\segoeui.ttf",
	"/Library/Fonts/Arial.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/System/Library/Fonts/Monaco.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
}

type provider func(points float64) (xfont.Face, error)

var providers = []provider{systemFace, bundledFace}

// Face returns a face for the given point size, preferring a system font,
// then the bundled Go Regular, then the fixed-size bitmap fallback.
func Face(points float64) xfont.Face {
	for _, p := range providers {
		if face, err := p(points); err == nil {
			return face
		}
	}
	return basicfont.Face7x13
}

func systemFace(points float64) (xfont.Face, error) {
	var err error
	for _, path := range systemFonts {
		var buf []byte
		buf, err = os.ReadFile(path)
		if err != nil {
			continue
		}
		var face xfont.Face
		face, err = newFace(buf, points)
		if err == nil {
			return face, nil
		}
	}
	if err == nil {
		err = os.ErrNotExist
	}
	return nil, err
}

func bundledFace(points float64) (xfont.Face, error) {
	return newFace(goregular.TTF, points)
}

func newFace(ttf []byte, points float64) (xfont.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    points,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
}
