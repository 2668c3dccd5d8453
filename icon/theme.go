package icon

import (
	_ "embed"
	"fmt"
	"image/color"

	"github.com/BurntSushi/toml"
)

//go:embed theme.toml
var themeTOML []byte

// Theme holds the badge palette and label strings, decoded from the
// embedded theme asset.
type Theme struct {
	Canvas struct {
		Background string `toml:"background"`
		Stroke     string `toml:"stroke"`
	} `toml:"canvas"`
	Label struct {
		Short string `toml:"short"`
		Full  string `toml:"full"`
	} `toml:"label"`

	background color.RGBA
	stroke     color.RGBA
}

func LoadTheme() (*Theme, error) {
	var theme Theme
	if err := toml.Unmarshal(themeTOML, &theme); err != nil {
		return nil, fmt.Errorf("error loading theme: %w", err)
	}
	if theme.Canvas.Background == "" {
		theme.Canvas.Background = "#007BFF"
	}
	if theme.Canvas.Stroke == "" {
		theme.Canvas.Stroke = "#FFFFFF"
	}
	if theme.Label.Short == "" {
		theme.Label.Short = "S"
	}
	if theme.Label.Full == "" {
		theme.Label.Full = "SEO"
	}

	var err error
	if theme.background, err = parseColor(theme.Canvas.Background); err != nil {
		return nil, fmt.Errorf("error loading theme background: %w", err)
	}
	if theme.stroke, err = parseColor(theme.Canvas.Stroke); err != nil {
		return nil, fmt.Errorf("error loading theme stroke: %w", err)
	}
	return &theme, nil
}

// parseColor decodes a #RRGGBB string into an opaque color.
func parseColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
