package icon

import (
	"image"
	"image/png"
	"os"
)

// Load reads previously generated icons back from disk, in the given order.
func Load(paths ...string) ([]image.Image, error) {
	var icons []image.Image

	for _, path := range paths {
		icon, err := loadIcon(path)
		if err != nil {
			return nil, err
		}
		icons = append(icons, icon)
	}

	return icons, nil
}

func loadIcon(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	icon, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	return icon, nil
}
