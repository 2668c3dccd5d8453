package main

import (
	"fmt"
	"os"
	"testing"

	"icongen/icon"
)

// chdir moves the test into dir and restores the original working
// directory on cleanup. Equivalent to t.Chdir, which needs Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestRunGeneratesAllIcons(t *testing.T) {
	chdir(t, t.TempDir())

	if err := run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	var paths []string
	for _, size := range sizes {
		paths = append(paths, fmt.Sprintf("icon%d.png", size))
	}
	icons, err := icon.Load(paths...)
	if err != nil {
		t.Fatalf("error loading generated icons: %v", err)
	}
	for i, size := range sizes {
		b := icons[i].Bounds()
		if b.Dx() != size || b.Dy() != size {
			t.Errorf("%s is %dx%d, want %dx%d", paths[i], b.Dx(), b.Dy(), size, size)
		}
	}
}

func TestRunOverwritesExistingIcons(t *testing.T) {
	chdir(t, t.TempDir())

	if err := run(); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := run(); err != nil {
		t.Fatalf("second run: %v", err)
	}
}
