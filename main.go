package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mitchellh/go-wordwrap"

	"icongen/icon"
)

var sizes = []int{16, 48, 128}

const installHint = "Error: the raster drawing surface is unavailable, no icons were generated. " +
	"Rebuild the binary with the golang.org/x/image module present: go build icongen"

func main() {
	if err := icon.Probe(); err != nil {
		fmt.Fprintln(os.Stderr, wordwrap.WrapString(installHint, 72))
		os.Exit(1)
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	theme, err := icon.LoadTheme()
	if err != nil {
		return err
	}
	renderer := icon.NewRenderer(theme)

	for _, size := range sizes {
		if err := renderer.Render(icon.ForSize(size)); err != nil {
			return fmt.Errorf("error generating icon%d.png: %w", size, err)
		}
	}

	fmt.Println("Icons generated successfully!")
	return nil
}
