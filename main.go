package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

func main() {
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Sphere Raytracer")
		fmt.Fprintln(os.Stderr, "Usage: raytracer > image.ppm")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Renders a single sphere against a sky gradient as a P3 pixel map on stdout.")
		fmt.Fprintln(os.Stderr, "Progress is logged to stderr.")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Options:")
		flag.PrintDefaults()
		return
	}

	if err := run(os.Stdout, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run renders the default scene to out
func run(out io.Writer, logger core.Logger) error {
	selectedScene := scene.NewDefaultScene()
	raytracer := renderer.NewRaytracer(selectedScene, logger)

	if _, err := raytracer.Render(renderer.NewPPMWriter(out)); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}
