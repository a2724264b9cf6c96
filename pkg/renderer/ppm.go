package renderer

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// PixelSink receives a rendered image in row-major order
type PixelSink interface {
	WriteHeader(width, height int) error
	WritePixel(c core.Color) error
	Flush() error
}

// PPMWriter writes a plain-text P3 pixel map
type PPMWriter struct {
	w        *bufio.Writer
	expected int
	written  int
	started  bool
}

// NewPPMWriter creates a P3 writer over w
func NewPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes the format tag, dimensions and maximum channel value
func (p *PPMWriter) WriteHeader(width, height int) error {
	if p.started {
		return errors.New("ppm header already written")
	}
	if width < 1 || height < 1 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}
	p.started = true
	p.expected = width * height
	_, err := fmt.Fprintf(p.w, "P3\n%d %d\n255\n", width, height)
	return err
}

// WritePixel writes one "r g b" record
func (p *PPMWriter) WritePixel(c core.Color) error {
	if !p.started {
		return errors.New("ppm pixel written before header")
	}
	if p.written >= p.expected {
		return fmt.Errorf("ppm pixel count exceeds %d", p.expected)
	}
	r, g, b := c.ToRGB8()
	if _, err := fmt.Fprintf(p.w, "%d %d %d\n", r, g, b); err != nil {
		return err
	}
	p.written++
	return nil
}

// Flush writes buffered output and checks that the declared pixel count was met
func (p *PPMWriter) Flush() error {
	if err := p.w.Flush(); err != nil {
		return err
	}
	if p.written != p.expected {
		return fmt.Errorf("ppm wrote %d of %d pixels", p.written, p.expected)
	}
	return nil
}
