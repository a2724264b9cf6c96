package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// CameraConfig contains the fixed image and viewport geometry
type CameraConfig struct {
	AspectRatio    float64     // Image width over height
	Width          int         // Image width in pixels
	FocalLength    float64     // Distance from camera center to viewport
	ViewportHeight float64     // Viewport height in world units
	Center         core.Point3 // Camera position
}

// DefaultCameraConfig returns the 16:9, 400 pixel wide pinhole camera at the origin
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:    16.0 / 9.0,
		Width:          400,
		FocalLength:    1.0,
		ViewportHeight: 2.0,
		Center:         core.NewVec3(0, 0, 0),
	}
}

// Validate checks that the configuration describes a usable image and viewport
func (c CameraConfig) Validate() error {
	if c.Width < 1 {
		return fmt.Errorf("image width must be at least 1, got %d", c.Width)
	}
	if !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0) {
		return fmt.Errorf("aspect ratio must be positive and finite, got %g", c.AspectRatio)
	}
	if !(c.FocalLength > 0) {
		return fmt.Errorf("focal length must be positive, got %g", c.FocalLength)
	}
	if !(c.ViewportHeight > 0) {
		return fmt.Errorf("viewport height must be positive, got %g", c.ViewportHeight)
	}
	return nil
}

// ImageHeight derives the pixel height from width and aspect ratio, never less than 1
func ImageHeight(width int, aspectRatio float64) int {
	return max(1, int(math.Round(float64(width)/aspectRatio)))
}

// Camera maps pixel coordinates to world-space rays
type Camera struct {
	config      CameraConfig
	width       int
	height      int
	pixel00     core.Point3 // Center of pixel (0,0)
	pixelDeltaU core.Vec3   // Offset to the pixel on the right
	pixelDeltaV core.Vec3   // Offset to the pixel below
	viewportU   core.Vec3
	viewportV   core.Vec3
}

// NewCamera derives the viewport geometry once from the configuration
func NewCamera(config CameraConfig) *Camera {
	width := config.Width
	height := ImageHeight(width, config.AspectRatio)

	viewportWidth := config.ViewportHeight * (float64(width) / float64(height))

	// Pixel rows grow downward while world y grows upward
	viewportU := core.NewVec3(viewportWidth, 0, 0)
	viewportV := core.NewVec3(0, -config.ViewportHeight, 0)

	pixelDeltaU := viewportU.Divide(float64(width))
	pixelDeltaV := viewportV.Divide(float64(height))

	viewportUpperLeft := config.Center.
		Subtract(core.NewVec3(0, 0, config.FocalLength)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	return &Camera{
		config:      config,
		width:       width,
		height:      height,
		pixel00:     pixel00,
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
		viewportU:   viewportU,
		viewportV:   viewportV,
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig { return c.config }

// Center returns the camera position
func (c *Camera) Center() core.Point3 { return c.config.Center }

// ViewportSize returns the viewport width and height in world units
func (c *Camera) ViewportSize() (width, height float64) {
	return c.viewportU.X, -c.viewportV.Y
}

// PixelCenter returns the world-space center of pixel (col, row)
func (c *Camera) PixelCenter(col, row int) core.Point3 {
	return c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(col))).
		Add(c.pixelDeltaV.Multiply(float64(row)))
}

// GetRay returns the ray from the camera center through the center of pixel (col, row)
func (c *Camera) GetRay(col, row int) core.Ray {
	direction := c.PixelCenter(col, row).Subtract(c.config.Center)
	return core.NewRay(c.config.Center, direction)
}
