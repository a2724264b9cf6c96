package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestImageHeight(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		aspectRatio float64
		expected    int
	}{
		{"16:9 at 400 wide", 400, 16.0 / 9.0, 225},
		{"Square", 256, 1.0, 256},
		{"Rounds to nearest", 401, 16.0 / 9.0, 226},
		{"Never below one", 10, 100.0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ImageHeight(tt.width, tt.aspectRatio); got != tt.expected {
				t.Errorf("Expected height %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestCameraConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(c *CameraConfig)
		expectErr bool
	}{
		{"Default is valid", func(c *CameraConfig) {}, false},
		{"Zero width", func(c *CameraConfig) { c.Width = 0 }, true},
		{"Zero aspect ratio", func(c *CameraConfig) { c.AspectRatio = 0 }, true},
		{"NaN aspect ratio", func(c *CameraConfig) { c.AspectRatio = math.NaN() }, true},
		{"Negative focal length", func(c *CameraConfig) { c.FocalLength = -1 }, true},
		{"Zero viewport height", func(c *CameraConfig) { c.ViewportHeight = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig()
			tt.modify(&config)
			err := config.Validate()
			if tt.expectErr && err == nil {
				t.Error("Expected error, got none")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestCamera_DerivedGeometry(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())

	if camera.Width() != 400 || camera.Height() != 225 {
		t.Fatalf("Expected 400x225, got %dx%d", camera.Width(), camera.Height())
	}

	viewportWidth, viewportHeight := camera.ViewportSize()
	if math.Abs(viewportWidth-2.0*400.0/225.0) > 1e-9 {
		t.Errorf("Expected viewport width %f, got %f", 2.0*400.0/225.0, viewportWidth)
	}
	if viewportHeight != 2.0 {
		t.Errorf("Expected viewport height 2, got %f", viewportHeight)
	}

	// Half a pixel in from the upper left viewport corner
	delta := 2.0 / 225.0
	expected := core.NewVec3(-viewportWidth/2+delta/2, 1-delta/2, -1)
	if got := camera.PixelCenter(0, 0); !vecClose(got, expected, 1e-9) {
		t.Errorf("Expected pixel00 %v, got %v", expected, got)
	}
}

func TestCamera_PixelCenterSymmetry(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())

	first := camera.PixelCenter(0, 0)
	last := camera.PixelCenter(camera.Width()-1, camera.Height()-1)

	if math.Abs(first.X+last.X) > 1e-9 || math.Abs(first.Y+last.Y) > 1e-9 {
		t.Errorf("Expected opposite corners to mirror, got %v and %v", first, last)
	}

	// Rows advance downward in world space
	if camera.PixelCenter(0, 1).Y >= first.Y {
		t.Error("Expected y to decrease as the row increases")
	}
	if camera.PixelCenter(1, 0).X <= first.X {
		t.Error("Expected x to increase as the column increases")
	}
}

func TestCamera_GetRay(t *testing.T) {
	config := DefaultCameraConfig()
	config.Center = core.NewVec3(1, 2, 3)
	camera := NewCamera(config)

	ray := camera.GetRay(10, 20)
	if ray.Origin != config.Center {
		t.Errorf("Expected origin %v, got %v", config.Center, ray.Origin)
	}

	// Direction reaches the pixel center exactly at t=1
	if !vecClose(ray.At(1), camera.PixelCenter(10, 20), 1e-9) {
		t.Errorf("Expected ray to pass through pixel center %v, got %v", camera.PixelCenter(10, 20), ray.At(1))
	}

	// Viewport sits one focal length in front of the camera
	if math.Abs(ray.Direction.Z+config.FocalLength) > 1e-9 {
		t.Errorf("Expected direction z %f, got %f", -config.FocalLength, ray.Direction.Z)
	}
}
