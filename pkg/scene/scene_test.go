package scene

import (
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

var _ renderer.Scene = (*Scene)(nil)

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene()

	if len(s.Shapes) != 1 {
		t.Fatalf("Expected a single shape, got %d", len(s.Shapes))
	}
	sphere, ok := s.Shapes[0].(*geometry.Sphere)
	if !ok {
		t.Fatalf("Expected *geometry.Sphere, got %T", s.Shapes[0])
	}
	if sphere.Center != core.NewVec3(0, 0, -1) || sphere.Radius != 0.5 {
		t.Errorf("Unexpected sphere %+v", sphere)
	}

	top, bottom := s.GetBackgroundColors()
	if top != core.SkyBlue || bottom != core.White {
		t.Errorf("Expected sky blue over white, got %+v over %+v", top, bottom)
	}

	marker := s.GetMarker()
	if marker == nil {
		t.Fatal("Expected a marker")
	}
	if marker.Point != sphere.Center || marker.Tolerance != MarkerTolerance || marker.Color != core.Red {
		t.Errorf("Unexpected marker %+v", marker)
	}

	if err := s.CameraConfig.Validate(); err != nil {
		t.Errorf("Default camera config should be valid: %v", err)
	}
}

func TestScene_GetCamera(t *testing.T) {
	s := NewDefaultScene()

	camera := s.GetCamera()
	if camera.Width() != 400 || camera.Height() != 225 {
		t.Errorf("Expected 400x225, got %dx%d", camera.Width(), camera.Height())
	}
	if s.GetCamera() != camera {
		t.Error("Expected camera to be derived once and reused")
	}
}

func TestNewDefaultScene_CameraOverride(t *testing.T) {
	config := renderer.DefaultCameraConfig()
	config.Width = 64
	config.AspectRatio = 2.0

	camera := NewDefaultScene(config).GetCamera()
	if camera.Width() != 64 || camera.Height() != 32 {
		t.Errorf("Expected 64x32, got %dx%d", camera.Width(), camera.Height())
	}
}
