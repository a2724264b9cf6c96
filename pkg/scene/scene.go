package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	CameraConfig renderer.CameraConfig
	Shapes       []geometry.Hittable // Objects in the scene
	TopColor     core.Color          // Background at straight up
	BottomColor  core.Color          // Background at straight down
	Marker       *renderer.Marker    // Optional debug marker

	camera *renderer.Camera
}

// GetCamera returns the camera, deriving it from CameraConfig on first use
func (s *Scene) GetCamera() *renderer.Camera {
	if s.camera == nil {
		s.camera = renderer.NewCamera(s.CameraConfig)
	}
	return s.camera
}

// GetShapes returns the objects in the scene
func (s *Scene) GetShapes() []geometry.Hittable {
	return s.Shapes
}

// GetBackgroundColors returns the gradient endpoints
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Color) {
	return s.TopColor, s.BottomColor
}

// GetMarker returns the debug marker, or nil
func (s *Scene) GetMarker() *renderer.Marker {
	return s.Marker
}
