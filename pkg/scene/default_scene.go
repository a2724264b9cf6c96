package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// MarkerTolerance is the world-space radius around the sphere center painted by the marker
const MarkerTolerance = 0.01

// NewDefaultScene creates the single sphere scene seen from the origin
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = cameraOverrides[0]
	}

	sphereCenter := core.NewVec3(0, 0, -1)

	return &Scene{
		CameraConfig: cameraConfig,
		Shapes: []geometry.Hittable{
			geometry.NewSphere(sphereCenter, 0.5),
		},
		TopColor:    core.SkyBlue,
		BottomColor: core.White,
		Marker: &renderer.Marker{
			Point:     sphereCenter,
			Tolerance: MarkerTolerance,
			Color:     core.Red,
		},
	}
}
