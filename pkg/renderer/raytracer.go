package renderer

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// Marker paints a fixed color on pixels whose world-space center lies near Point
type Marker struct {
	Point     core.Point3
	Tolerance float64
	Color     core.Color
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetShapes() []geometry.Hittable
	GetBackgroundColors() (topColor, bottomColor core.Color)
	GetMarker() *Marker // nil disables the marker
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene  Scene
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards log output.
func NewRaytracer(scene Scene, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = discardLogger{}
	}
	return &Raytracer{
		scene:  scene,
		logger: logger,
	}
}

// hitWorld returns the shape with the nearest positive ray parameter
func (rt *Raytracer) hitWorld(ray core.Ray) (geometry.Hittable, float64, bool) {
	var closest geometry.Hittable
	closestSoFar := math.Inf(1)

	for _, shape := range rt.scene.GetShapes() {
		if t := shape.Hit(ray); t > 0 && t < closestSoFar {
			closest = shape
			closestSoFar = t
		}
	}

	return closest, closestSoFar, closest != nil
}

// backgroundGradient returns a gradient color based on ray direction
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Color {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	alpha := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Multiply(1.0 - alpha).Add(topColor.Multiply(alpha))
}

// rayColor resolves a ray to a color and reports which branch produced it
func (rt *Raytracer) rayColor(r core.Ray) (core.Color, PixelKind) {
	shape, t, isHit := rt.hitWorld(r)
	if !isHit {
		return rt.backgroundGradient(r), PixelBackground
	}
	return core.ColorFromNormal(shape.Normal(r, t)), PixelHit
}

// RayColor returns the normal shading of the nearest hit, or the background gradient
func (rt *Raytracer) RayColor(r core.Ray) core.Color {
	c, _ := rt.rayColor(r)
	return c
}

// PixelColor resolves the color of pixel (col, row)
func (rt *Raytracer) PixelColor(col, row int) (core.Color, PixelKind) {
	camera := rt.scene.GetCamera()

	if marker := rt.scene.GetMarker(); marker != nil {
		if camera.PixelCenter(col, row).IsWithin(marker.Point, marker.Tolerance) {
			return marker.Color, PixelMarker
		}
	}

	return rt.rayColor(camera.GetRay(col, row))
}

// Render writes every pixel to sink, rows top to bottom and columns left to right.
// Nothing is written if the scene is not renderable.
func (rt *Raytracer) Render(sink PixelSink) (RenderStats, error) {
	var stats RenderStats

	camera := rt.scene.GetCamera()
	if camera == nil {
		return stats, errors.New("scene has no camera")
	}
	if err := camera.Config().Validate(); err != nil {
		return stats, fmt.Errorf("invalid camera config: %w", err)
	}

	width, height := camera.Width(), camera.Height()
	rt.logger.Printf("Rendering %dx%d image with %d shape(s)...\n", width, height, len(rt.scene.GetShapes()))
	startTime := time.Now()

	if err := sink.WriteHeader(width, height); err != nil {
		return stats, fmt.Errorf("writing header: %w", err)
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			pixelColor, kind := rt.PixelColor(col, row)
			if err := sink.WritePixel(pixelColor); err != nil {
				return stats, fmt.Errorf("writing pixel (%d,%d): %w", col, row, err)
			}
			stats.AddPixel(kind)
		}
	}

	if err := sink.Flush(); err != nil {
		return stats, fmt.Errorf("flushing output: %w", err)
	}

	rt.logger.Printf("Render completed in %v (%d pixels, %.1f%% hit, %d marker)\n",
		time.Since(startTime), stats.TotalPixels, 100*stats.HitRatio(), stats.MarkerPixels)

	return stats, nil
}
