package geometry

import "github.com/df07/go-sphere-raytracer/pkg/core"

// NoHit is the ray parameter returned when a ray misses a shape
const NoHit = -1.0

// Hittable interface for objects that can be hit by rays
type Hittable interface {
	// Hit returns the ray parameter of the intersection, or a negative value on a miss
	Hit(ray core.Ray) float64
	// Normal returns the unit surface normal at ray.At(t)
	Normal(ray core.Ray, t float64) core.Vec3
}
