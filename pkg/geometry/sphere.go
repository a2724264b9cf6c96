package geometry

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Point3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Point3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Hit tests if a ray intersects with the sphere.
// Only the near root is reported, so a ray starting inside the sphere
// yields a negative parameter and counts as a miss for t > 0 callers.
func (s *Sphere) Hit(ray core.Ray) float64 {
	// Vector from ray origin to sphere center
	oc := s.Center.Subtract(ray.Origin)

	// Quadratic equation coefficients with b = -2h
	a := ray.Direction.LengthSquared()
	if a == 0 || s.Radius <= 0 {
		return NoHit
	}
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return NoHit
	}

	return (h - math.Sqrt(discriminant)) / a
}

// Normal returns the outward unit normal at parameter t along the ray
func (s *Sphere) Normal(ray core.Ray, t float64) core.Vec3 {
	return ray.At(t).Subtract(s.Center).Normalize()
}
