package core

import (
	"fmt"
	"math"
)

// channelScale maps [0,1] onto the 8-bit range; 1.0 lands on 255 after truncation
const channelScale = 255.999

// Color is a linear RGB color with channels nominally in [0, 1]
type Color struct {
	R, G, B float64
}

// Named colors
var (
	Red     = Color{R: 1, G: 0, B: 0}
	Green   = Color{R: 0, G: 1, B: 0}
	Blue    = Color{R: 0, G: 0, B: 1}
	Black   = Color{R: 0, G: 0, B: 0}
	White   = Color{R: 1, G: 1, B: 1}
	Gray    = Color{R: 0.5, G: 0.5, B: 0.5}
	SkyBlue = Color{R: 0.5, G: 0.7, B: 1.0}
)

// NewColor creates a color from channels already in display range
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromRGB8 creates a color from 0-255 channel values.
// Values above 255 are treated as 255.
func ColorFromRGB8(r, g, b float64) Color {
	return Color{
		R: min(r, 255) / 255,
		G: min(g, 255) / 255,
		B: min(b, 255) / 255,
	}
}

// ColorFromNormal maps a unit normal with components in [-1,1] to a color in [0,1]
func ColorFromNormal(n Vec3) Color {
	return NewColor(n.X+1, n.Y+1, n.Z+1).Multiply(0.5)
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// ToRGB8 converts the color to 8-bit channels
func (c Color) ToRGB8() (r, g, b uint8) {
	return toChannel(c.R), toChannel(c.G), toChannel(c.B)
}

func (c Color) String() string {
	r, g, b := c.ToRGB8()
	return fmt.Sprintf("%d %d %d", r, g, b)
}

// toChannel clamps high at 255 and low at 0; NaN maps to 0
func toChannel(v float64) uint8 {
	scaled := v * channelScale
	if math.IsNaN(scaled) || scaled <= 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
