package renderer

// PixelKind records which branch of the render loop produced a pixel
type PixelKind int

const (
	PixelBackground PixelKind = iota // Ray missed every shape
	PixelHit                         // Shaded from the surface normal
	PixelMarker                      // Debug marker at the sphere center
)

func (k PixelKind) String() string {
	switch k {
	case PixelHit:
		return "hit"
	case PixelMarker:
		return "marker"
	default:
		return "background"
	}
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int // Total number of pixels rendered
	HitPixels        int // Pixels shaded from a surface normal
	BackgroundPixels int // Pixels filled with the background gradient
	MarkerPixels     int // Pixels replaced by the debug marker
}

// AddPixel counts one rendered pixel of the given kind
func (s *RenderStats) AddPixel(kind PixelKind) {
	s.TotalPixels++
	switch kind {
	case PixelHit:
		s.HitPixels++
	case PixelMarker:
		s.MarkerPixels++
	default:
		s.BackgroundPixels++
	}
}

// HitRatio returns the fraction of pixels shaded from a surface
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}
