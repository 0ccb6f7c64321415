package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	SpherePixels     int           // Pixels whose nearest hit is a sphere
	FacetPixels      int           // Pixels whose nearest hit is a plane facet
	BackgroundPixels int           // Pixels that missed every primitive
	TilesRendered    int           // Number of tiles completed
	Elapsed          time.Duration // Wall time of the whole render
}

// Add accumulates the per-pixel counters of other into s
func (s *RenderStats) Add(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.SpherePixels += other.SpherePixels
	s.FacetPixels += other.FacetPixels
	s.BackgroundPixels += other.BackgroundPixels
	s.TilesRendered += other.TilesRendered
}

// HitPixels returns the number of pixels that hit any primitive
func (s RenderStats) HitPixels() int {
	return s.SpherePixels + s.FacetPixels
}

// record updates the counters for a single pixel
func (s *RenderStats) record(kind HitKind) {
	s.TotalPixels++
	switch kind {
	case HitSphere:
		s.SpherePixels++
	case HitFacet:
		s.FacetPixels++
	default:
		s.BackgroundPixels++
	}
}
