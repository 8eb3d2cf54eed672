package renderer

import "time"

// RenderStats summarizes the work done by a render
type RenderStats struct {
	TotalPixels  int
	TotalSamples int
	Workers      int
	Elapsed      time.Duration
}

// SamplesPerSecond returns the sampling throughput of the render
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}
