package renderer

import "time"

// WorkerStats describes the share of a frame rendered by one worker
type WorkerStats struct {
	ID         int
	FirstPixel int // Inclusive
	LastPixel  int // Exclusive
	Samples    int
	Duration   time.Duration
}

// Pixels returns the number of pixels assigned to the worker
func (ws WorkerStats) Pixels() int {
	return ws.LastPixel - ws.FirstPixel
}

// RenderStats contains statistics about a rendered frame
type RenderStats struct {
	Width           int
	Height          int
	TotalPixels     int
	SamplesPerPixel int
	TotalSamples    int
	MaxDepth        int
	Workers         []WorkerStats
	Duration        time.Duration
}

// SamplesPerSecond returns the sample throughput of the frame
func (rs RenderStats) SamplesPerSecond() float64 {
	if rs.Duration <= 0 {
		return 0
	}
	return float64(rs.TotalSamples) / rs.Duration.Seconds()
}
