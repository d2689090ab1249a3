package cmd

import (
	"flag"
	"strings"
	"testing"
	"time"

	"github.com/urfave/cli"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/kdtree"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/renderer"
)

func newTestContext(t *testing.T, args ...string) *cli.Context {
	set := flag.NewFlagSet("render", flag.ContinueOnError)
	set.Int("width", 0, "")
	set.Int("height", 0, "")
	set.Int("spp", 0, "")
	set.Int("max-depth", -1, "")
	set.Int("workers", 0, "")
	set.Float64("gamma", 0, "")
	if err := set.Parse(args); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}
	return cli.NewContext(nil, set, nil)
}

func TestSamplingConfig_KeepsRecommendation(t *testing.T) {
	recommended := renderer.DefaultSamplingConfig()
	got := samplingConfig(newTestContext(t), recommended)
	if got != recommended {
		t.Errorf("Expected %+v, got %+v", recommended, got)
	}
}

func TestSamplingConfig_Overrides(t *testing.T) {
	ctx := newTestContext(t,
		"-width", "64", "-height", "32", "-spp", "4",
		"-max-depth", "0", "-workers", "2", "-gamma", "2.2")
	got := samplingConfig(ctx, renderer.DefaultSamplingConfig())

	expected := renderer.SamplingConfig{
		Width:           64,
		Height:          32,
		SamplesPerPixel: 4,
		MaxDepth:        0,
		NumWorkers:      2,
		Gamma:           2.2,
	}
	if got != expected {
		t.Errorf("Expected %+v, got %+v", expected, got)
	}
}

func TestFormatRenderStats(t *testing.T) {
	stats := renderer.RenderStats{
		Width:           4,
		Height:          2,
		TotalPixels:     8,
		SamplesPerPixel: 2,
		TotalSamples:    16,
		MaxDepth:        5,
		Workers: []renderer.WorkerStats{
			{ID: 0, FirstPixel: 0, LastPixel: 6, Samples: 12, Duration: time.Millisecond},
			{ID: 1, FirstPixel: 6, LastPixel: 8, Samples: 4, Duration: time.Millisecond},
		},
		Duration: 2 * time.Second,
	}

	output := formatRenderStats(stats)
	for _, want := range []string{"Worker", "Render time", "75.0 %", "25.0 %", "TOTAL", "8 samples/s", "2s"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in table:\n%s", want, output)
		}
	}
}

func TestFormatTreeStats(t *testing.T) {
	rows := []treeStatsRow{
		{Name: "scene index", Stats: kdtree.Stats{TotalNodes: 7, LeafNodes: 4, MaxDepth: 2, AvgLeafDepth: 2, TotalItems: 9, MaxLeafItems: 3, DistinctItems: 8}},
		{Name: "mesh ico", Stats: kdtree.Stats{EmptyTree: true}},
	}

	output := formatTreeStats(rows)
	for _, want := range []string{"scene index", "mesh ico", "Max leaf items", "2.00"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in table:\n%s", want, output)
		}
	}
	if lines := strings.Count(output, "\n"); lines < 5 {
		t.Errorf("Expected header, separator and two rows, got:\n%s", output)
	}
}
