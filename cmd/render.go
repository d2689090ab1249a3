package cmd

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/renderer"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/scene"
)

// Render a still frame of a built-in scene.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := scene.Load(ctx.String("scene"))
	if err != nil {
		return err
	}

	config := samplingConfig(ctx, sc.SamplingConfig)
	if err := config.Validate(); err != nil {
		return errors.Wrap(err, "invalid render options")
	}

	// Keep the scene framing but match the requested image size
	cameraConfig := sc.CameraConfig
	cameraConfig.Width = config.Width
	cameraConfig.AspectRatio = float64(config.Width) / float64(config.Height)

	rt, err := renderer.NewRaytracer(renderer.NewCamera(cameraConfig), sc.NewPathTracer(), config, ctx.Int64("seed"))
	if err != nil {
		return err
	}

	logger.Noticef("rendering scene %q at %dx%d with %d spp", sc.Name, config.Width, config.Height, config.SamplesPerPixel)
	img, stats := rt.Render()

	out := ctx.String("out")
	if err := writePNG(out, img); err != nil {
		return err
	}
	logger.Noticef("frame written to %s", out)

	logger.Noticef("frame statistics\n%s", formatRenderStats(stats))
	return nil
}

// samplingConfig applies command line overrides to the scene recommendation.
// Zero or negative flag values keep the recommended setting.
func samplingConfig(ctx *cli.Context, recommended renderer.SamplingConfig) renderer.SamplingConfig {
	config := recommended

	if w := ctx.Int("width"); w > 0 {
		config.Width = w
	}
	if h := ctx.Int("height"); h > 0 {
		config.Height = h
	}
	if spp := ctx.Int("spp"); spp > 0 {
		config.SamplesPerPixel = spp
	}
	if depth := ctx.Int("max-depth"); depth >= 0 {
		config.MaxDepth = depth
	}
	if workers := ctx.Int("workers"); workers > 0 {
		config.NumWorkers = workers
	}
	if gamma := ctx.Float64("gamma"); gamma > 0 {
		config.Gamma = gamma
	}

	return config
}

func writePNG(filename string, img image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating %s", filename)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return errors.Wrapf(err, "encoding %s", filename)
	}
	return f.Close()
}

func formatRenderStats(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Pixels", "% of frame", "Samples", "Render time"})
	for _, ws := range stats.Workers {
		share := 0.0
		if stats.TotalPixels > 0 {
			share = 100 * float64(ws.Pixels()) / float64(stats.TotalPixels)
		}
		table.Append([]string{
			fmt.Sprintf("%d", ws.ID),
			fmt.Sprintf("%d", ws.Pixels()),
			fmt.Sprintf("%02.1f %%", share),
			fmt.Sprintf("%d", ws.Samples),
			ws.Duration.String(),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%.0f samples/s", stats.SamplesPerSecond()),
		fmt.Sprintf("%d", stats.TotalSamples),
		stats.Duration.String(),
	})

	table.Render()
	return buf.String()
}
