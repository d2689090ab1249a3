package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/liliilli/SH-RayTracer-sub000/cmd"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	sceneFlag := cli.StringFlag{
		Name:  "scene, s",
		Value: "default",
		Usage: "built-in scene to use (see list-scenes)",
	}

	app := cli.NewApp()
	app.Name = "sh-raytracer"
	app.Usage = "render built-in scenes with a recursive ray tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Load a built-in scene, trace every pixel on a fixed pool of workers and write
the result as a PNG image. Size and sampling flags override the settings the
scene recommends.`,
			Flags: []cli.Flag{
				sceneFlag,
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width (0 = scene default)",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height (0 = scene default)",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (0 = scene default)",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Value: -1,
					Usage: "maximum ray depth (-1 = scene default)",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render workers (0 = one per CPU)",
				},
				cli.Float64Flag{
					Name:  "gamma",
					Usage: "display gamma (0 = scene default)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "random seed; equal seeds and worker counts give equal images",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "list-scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:        "tree-stats",
			Usage:       "display K-D tree statistics for a scene",
			Description: `Build a scene and print the shape of its primitive index and mesh face trees.`,
			Flags:       []cli.Flag{sceneFlag},
			Action:      cmd.TreeStats,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
