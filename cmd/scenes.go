package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/kdtree"
	"github.com/liliilli/SH-RayTracer-sub000/pkg/scene"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, info := range scene.List() {
		table.Append([]string{info.Name, info.Description})
	}
	table.Render()

	_, err := fmt.Fprint(ctx.App.Writer, buf.String())
	return err
}

// Display the K-D tree statistics of a scene index and its meshes.
func TreeStats(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := scene.Load(ctx.String("scene"))
	if err != nil {
		return err
	}

	rows := []treeStatsRow{{Name: "scene index", Stats: sc.Index.Stats()}}
	for _, handle := range sc.Meshes.Handles() {
		mesh, err := sc.Meshes.Resolve(handle)
		if err != nil {
			return err
		}
		rows = append(rows, treeStatsRow{Name: "mesh " + handle, Stats: mesh.Stats()})
	}

	_, err = fmt.Fprint(ctx.App.Writer, formatTreeStats(rows))
	return err
}

type treeStatsRow struct {
	Name  string
	Stats kdtree.Stats
}

func formatTreeStats(rows []treeStatsRow) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tree", "Items", "Nodes", "Leaves", "Max depth", "Avg leaf depth", "Leaf refs", "Max leaf items"})
	for _, row := range rows {
		s := row.Stats
		table.Append([]string{
			row.Name,
			fmt.Sprintf("%d", s.DistinctItems),
			fmt.Sprintf("%d", s.TotalNodes),
			fmt.Sprintf("%d", s.LeafNodes),
			fmt.Sprintf("%d", s.MaxDepth),
			fmt.Sprintf("%.2f", s.AvgLeafDepth),
			fmt.Sprintf("%d", s.TotalItems),
			fmt.Sprintf("%d", s.MaxLeafItems),
		})
	}
	table.Render()
	return buf.String()
}
