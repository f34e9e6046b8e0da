package main

import (
	"fmt"

	"github.com/philipparndt/goshade/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display a visibility report for a geometry file",
	Long:  "Show face and edge counts, the bounding box, how much of the edges is visible and which faces make up the visible area.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]
	_, p := mustLoad(cmd, filename)
	report := analysis.Analyze(p)

	fmt.Println("Geometry Information")
	fmt.Println("====================")
	fmt.Printf("Name: %s\n", report.Name)
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Projection: %s\n\n", analysis.FormatVector(report.Projection))

	fmt.Println("Model Statistics:")
	fmt.Printf("  Vertices: %d\n", report.VertexCount)
	fmt.Printf("  Faces: %d (%d vertical, %d degenerate)\n", report.FaceCount, report.VerticalFaces, report.DegenerateFaces)
	fmt.Printf("  Edges: %d\n\n", report.EdgeCount)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(report.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(report.BoundingBox.Max))
	fmt.Printf("  Size: %s\n\n", analysis.FormatVector(report.Dimensions))

	fmt.Println("Visibility:")
	fmt.Printf("  Hidden edges: %d\n", report.HiddenEdges)
	fmt.Printf("  Partially hidden edges: %d\n", report.PartialEdges)
	fmt.Printf("  Visible segments: %d\n", report.SegmentCount)
	if report.TotalLength > 0 {
		fmt.Printf("  Visible length: %s of %s (%.1f%%)\n",
			analysis.FormatMeasurement(report.VisibleLength, ""),
			analysis.FormatMeasurement(report.TotalLength, ""),
			100*report.VisibleLength/report.TotalLength)
	}
	fmt.Printf("  Fully visible faces: %d (%d counted)\n\n", report.VisibleFaces, report.CountedFaces)

	fmt.Printf("Visible Area: %.6f\n", report.Area)
	for _, f := range analysis.FindLargestFaces(report, report.CountedFaces) {
		fmt.Printf("  face %d: %.6f\n", f.Index+1, f.ProjectedArea)
	}
}
