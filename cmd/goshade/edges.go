package main

import (
	"fmt"

	"github.com/philipparndt/goshade/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	edgesHidden  bool
	edgesPartial bool
)

var edgesCmd = &cobra.Command{
	Use:   "edges [file]",
	Short: "List the visible segments of a geometry file",
	Long:  "Print every visible segment in face, edge and gap order, or the edges that are hidden completely or in parts.",
	Args:  cobra.ExactArgs(1),
	Run:   runEdges,
}

func init() {
	rootCmd.AddCommand(edgesCmd)

	edgesCmd.Flags().BoolVar(&edgesHidden, "hidden", false, "List fully hidden edges")
	edgesCmd.Flags().BoolVar(&edgesPartial, "partial", false, "List partially hidden edges")
}

func runEdges(cmd *cobra.Command, args []string) {
	_, p := mustLoad(cmd, args[0])
	report := analysis.Analyze(p)

	if edgesHidden || edgesPartial {
		var edges []analysis.EdgeInfo
		var title string
		if edgesHidden {
			edges = analysis.FindHiddenEdges(report)
			title = fmt.Sprintf("Hidden Edges (%d of %d)", len(edges), report.EdgeCount)
		} else {
			edges = analysis.FindPartialEdges(report)
			title = fmt.Sprintf("Partially Hidden Edges (%d of %d)", len(edges), report.EdgeCount)
		}

		fmt.Println(title)
		fmt.Println("====================")
		for _, e := range edges {
			fmt.Println(analysis.FormatEdge(e))
		}
		return
	}

	segments := p.VisibleSegments()
	fmt.Printf("Visible Segments (%d)\n", len(segments))
	fmt.Println("====================")
	for i, s := range segments {
		fmt.Printf("%4d. %s -> %s  length %s\n", i+1,
			analysis.FormatVector(s.Start), analysis.FormatVector(s.End),
			analysis.FormatMeasurement(s.Length(), ""))
	}
}
