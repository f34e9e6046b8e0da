package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goshade/pkg/config"
	"github.com/philipparndt/goshade/pkg/viewer"
	"github.com/spf13/cobra"
)

var (
	renderOutput    string
	renderWidth     int
	renderHeight    int
	renderLineWidth float64
	renderNoLabel   bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render the visible segments to a PNG image",
	Long:  "Draw the visible segments as seen against the projection vector and write them to a PNG file, labelled with the visible area.",
	Args:  cobra.ExactArgs(1),
	Run:   runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output PNG file (default <name>.png)")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "Image width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "Image height in pixels")
	renderCmd.Flags().Float64Var(&renderLineWidth, "line-width", 0, "Line width in pixels")
	renderCmd.Flags().BoolVar(&renderNoLabel, "no-label", false, "Do not draw the area label")
}

func runRender(cmd *cobra.Command, args []string) {
	cfg, p := mustLoad(cmd, args[0])

	if renderWidth > 0 {
		cfg.Render.Width = renderWidth
	}
	if renderHeight > 0 {
		cfg.Render.Height = renderHeight
	}
	if renderLineWidth > 0 {
		cfg.Render.LineWidth = renderLineWidth
	}
	if renderOutput == "" {
		renderOutput = p.Name + ".png"
	}

	style, err := renderStyle(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	bbox := p.BoundingBox()
	camera := viewer.NewCamera(bbox, p.Projection())
	camera.Fit(bbox, float64(cfg.Render.Width), float64(cfg.Render.Height))

	raster := viewer.NewRaster(cfg.Render.Width, cfg.Render.Height, camera, style)
	area := p.ComputeVisibleArea(raster)
	if !renderNoLabel {
		raster.DrawLabel(fmt.Sprintf("%s  area %.6f", p.Name, area))
	}

	if err := raster.SavePNG(renderOutput); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d segments to %s (visible area %.6f)\n", raster.Segments(), renderOutput, area)
}

func renderStyle(cfg *config.Config) (viewer.Style, error) {
	style := viewer.DefaultStyle()

	background, err := config.ParseColor(cfg.Render.Background)
	if err != nil {
		return style, err
	}
	foreground, err := config.ParseColor(cfg.Render.Foreground)
	if err != nil {
		return style, err
	}

	style.Background = background
	style.Line = foreground
	style.LineWidth = cfg.Render.LineWidth
	return style, nil
}
