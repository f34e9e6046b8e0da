package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goshade/internal/app"
	"github.com/spf13/cobra"
)

var viewWatch bool

var viewCmd = &cobra.Command{
	Use:   "view [file...]",
	Short: "Show the visible segments in an interactive window",
	Long:  "Open a window with the visible segments of each file in turn. Press Enter for the next file and Escape to quit.",
	Args:  cobra.MinimumNArgs(1),
	Run:   runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().BoolVarP(&viewWatch, "watch", "w", false, "Reload when the file changes")
}

func runView(cmd *cobra.Command, args []string) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	projection, err := cfg.ProjectionVector()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = app.Run(args, app.Options{
		Projection: projection,
		Workers:    cfg.Workers,
		Watch:      viewWatch,
		Debounce:   cfg.Debounce,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
