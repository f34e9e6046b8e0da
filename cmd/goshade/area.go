package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/philipparndt/goshade/pkg/config"
	"github.com/philipparndt/goshade/pkg/shadow"
	"github.com/philipparndt/goshade/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	areaPause bool
	areaWatch bool
)

var areaCmd = &cobra.Command{
	Use:   "area [file...]",
	Short: "Compute the visible projected area of geometry files",
	Long:  "For each file, compute the shadows of all faces and print the projected area of the fully visible faces together with the time it took.",
	Args:  cobra.MinimumNArgs(1),
	Run:   runArea,
}

func init() {
	rootCmd.AddCommand(areaCmd)

	areaCmd.Flags().BoolVarP(&areaPause, "pause", "p", false, "Wait for Return between files")
	areaCmd.Flags().BoolVarP(&areaWatch, "watch", "w", false, "Recompute when a file changes")
}

func runArea(cmd *cobra.Command, args []string) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	failed := false
	stdin := bufio.NewReader(os.Stdin)
	for i, filename := range args {
		if err := printArea(cfg, filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", filename, err)
			failed = true
		}

		if areaPause && i < len(args)-1 {
			fmt.Print("Press Return to continue...")
			if _, err := stdin.ReadString('\n'); err != nil {
				break
			}
		}
	}

	if areaWatch {
		if err := watchArea(cfg, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if failed {
		os.Exit(1)
	}
}

// printArea loads a file, runs a pass and prints the result
func printArea(cfg *config.Config, filename string) error {
	opts, err := shadowOptions(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	p, err := shadow.Load(filename, opts...)
	if err != nil {
		return err
	}
	printWarnings(p)

	area := p.ComputeVisibleArea(nil)
	elapsed := time.Since(start)

	fmt.Printf("%s: visible area %.6f (computed in %v)\n", p.Name, area, elapsed.Round(time.Microsecond))
	return nil
}

// watchArea recomputes files as they change until interrupted
func watchArea(cfg *config.Config, files []string) error {
	fw, err := watcher.NewFileWatcher(cfg.Debounce)
	if err != nil {
		return err
	}
	defer fw.Close()

	fw.OnError = func(err error) {
		fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
	}

	err = fw.Watch(files, func(changed string) {
		if err := printArea(cfg, changed); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", changed, err)
		}
	})
	if err != nil {
		return err
	}
	fw.Start()

	fmt.Printf("Watching %d file(s) for changes, press Ctrl+C to stop\n", len(files))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	<-ctx.Done()
	return nil
}
