package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goshade/pkg/config"
	"github.com/philipparndt/goshade/pkg/shadow"
	"github.com/philipparndt/goshade/version"
	"github.com/spf13/cobra"
)

var (
	configFile string
	projection string
	workers    int
)

var rootCmd = &cobra.Command{
	Use:   "goshade",
	Short: "Compute the self-occlusion of polyhedra",
	Long: `goshade projects a polyhedron along a vector, works out which parts of
its edges are hidden by its own faces and reports the projected area of
the faces that stay fully visible.`,
	Version: version.GetFullVersion(),
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (default "+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().StringVar(&projection, "projection", "", "Projection vector as x,y,z")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "Number of faces shadowed in parallel (0 or 1 is sequential)")
}

// loadSettings reads the config file and applies the flags given on the
// command line
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("projection") {
		if err := cfg.SetProjection(projection); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("workers") {
		if workers < 0 {
			return nil, fmt.Errorf("workers must not be negative, got %d", workers)
		}
		cfg.Workers = workers
	}
	return cfg, nil
}

func shadowOptions(cfg *config.Config) ([]shadow.Option, error) {
	v, err := cfg.ProjectionVector()
	if err != nil {
		return nil, err
	}
	return []shadow.Option{shadow.WithProjection(v), shadow.WithWorkers(cfg.Workers)}, nil
}

// mustLoad loads settings and a polyhedron or exits
func mustLoad(cmd *cobra.Command, filename string) (*config.Config, *shadow.Polyhedron) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts, err := shadowOptions(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p, err := shadow.Load(filename, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading geometry: %v\n", err)
		os.Exit(1)
	}
	printWarnings(p)
	return cfg, p
}

func printWarnings(p *shadow.Polyhedron) {
	for _, w := range p.Warnings() {
		fmt.Fprintf(os.Stderr, "Warning: %s: %s\n", p.Name, w)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
