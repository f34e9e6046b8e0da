package app

import (
	"fmt"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goshade/pkg/shadow"
	"github.com/philipparndt/goshade/pkg/watcher"
)

// loadScene builds the polyhedron and runs a timed drawing pass
func loadScene(file string, opts Options) (*SceneData, error) {
	start := time.Now()

	p, err := shadow.Load(file, opts.shadowOptions()...)
	if err != nil {
		return nil, err
	}

	rec := shadow.NewRecorder()
	area := p.ComputeVisibleArea(rec)
	elapsed := time.Since(start)

	bbox := p.BoundingBox()
	size := bbox.Size()

	return &SceneData{
		file:       file,
		polyhedron: p,
		segments:   rec.Segments(),
		area:       area,
		elapsed:    elapsed,
		center:     toRaylib(bbox.Center()),
		size:       float32(math.Max(size.X, math.Max(size.Y, size.Z))),
	}, nil
}

// setupFileWatcher reloads the scene whenever its file changes
func (app *App) setupFileWatcher(file string) error {
	debounce := app.options.Debounce
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	fw, err := watcher.NewFileWatcher(debounce)
	if err != nil {
		return err
	}

	callback := func(changedFile string) {
		fmt.Printf("\nFile changed: %s\n", changedFile)
		app.FileWatch.needsReload = true
	}

	if err := fw.Watch([]string{file}, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}

	fw.Start()
	app.FileWatch.fileWatcher = fw
	fmt.Printf("Watching file for changes: %s\n", file)
	return nil
}

func (app *App) closeFileWatcher() {
	if app.FileWatch.fileWatcher != nil {
		app.FileWatch.fileWatcher.Close()
		app.FileWatch.fileWatcher = nil
	}
	app.FileWatch.needsReload = false
}

// reloadScene recomputes the scene in the background
func (app *App) reloadScene() {
	if app.FileWatch.isLoading {
		return
	}

	app.FileWatch.isLoading = true
	app.FileWatch.loadingStartTime = time.Now()
	fmt.Println("Reloading geometry...")

	file := app.Scene.file
	go func() {
		scene, err := loadScene(file, app.options)
		if err != nil {
			fmt.Printf("Error reloading geometry: %v\n", err)
			app.FileWatch.isLoading = false
			return
		}
		app.FileWatch.loadedScene = scene
	}()
}

// applyLoadedScene swaps in a reloaded scene, keeping the camera
func (app *App) applyLoadedScene() {
	scene := app.FileWatch.loadedScene
	if scene == nil {
		return
	}

	centerDelta := rl.Vector3Subtract(scene.center, app.Scene.center)
	app.Camera.target = rl.Vector3Add(app.Camera.target, centerDelta)
	app.Scene = *scene

	fmt.Printf("%s: area %.6f (%v)\n", scene.polyhedron.Name, scene.area, scene.elapsed)

	app.FileWatch.loadedScene = nil
	app.FileWatch.isLoading = false
}
