package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goshade/pkg/geometry"
	"github.com/philipparndt/goshade/pkg/shadow"
)

// Options configures the viewer window
type Options struct {
	Projection geometry.Vector3
	Workers    int
	Watch      bool
	Debounce   time.Duration
}

func (o Options) shadowOptions() []shadow.Option {
	opts := []shadow.Option{shadow.WithWorkers(o.Workers)}
	if !o.Projection.IsZero() {
		opts = append(opts, shadow.WithProjection(o.Projection))
	}
	return opts
}

type App struct {
	Camera      CameraState
	Scene       SceneData
	View        ViewSettings
	Interaction InteractionState
	FileWatch   FileWatchState

	options Options
	files   []string
	current int
	next    bool
	quit    bool
}

// Run opens a window showing the visible segments of each file in turn.
// Enter advances to the next file, Escape closes the window.
func Run(files []string, opts Options) error {
	if len(files) == 0 {
		return fmt.Errorf("no geometry files given")
	}

	app := &App{
		options: opts,
		files:   files,
		View: ViewSettings{
			showHelp:       true,
			showProjection: true,
			lineColor:      rl.NewColor(230, 230, 230, 255),
			background:     rl.NewColor(15, 18, 25, 255),
		},
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1200, 900, "goshade")
	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyNull)
	defer rl.CloseWindow()

	for app.current < len(app.files) && !app.quit {
		file := app.files[app.current]
		scene, err := loadScene(file, opts)
		if err != nil {
			fmt.Printf("Error loading %s: %v\n", file, err)
			app.current++
			continue
		}
		app.Scene = *scene
		fmt.Printf("%s: area %.6f (%v)\n", scene.polyhedron.Name, scene.area, scene.elapsed)

		app.setupCamera()
		if opts.Watch {
			if err := app.setupFileWatcher(file); err != nil {
				fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
			}
		}

		app.showScene()
		app.closeFileWatcher()
		app.current++
	}

	return nil
}

// showScene runs the render loop until the user moves on
func (app *App) showScene() {
	app.next = false
	for !app.next && !app.quit {
		if rl.WindowShouldClose() {
			app.quit = true
			break
		}

		if app.FileWatch.needsReload && !app.FileWatch.isLoading {
			app.FileWatch.needsReload = false
			app.reloadScene()
		}
		app.applyLoadedScene()

		app.handleInput()
		app.updateCamera()

		rl.BeginDrawing()
		rl.ClearBackground(app.View.background)

		rl.BeginMode3D(app.Camera.camera)
		app.drawSegments()
		if app.View.showProjection {
			app.drawProjectionArrow()
		}
		rl.EndMode3D()

		app.drawUI()
		rl.EndDrawing()
	}
}
