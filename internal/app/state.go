package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goshade/pkg/shadow"
	"github.com/philipparndt/goshade/pkg/watcher"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3 // Current camera target (can be panned)
	defaultDist   float32
	defaultAngleX float32 // Looking against the projection vector
	defaultAngleY float32
}

// SceneData holds the result of a drawing pass over one file
type SceneData struct {
	file       string
	polyhedron *shadow.Polyhedron
	segments   []shadow.Segment
	area       float64
	elapsed    time.Duration
	center     rl.Vector3
	size       float32 // Max dimension of the bounding box
}

// ViewSettings holds display settings
type ViewSettings struct {
	showHelp       bool
	showProjection bool
	lineColor      rl.Color
	background     rl.Color
}

// InteractionState holds mouse state
type InteractionState struct {
	isPanning bool
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	fileWatcher      *watcher.FileWatcher
	needsReload      bool
	isLoading        bool
	loadingStartTime time.Time
	loadedScene      *SceneData
}
