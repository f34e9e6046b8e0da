package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawSegments draws the visible segments of the current scene
func (app *App) drawSegments() {
	for _, s := range app.Scene.segments {
		rl.DrawLine3D(toRaylib(s.Start), toRaylib(s.End), app.View.lineColor)
	}
}

// drawProjectionArrow draws the projection vector from the scene center
// towards the viewer
func (app *App) drawProjectionArrow() {
	color := rl.NewColor(255, 180, 0, 255)
	length := app.Scene.size * 0.75

	direction := toRaylib(app.Scene.polyhedron.Projection())
	tip := rl.Vector3Add(app.Scene.center, rl.Vector3Scale(direction, length))

	rl.DrawLine3D(app.Scene.center, tip, color)
	rl.DrawSphere(tip, length*0.02, color)
}
