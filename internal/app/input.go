package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes user input
func (app *App) handleInput() {
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		app.next = true
	}
	if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyQ) {
		app.quit = true
	}

	if rl.IsKeyPressed(rl.KeyHome) || rl.IsKeyPressed(rl.KeyR) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyS) {
		app.setCameraSideView()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHelp = !app.View.showHelp
	}
	if rl.IsKeyPressed(rl.KeyV) {
		app.View.showProjection = !app.View.showProjection
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.isPanning = rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	}

	// Pan with Shift + drag or the middle mouse button, orbit otherwise
	if (rl.IsMouseButtonDown(rl.MouseLeftButton) && app.Interaction.isPanning) || rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.doPan(delta)
		}
	} else if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		app.Camera.angleY -= delta.X * 0.01
		app.Camera.angleX += delta.Y * 0.01

		limit := float32(math.Pi/2 - 0.01)
		if app.Camera.angleX > limit {
			app.Camera.angleX = limit
		}
		if app.Camera.angleX < -limit {
			app.Camera.angleX = -limit
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.Camera.distance *= 1 - wheel*0.1
		if app.Camera.distance < app.Scene.size*0.05 {
			app.Camera.distance = app.Scene.size * 0.05
		}
	}
}
