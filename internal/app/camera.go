package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goshade/pkg/geometry"
)

// toRaylib maps world coordinates to raylib's Y-up space: the world Z
// axis becomes the screen's up axis.
func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Z), Z: float32(-v.Y)}
}

// projectionAngles returns the orbit angles that look against v
func projectionAngles(v geometry.Vector3) (float32, float32) {
	d := toRaylib(v.Normalize())
	limit := math.Pi/2 - 0.01

	angleX := math.Asin(math.Max(-1, math.Min(1, float64(d.Y))))
	angleX = math.Max(-limit, math.Min(limit, angleX))
	angleY := 0.0
	if math.Hypot(float64(d.X), float64(d.Z)) > 1e-9 {
		angleY = math.Atan2(float64(d.X), float64(d.Z))
	}
	return float32(angleX), float32(angleY)
}

// setupCamera frames the current scene and looks against the projection
func (app *App) setupCamera() {
	distance := app.Scene.size * 2
	if distance == 0 {
		distance = 10
	}
	angleX, angleY := projectionAngles(app.Scene.polyhedron.Projection())

	app.Camera.defaultDist = distance
	app.Camera.defaultAngleX = angleX
	app.Camera.defaultAngleY = angleY
	app.resetCameraView()

	app.Camera.camera = rl.Camera3D{
		Target:     app.Camera.target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
	app.updateCamera()
}

// resetCameraView resets the camera to the projection view
func (app *App) resetCameraView() {
	app.Camera.distance = app.Camera.defaultDist
	app.Camera.angleX = app.Camera.defaultAngleX
	app.Camera.angleY = app.Camera.defaultAngleY
	app.Camera.target = app.Scene.center
}

// setCameraSideView looks at the scene horizontally, perpendicular to the
// default view
func (app *App) setCameraSideView() {
	app.Camera.angleX = 0
	app.Camera.angleY = app.Camera.defaultAngleY + math.Pi/2
	app.Camera.target = app.Scene.center
}

// updateCamera updates camera position based on angles
func (app *App) updateCamera() {
	ax := float64(app.Camera.angleX)
	ay := float64(app.Camera.angleY)
	x := app.Camera.distance * float32(math.Cos(ax)*math.Sin(ay))
	y := app.Camera.distance * float32(math.Sin(ax))
	z := app.Camera.distance * float32(math.Cos(ax)*math.Cos(ay))

	app.Camera.camera.Position = rl.Vector3{
		X: app.Camera.target.X + x,
		Y: app.Camera.target.Y + y,
		Z: app.Camera.target.Z + z,
	}
	app.Camera.camera.Target = app.Camera.target
}

// doPan moves the camera target with the mouse
func (app *App) doPan(delta rl.Vector2) {
	forward := rl.Vector3Normalize(rl.Vector3Subtract(app.Camera.target, app.Camera.camera.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, app.Camera.camera.Up))
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))

	panSpeed := app.Camera.distance * 0.001

	app.Camera.target = rl.Vector3Add(app.Camera.target, rl.Vector3Scale(right, -delta.X*panSpeed))
	app.Camera.target = rl.Vector3Add(app.Camera.target, rl.Vector3Scale(up, delta.Y*panSpeed))
}
