package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goshade/version"
)

// drawUI draws the overlay with the result of the current pass
func (app *App) drawUI() {
	y := int32(10)
	lineHeight := int32(22)
	textColor := rl.NewColor(220, 220, 220, 255)

	title := fmt.Sprintf("%s (%d/%d)", app.Scene.polyhedron.Name, app.current+1, len(app.files))
	rl.DrawText(title, 10, y, 20, rl.White)
	y += lineHeight + 4

	lines := []string{
		fmt.Sprintf("Visible area: %.6f", app.Scene.area),
		fmt.Sprintf("Segments: %d", len(app.Scene.segments)),
		fmt.Sprintf("Faces: %d", len(app.Scene.polyhedron.Faces())),
		fmt.Sprintf("Computed in %v", app.Scene.elapsed.Round(time.Microsecond)),
	}
	for _, line := range lines {
		rl.DrawText(line, 10, y, 16, textColor)
		y += lineHeight
	}

	for _, w := range app.Scene.polyhedron.Warnings() {
		rl.DrawText("Warning: "+w.String(), 10, y, 14, rl.Orange)
		y += lineHeight
	}

	if app.FileWatch.isLoading {
		elapsed := time.Since(app.FileWatch.loadingStartTime).Seconds()
		rl.DrawText(fmt.Sprintf("Reloading... (%.1fs)", elapsed), 10, y, 16, rl.Yellow)
	}

	screenHeight := int32(rl.GetScreenHeight())
	if app.View.showHelp {
		help := "Drag: rotate  Shift+Drag: pan  Wheel: zoom  R: reset  S: side  V: projection  H: help  Enter: next  Esc: quit"
		rl.DrawText(help, 10, screenHeight-26, 14, rl.Gray)
	}

	versionText := "goshade " + version.GetVersion()
	width := rl.MeasureText(versionText, 12)
	rl.DrawText(versionText, int32(rl.GetScreenWidth())-width-10, screenHeight-20, 12, rl.DarkGray)
}
