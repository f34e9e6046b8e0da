package main

import (
	"fmt"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/goshade/pkg/analysis"
	"github.com/philipparndt/goshade/pkg/config"
	"github.com/philipparndt/goshade/pkg/shadow"
	"github.com/philipparndt/goshade/pkg/viewer"
)

type App struct {
	window     fyne.Window
	cfg        *config.Config
	polyhedron *shadow.Polyhedron
	view       *viewer.SegmentView
	infoLabel  *widget.Label
	projection *widget.Entry
}

func main() {
	a := app.New()
	w := a.NewWindow("goshade - Polyhedron Visibility")

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		cfg = config.Default()
	}

	appInstance := &App{
		window: w,
		cfg:    cfg,
	}

	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to goshade")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Click 'Open Geometry File' to load a polyhedron")

	openButton := widget.NewButton("Open Geometry File", func() {
		a.showFileDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)

	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	projection, err := a.cfg.ProjectionVector()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	p, err := shadow.Load(filename,
		shadow.WithProjection(projection),
		shadow.WithWorkers(a.cfg.Workers))
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load geometry file: %w", err), a.window)
		return
	}

	a.polyhedron = p
	a.setupMainUI(filename)
}

func (a *App) setupMainUI(filename string) {
	a.view = viewer.NewSegmentView(a.polyhedron.BoundingBox(), a.polyhedron.Projection())
	a.infoLabel = widget.NewLabel("")

	a.projection = widget.NewEntry()
	a.projection.SetText(strings.Trim(fmt.Sprint(a.cfg.Projection), "[]"))
	a.projection.SetPlaceHolder("x,y,z")

	applyButton := widget.NewButton("Apply Projection", func() {
		text := strings.Join(strings.Fields(strings.ReplaceAll(a.projection.Text, ",", " ")), ",")
		if err := a.cfg.SetProjection(text); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.loadFile(filename)
	})

	openButton := widget.NewButton("Open File", func() {
		a.showFileDialog()
	})

	resetButton := widget.NewButton("Reset View", func() {
		a.view.ResetView()
	})

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag to rotate the view\n" +
			"• Scroll to zoom in/out\n" +
			"• The initial view looks against the projection vector",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Geometry Information:"),
		widget.NewSeparator(),
		a.infoLabel,
		widget.NewSeparator(),
		widget.NewLabel("Projection vector:"),
		a.projection,
		applyButton,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
		resetButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(nil, nil, nil, infoScroll, a.view)
	a.window.SetContent(content)

	a.recompute()
}

// recompute runs a drawing pass into the view and updates the info panel
func (a *App) recompute() {
	a.polyhedron.ComputeVisibleArea(a.view)
	report := analysis.Analyze(a.polyhedron)

	info := fmt.Sprintf(
		"Name: %s\nVertices: %d\nFaces: %d\nEdges: %d\n\nVisible segments: %d\nHidden edges: %d\nPartial edges: %d\n\nVisible area: %.6f",
		report.Name,
		report.VertexCount,
		report.FaceCount,
		report.EdgeCount,
		report.SegmentCount,
		report.HiddenEdges,
		report.PartialEdges,
		report.Area,
	)
	for _, w := range a.polyhedron.Warnings() {
		info += "\nWarning: " + w.String()
	}
	a.infoLabel.SetText(info)

	a.view.Render(800, 600)
}
