package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/philipparndt/goshade/pkg/geometry"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Style controls how segments are rasterized
type Style struct {
	Background color.RGBA
	Line       color.RGBA
	Text       color.RGBA
	LineWidth  float64
}

// DefaultStyle returns dark lines on a white background
func DefaultStyle() Style {
	return Style{
		Background: color.RGBA{255, 255, 255, 255},
		Line:       color.RGBA{20, 20, 20, 255},
		Text:       color.RGBA{200, 0, 0, 255},
		LineWidth:  1,
	}
}

// Raster draws visible segments into an in-memory image. It implements
// the drawer used by the shadow computation.
type Raster struct {
	Camera *Camera
	Style  Style

	img        *image.RGBA
	rasterizer *vector.Rasterizer
	segments   int
}

// NewRaster creates a raster of the given size
func NewRaster(width, height int, camera *Camera, style Style) *Raster {
	r := &Raster{
		Camera:     camera,
		Style:      style,
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		rasterizer: vector.NewRasterizer(width, height),
	}
	r.Clear()
	return r
}

// Clear fills the image with the background color
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.Style.Background), image.Point{}, draw.Src)
	r.segments = 0
}

// DrawSegment projects a segment through the camera and draws it
func (r *Raster) DrawSegment(p, q geometry.Vector3) {
	bounds := r.img.Bounds()
	width, height := float64(bounds.Dx()), float64(bounds.Dy())

	x1, y1, _ := r.Camera.Project(p, width, height)
	x2, y2, _ := r.Camera.Project(q, width, height)
	r.segments++

	if r.Style.LineWidth <= 1 {
		drawLine(r.img, round(x1), round(y1), round(x2), round(y2), r.Style.Line)
		return
	}
	r.strokeLine(x1, y1, x2, y2)
}

// strokeLine fills the quad covering a line of the style's width
func (r *Raster) strokeLine(x1, y1, x2, y2 float64) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	half := r.Style.LineWidth / 2
	nx, ny := -dy/length*half, dx/length*half

	bounds := r.img.Bounds()
	r.rasterizer.Reset(bounds.Dx(), bounds.Dy())
	r.rasterizer.MoveTo(float32(x1+nx), float32(y1+ny))
	r.rasterizer.LineTo(float32(x2+nx), float32(y2+ny))
	r.rasterizer.LineTo(float32(x2-nx), float32(y2-ny))
	r.rasterizer.LineTo(float32(x1-nx), float32(y1-ny))
	r.rasterizer.ClosePath()
	r.rasterizer.Draw(r.img, bounds, image.NewUniform(r.Style.Line), image.Point{})
}

// DrawLabel writes a line of text into the top left corner
func (r *Raster) DrawLabel(text string) {
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(r.Style.Text),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(8, 8+basicfont.Face7x13.Ascent),
	}
	d.DrawString(text)
}

// Image returns the rendered image
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Segments returns the number of segments drawn since the last Clear
func (r *Raster) Segments() int {
	return r.segments
}

// SavePNG writes the image to a PNG file
func (r *Raster) SavePNG(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := png.Encode(file, r.img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return file.Close()
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx + dy
	for {
		if (image.Point{X: x1, Y: y1}).In(bounds) {
			img.SetRGBA(x1, y1, col)
		}
		if x1 == x2 && y1 == y2 {
			return
		}

		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
