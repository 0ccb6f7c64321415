package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

// Canvas is a row-major RGB pixel buffer. It implements image.Image so it can
// be handed straight to an encoder once rendering is done.
type Canvas struct {
	view   geometry.ImageView
	pixels []core.Color
}

// NewCanvas allocates a canvas for the given resolution
func NewCanvas(view geometry.ImageView) *Canvas {
	return &Canvas{
		view:   view,
		pixels: make([]core.Color, max(0, view.Width)*max(0, view.Height)),
	}
}

// ImageView returns the canvas resolution
func (c *Canvas) ImageView() geometry.ImageView {
	return c.view
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int {
	return c.view.Width
}

// Height returns the canvas height in pixels
func (c *Canvas) Height() int {
	return c.view.Height
}

// Pixel returns the color at (x, y). It panics when out of range.
func (c *Canvas) Pixel(x, y int) core.Color {
	return c.pixels[c.index(x, y)]
}

// Set writes the color at (x, y). It panics when out of range.
func (c *Canvas) Set(x, y int, pixel core.Color) {
	c.pixels[c.index(x, y)] = pixel
}

func (c *Canvas) index(x, y int) int {
	if x < 0 || x >= c.view.Width || y < 0 || y >= c.view.Height {
		panic("canvas: pixel out of range")
	}
	return x + y*c.view.Width
}

// ColorModel implements image.Image
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.view.Width, c.view.Height)
}

// At implements image.Image. Points outside the canvas are transparent black.
func (c *Canvas) At(x, y int) color.Color {
	if !image.Pt(x, y).In(c.Bounds()) {
		return color.RGBA{}
	}
	p := c.pixels[x+y*c.view.Width]
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}
}

// ToRGBA copies the canvas into a new RGBA image
func (c *Canvas) ToRGBA() *image.RGBA {
	img := image.NewRGBA(c.Bounds())
	for y := 0; y < c.view.Height; y++ {
		for x := 0; x < c.view.Width; x++ {
			p := c.pixels[x+y*c.view.Width]
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}
