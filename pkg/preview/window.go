// Package preview shows a render in a desktop window while tiles complete.
package preview

import (
	"image"
	"image/draw"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Window mirrors finished tiles of a render into an on-screen image. It
// implements ebiten.Game.
type Window struct {
	mu     sync.Mutex
	frame  *image.RGBA
	dirty  bool
	screen *ebiten.Image
	scale  int
}

// NewWindow creates a preview for an image of the given size. scale enlarges
// the window for small renders.
func NewWindow(width, height, scale int) *Window {
	if scale < 1 {
		scale = 1
	}
	return &Window{
		frame: image.NewRGBA(image.Rect(0, 0, width, height)),
		scale: scale,
	}
}

// CopyTile copies a finished region of src into the preview. Call it only for
// regions no worker is still writing.
func (w *Window) CopyTile(src image.Image, bounds image.Rectangle) {
	w.mu.Lock()
	defer w.mu.Unlock()
	draw.Draw(w.frame, bounds.Intersect(w.frame.Bounds()), src, bounds.Min, draw.Src)
	w.dirty = true
}

// Finish marks the render as complete in the window title
func (w *Window) Finish() {
	ebiten.SetWindowTitle("Phong Raytracer (done)")
}

// Frame returns a copy of the current preview image
func (w *Window) Frame() *image.RGBA {
	w.mu.Lock()
	defer w.mu.Unlock()
	frame := image.NewRGBA(w.frame.Bounds())
	copy(frame.Pix, w.frame.Pix)
	return frame
}

// Run opens the window and blocks until it is closed. It must be called from
// the main goroutine.
func (w *Window) Run() error {
	bounds := w.frame.Bounds()
	ebiten.SetWindowTitle("Phong Raytracer")
	ebiten.SetWindowSize(bounds.Dx()*w.scale, bounds.Dy()*w.scale)
	ebiten.SetTPS(30)
	return ebiten.RunGame(w)
}

func (w *Window) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	if w.screen == nil {
		b := w.frame.Bounds()
		w.screen = ebiten.NewImage(b.Dx(), b.Dy())
		w.dirty = true
	}
	if w.dirty {
		w.screen.WritePixels(w.frame.Pix)
		w.dirty = false
	}
	w.mu.Unlock()

	screen.DrawImage(w.screen, nil)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := w.frame.Bounds()
	return b.Dx(), b.Dy()
}
