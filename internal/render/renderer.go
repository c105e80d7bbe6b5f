//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// WorldPainter updates a single RGBA image from the three coupled grids.
type WorldPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewWorldPainter allocates a painter for a grid of size w*h.
func NewWorldPainter(w, h int) *WorldPainter {
	wp := &WorldPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	wp.img = ebiten.NewImage(w, h)
	return wp
}

// Blit uploads the current grids into the painter image and draws it scaled.
func (wp *WorldPainter) Blit(dst *ebiten.Image, alive, trail []uint8, nutrient []float64, scale int) {
	if len(alive) != wp.w*wp.h {
		return
	}
	fillWorldRGBA(wp.buf, alive, trail, nutrient)
	wp.img.WritePixels(wp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(wp.img, op)
}

// Size returns the dimensions of the underlying image.
func (wp *WorldPainter) Size() (int, int) { return wp.w, wp.h }
