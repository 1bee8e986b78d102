package obj

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Zoxc/game/common"
	"github.com/Zoxc/game/tuning"
)

// Backdrop is the static two-band background: a sky gradient over the full
// frame with a ground gradient band across the bottom rows. Both gradients
// are parameterized over the full frame height; the ground band only shows
// the tail of its gradient, matching the original look.
//
// The bands are prerendered once into an offscreen image; Draw is a single
// blit. Retune rebuilds it when the palette changes.
type Backdrop struct {
	img           *ebiten.Image
	width, height int
	groundHeight  int
}

func NewBackdrop(width, height, groundHeight int, look tuning.Look) *Backdrop {
	b := &Backdrop{
		width:        width,
		height:       height,
		groundHeight: groundHeight,
	}
	b.Retune(groundHeight, look)
	return b
}

// Retune re-renders the backdrop with a new palette and ground band height.
func (b *Backdrop) Retune(groundHeight int, look tuning.Look) {
	b.groundHeight = groundHeight
	if b.img == nil {
		b.img = ebiten.NewImage(b.width, b.height)
	}

	// A 1px-wide strip per band, scaled across the frame width.
	sky := gradientStrip(b.height, look.SkyTop, look.SkyBottom)
	ground := gradientStrip(b.height, look.GroundTop, look.GroundBottom)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.width), 1)
	b.img.DrawImage(sky, op)

	bandTop := b.height - b.groundHeight
	band := ground.SubImage(image.Rect(0, bandTop, 1, b.height)).(*ebiten.Image)
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.width), 1)
	op.GeoM.Translate(0, float64(bandTop))
	b.img.DrawImage(band, op)

	sky.Deallocate()
	ground.Deallocate()
}

func (b *Backdrop) Draw(screen *ebiten.Image) {
	screen.DrawImage(b.img, nil)
}

func gradientStrip(height int, top, bottom color.Color) *ebiten.Image {
	pixels := make([]byte, 4*height)
	for y := 0; y < height; y++ {
		t := float64(y) / float64(height-1)
		c := gradientAt(top, bottom, t)
		pixels[4*y+0] = c.R
		pixels[4*y+1] = c.G
		pixels[4*y+2] = c.B
		pixels[4*y+3] = c.A
	}
	strip := ebiten.NewImage(1, height)
	strip.WritePixels(pixels)
	return strip
}

// gradientAt linearly interpolates between two colors, t in [0, 1].
func gradientAt(top, bottom color.Color, t float64) color.RGBA {
	t = common.Clamp(t, 0, 1)
	tr, tg, tb, ta := top.RGBA()
	br, bg, bb, ba := bottom.RGBA()
	lerp8 := func(a, b uint32) uint8 {
		return uint8(common.Lerp(float64(a>>8), float64(b>>8), t) + 0.5)
	}
	return color.RGBA{
		R: lerp8(tr, br),
		G: lerp8(tg, bg),
		B: lerp8(tb, bb),
		A: lerp8(ta, ba),
	}
}
