package obj

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Zoxc/game/common"
)

// Sprite pairs an image with its draw-anchor offset. The offset is added to
// the owner's world position to find the draw origin; NewSprite anchors at
// bottom-center, so the character's position is where its feet touch.
type Sprite struct {
	Image  *ebiten.Image
	Offset common.Vec2
}

func NewSprite(img *ebiten.Image) *Sprite {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	return &Sprite{
		Image:  img,
		Offset: common.Vec2{X: -float64(w) / 2, Y: float64(h)},
	}
}

func (s *Sprite) Width() float64 {
	return float64(s.Image.Bounds().Dx())
}

func (s *Sprite) Height() float64 {
	return float64(s.Image.Bounds().Dy())
}
