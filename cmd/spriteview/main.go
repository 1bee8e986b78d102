// spriteview previews the embedded character sprites: Tab switches between
// idle and running, Left/Right flip the facing direction.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Zoxc/game/assets"
)

const viewSize = 256

type viewerGame struct {
	running     bool
	facingRight bool
}

func (g *viewerGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.running = !g.running
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		g.facingRight = false
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		g.facingRight = true
	}
	return nil
}

func (g *viewerGame) Draw(screen *ebiten.Image) {
	img := assets.Guy
	label := "idle"
	if g.running {
		img = assets.GuyRunning
		label = "running"
	}

	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	x := float64(viewSize-w) / 2
	y := float64(viewSize-h) / 2

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	if g.facingRight {
		op.GeoM.Translate(x, y)
	} else {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(x+float64(w), y)
	}
	screen.DrawImage(img, op)

	ebitenutil.DebugPrint(screen, label)
}

func (g *viewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	ebiten.SetWindowSize(viewSize*2, viewSize*2)
	ebiten.SetWindowTitle("Sprite Viewer")
	if err := ebiten.RunGame(&viewerGame{facingRight: true}); err != nil {
		log.Fatal(err)
	}
}
