package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Zoxc/game/common"
)

func main() {
	debug := flag.Bool("debug", false, "show the FPS/state overlay")
	watch := flag.Bool("watch", false, "hot reload tuning/tuning.yaml from disk")
	flag.Parse()

	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("game")

	game := NewGame(*debug, *watch)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
