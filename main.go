package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()
	g := newGame()
	defer g.solver.Close()

	ebiten.SetWindowSize(screenW*windowScale, screenH*windowScale)
	ebiten.SetWindowTitle("GraviSwift")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("running game: %v", err)
	}
}
