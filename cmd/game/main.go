package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"gorillas/internal/game"
	"gorillas/internal/persistence"
)

func main() {
	scores := os.Getenv("GORILLAS_SCORES")
	if scores == "" {
		scores = "scores.json"
	}
	store := persistence.NewStore(scores)
	log.Info("starting", "scores", scores)

	ebiten.SetWindowTitle("Gorilla 2025")
	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	if err := ebiten.RunGame(game.New(store)); err != nil {
		log.Fatal(err)
	}
}
