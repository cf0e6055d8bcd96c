package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Night-Shift/internal/app"
	"github.com/Garsondee/Night-Shift/internal/config"
	"github.com/Garsondee/Night-Shift/internal/game"
	"github.com/Garsondee/Night-Shift/internal/logging"
)

func main() {
	envPath := flag.String("env", ".env", "optional dotenv file with NIGHTSHIFT_* settings")
	flag.Parse()

	settings, err := config.Load(*envPath)
	if err != nil {
		logging.Fatal("failed to load config", err, logging.Fields{"path": *envPath})
	}
	logging.Info("starting", logging.Fields{
		"targets":    settings.TargetCount,
		"seconds":    settings.RoundSeconds,
		"difficulty": settings.Difficulty.String(),
		"tps":        settings.TPS,
	})

	ebiten.SetWindowTitle("Night Shift")
	ebiten.SetWindowSize(1280, 800)
	ebiten.SetTPS(settings.TPS)
	if err := ebiten.RunGame(game.New(app.New(settings))); err != nil {
		logging.Fatal("game exited", err, nil)
	}
}
