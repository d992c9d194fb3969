package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/spin-disc/internal/config"
	"github.com/iburimskiy/spin-disc/internal/game"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Spin Disc - click to spin, Esc/Q: Quit")

	g := game.New()
	err := ebiten.RunGame(g)
	g.Shutdown()

	if err != nil && !errors.Is(err, ebiten.Termination) {
		_ = zenity.Error(err.Error(), zenity.Title("Spin Disc"))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
