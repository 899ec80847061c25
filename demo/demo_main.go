// Command demo is a windowed host for isoworld, using ebiten purely as a
// frame blitter: every tick it copies the renderer's RGBA canvas into an
// ebiten image and draws it, the same UpdateFrame/Draw split IntuitionEngine
// uses for its own ebiten video backend.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/quevivasbien/isometric-world"
	"github.com/quevivasbien/isometric-world/config"
	"github.com/quevivasbien/isometric-world/rlog"
)

const panStep = int32(8)

type game struct {
	state *isoworld.State
	mu    sync.Mutex
	img   *ebiten.Image
	w, h  int
}

func newGame(cfg config.WorldConfig) (*game, error) {
	st, err := isoworld.New(cfg.Periods, cfg.Amplitudes, cfg.PixelHeight, cfg.PixelWidth, cfg.Scale, cfg.Seed)
	if err != nil {
		return nil, err
	}
	st.SetLogger(rlog.NewDefaultLogger("demo"))
	st.Draw()
	return &game{
		state: st,
		img:   ebiten.NewImage(cfg.PixelWidth, cfg.PixelHeight),
		w:     cfg.PixelWidth,
		h:     cfg.PixelHeight,
	}, nil
}

func (g *game) Update() error {
	var dx, dy int32
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += panStep
	}
	if dx != 0 {
		g.state.ShiftX(dx)
	}
	if dy != 0 {
		g.state.ShiftY(dy)
	}
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	g.img.WritePixels(g.state.GetCanvas())
	g.mu.Unlock()
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.w, g.h
}

func main() {
	configPath := flag.String("config", "", "path to a TOML world config (defaults built in if omitted)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "demo: %v\n", err)
			os.Exit(1)
		}
	}

	g, err := newGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.PixelWidth, cfg.PixelHeight)
	ebiten.SetWindowTitle("isoworld demo")
	ebiten.SetWindowResizable(false)
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}
}
