//go:build ebiten

package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/conway-grid/model"
	"github.com/sheikhrachel/conway-grid/utils"
)

// Game adapts a grid to the ebiten.Game interface.
type Game struct {
	grid   *model.Grid
	config utils.Config
	pool   *model.ChangePool

	img *ebiten.Image
	buf []byte

	onColor  color.Color
	offColor color.Color

	paused     bool
	tickOnce   bool
	generation int
}

// New constructs a Game that steps grid using config and pool.
func New(grid *model.Grid, config utils.Config, pool *model.ChangePool) *Game {
	w, h := grid.GetWidth(), grid.GetHeight()
	return &Game{
		grid:     grid,
		config:   config,
		pool:     pool,
		img:      ebiten.NewImage(w, h),
		buf:      make([]byte, 4*w*h),
		onColor:  color.White,
		offColor: color.Black,
	}
}

// Update handles key presses and advances the grid.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}

	if g.paused && !g.tickOnce {
		return nil
	}
	g.tickOnce = false

	if limit := g.config.MaxGenerations; limit > 0 && g.generation >= limit {
		g.paused = true
		return nil
	}
	if err := g.grid.Advance(g.config, g.pool); err != nil {
		return errors.Wrapf(err, "[Update] failed to advance generation %d", g.generation)
	}
	g.generation++
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	fillRGBA(g.buf, g.grid, g.onColor, g.offColor)
	g.img.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.config.Scale), float64(g.config.Scale))
	screen.DrawImage(g.img, op)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.grid.GetWidth() * g.config.Scale, g.grid.GetHeight() * g.config.Scale
}

// Run opens a window and steps grid until the window is closed.
func Run(grid *model.Grid, config utils.Config, pool *model.ChangePool) error {
	game := New(grid, config, pool)

	ebiten.SetWindowTitle("conway-grid")
	ebiten.SetTPS(config.TPS)
	ebiten.SetWindowSize(grid.GetWidth()*config.Scale, grid.GetHeight()*config.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[Run] window closed with error")
	}
	return nil
}
