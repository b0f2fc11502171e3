package game

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Palette from the original art direction: almond backdrop, brown text.
var (
	colorBackdrop = color.RGBA{R: 0xef, G: 0xde, B: 0xcd, A: 0xff}
	colorText     = color.RGBA{R: 0x6f, G: 0x4e, B: 0x37, A: 0xff}
	colorGameOver = color.RGBA{R: 0xff, A: 0xff}
)

const hudPad = 20

func (g *Game) draw(screen *ebiten.Image) {
	if g.assets == nil {
		return
	}
	screen.Fill(colorBackdrop)
	screen.DrawImage(g.assets.Background, nil)

	for _, f := range g.food {
		drawCentered(screen, f.sprite, f.pos, 0)
	}
	for _, p := range g.poison {
		drawCentered(screen, p.sprite, p.pos, 0)
	}
	drawCentered(screen, g.ant.frames[g.ant.frame], g.ant.pos, g.ant.Direction)

	g.drawHUD(screen)
}

// drawCentered blits img with its centre at pos, rotated by angle radians.
func drawCentered(dst, img *ebiten.Image, pos Vec2, angle float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	if angle != 0 {
		op.GeoM.Rotate(angle)
	}
	op.GeoM.Translate(pos.X, pos.Y)
	dst.DrawImage(img, op)
}

// drawHUD renders the lives tally on the left, the score on the right, and
// the state banner when the game is not running.
func (g *Game) drawHUD(screen *ebiten.Image) {
	g.drawText(screen, strings.Repeat("I", g.lives), hudPad, hudPad, colorText, text.AlignStart)
	g.drawText(screen, strconv.Itoa(g.score), float64(g.cfg.ScreenWidth)-hudPad, hudPad, colorText, text.AlignEnd)

	switch g.state {
	case StateGameOver:
		g.drawBanner(screen, "Game Over", colorGameOver)
	case StateStarting:
		g.drawBanner(screen, "Click to Play", colorText)
	}
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(screen, s, g.assets.Face, op)
}

// drawBanner centres s a third of the way down the board.
func (g *Game) drawBanner(screen *ebiten.Image, s string, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(g.cfg.ScreenWidth)/2, float64(g.cfg.ScreenHeight)/3)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, g.assets.Face, op)
}
