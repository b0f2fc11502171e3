package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// input is one tick's worth of player intent.
type input struct {
	Quit     bool
	Clicked  bool
	ClickPos Vec2
}

// readInput polls the input device once per tick and snapshots the result,
// so game logic never touches ebiten's input state directly.
func readInput() input {
	var in input
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Quit = true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Clicked = true
		in.ClickPos = Vec2{X: float64(x), Y: float64(y)}
	}
	return in
}
