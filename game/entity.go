package game

import "github.com/hajimehoshi/ebiten/v2"

// object is the shared shape of everything placed on the board: a centre
// position, a sprite, and the sprite's larger dimension kept as a coarse
// collision radius.
type object struct {
	pos    Vec2
	sprite *ebiten.Image
	size   float64
}

// Pos returns the object's centre position.
func (o *object) Pos() Vec2 { return o.pos }

// Size returns max(width, height) of the object's sprite. Collision checks
// use it as a radius proxy; there is no per-pixel collision.
func (o *object) Size() float64 { return o.size }

// Food is what the ant is after. Each item picks one of three sprite
// variants at creation.
type Food struct {
	object
	variant int
}

// Poison kills the ant on contact. The player clears it by clicking.
type Poison struct {
	object
}

func spriteSize(img *ebiten.Image) float64 {
	if img == nil {
		return 0
	}
	b := img.Bounds()
	if b.Dx() > b.Dy() {
		return float64(b.Dx())
	}
	return float64(b.Dy())
}
