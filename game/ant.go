package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// antFrameCount is the number of walk-cycle sprites.
const antFrameCount = 3

// Ant is the game's sole actor. It steers itself toward its target; the
// player never controls it directly. One Ant persists across restarts: the
// game resets its speed and position rather than recreating it.
type Ant struct {
	object

	// Speed is the step length per tick in pixels.
	Speed float64

	// Direction is the heading in radians, wrapped into (-π, π] by Move.
	Direction float64

	// Target is the food item being chased. While the game is in the
	// playing state it is always a live member of the food set.
	Target *Food

	frames [antFrameCount]*ebiten.Image
	frame  int
}

// NewAnt places an ant at pos with the given walk-cycle sprites.
func NewAnt(pos Vec2, frames [antFrameCount]*ebiten.Image) *Ant {
	return &Ant{
		object: object{pos: pos, sprite: frames[0], size: spriteSize(frames[0])},
		frames: frames,
	}
}

// ChooseFood stores the nearest food item as the ant's target. Ties go to
// the first minimum in slice order. An empty slice leaves the target as is.
func (a *Ant) ChooseFood(food []*Food) {
	var best *Food
	bestDist := math.MaxFloat64
	for _, f := range food {
		if d := Distance(a.pos, f.pos); d < bestDist {
			best = f
			bestDist = d
		}
	}
	if best != nil {
		a.Target = best
	}
}

// Move advances the ant by one tick: turn toward the target, bounded by
// Speed*turnRate radians, then step Speed pixels along the new heading.
// The caller guarantees a target is set.
func (a *Ant) Move(turnRate float64) {
	heading := math.Atan2(a.Target.pos.Y-a.pos.Y, a.Target.pos.X-a.pos.X)

	a.Direction = normalizeAngle(a.Direction)

	// shortest signed turn, wrapped into (-π, π]
	turn := heading - a.Direction
	if turn > math.Pi {
		turn -= 2 * math.Pi
	}
	if turn < -math.Pi {
		turn += 2 * math.Pi
	}
	turn = clampTurn(turn, a.Speed*turnRate)

	a.Direction += turn
	a.pos.X += math.Cos(a.Direction) * a.Speed
	a.pos.Y += math.Sin(a.Direction) * a.Speed
	a.frame = (a.frame + 1) % antFrameCount
}
