package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// noFrames builds ants without sprites; steering never looks at them.
var noFrames [antFrameCount]*ebiten.Image

func foodAt(x, y float64) *Food {
	return &Food{object: object{pos: Vec2{X: x, Y: y}, size: 30}}
}

func TestChooseFoodNearest(t *testing.T) {
	a := NewAnt(Vec2{X: 400, Y: 300}, noFrames)
	food := []*Food{
		foodAt(100, 100),
		foodAt(390, 300), // nearest
		foodAt(700, 500),
	}
	a.ChooseFood(food)
	if a.Target != food[1] {
		t.Errorf("ChooseFood picked %v, expected the item at (390,300)", a.Target.pos)
	}
}

func TestChooseFoodTieBreaksFirst(t *testing.T) {
	a := NewAnt(Vec2{X: 400, Y: 300}, noFrames)
	food := []*Food{
		foodAt(400, 200), // 100 up
		foodAt(400, 400), // 100 down, same distance
	}
	a.ChooseFood(food)
	if a.Target != food[0] {
		t.Error("ChooseFood tie should go to the first minimum in slice order")
	}
}

func TestChooseFoodEmptyKeepsTarget(t *testing.T) {
	a := NewAnt(Vec2{X: 400, Y: 300}, noFrames)
	prev := foodAt(1, 1)
	a.Target = prev
	a.ChooseFood(nil)
	if a.Target != prev {
		t.Error("ChooseFood on an empty set must leave the target alone")
	}
}

func TestMoveTurnsClampedTowardTarget(t *testing.T) {
	cfg := DefaultConfig()
	a := NewAnt(Vec2{X: 400, Y: 300}, noFrames)
	a.Speed = cfg.StartSpeed
	a.Direction = 0
	a.Target = foodAt(400, 200) // straight up: heading -π/2

	a.Move(cfg.TurnRate)

	wantDir := -cfg.StartSpeed * cfg.TurnRate // clamped, π/2 is too far to turn in one tick
	if math.Abs(a.Direction-wantDir) > 1e-12 {
		t.Errorf("Direction = %v, expected %v", a.Direction, wantDir)
	}
	wantX := 400 + math.Cos(wantDir)*cfg.StartSpeed
	wantY := 300 + math.Sin(wantDir)*cfg.StartSpeed
	if math.Abs(a.pos.X-wantX) > 1e-9 || math.Abs(a.pos.Y-wantY) > 1e-9 {
		t.Errorf("pos = %v, expected (%v, %v)", a.pos, wantX, wantY)
	}
}

func TestMoveStraightAtTarget(t *testing.T) {
	cfg := DefaultConfig()
	a := NewAnt(Vec2{X: 400, Y: 300}, noFrames)
	a.Speed = 5
	a.Direction = -math.Pi / 2 // already facing the food
	a.Target = foodAt(400, 200)

	a.Move(cfg.TurnRate)

	if math.Abs(a.Direction+math.Pi/2) > 1e-12 {
		t.Errorf("Direction = %v, expected -π/2", a.Direction)
	}
	if math.Abs(a.pos.X-400) > 1e-9 || math.Abs(a.pos.Y-295) > 1e-9 {
		t.Errorf("pos = %v, expected (400, 295)", a.pos)
	}
}

func TestMoveTurnNeverExceedsLimit(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 1000; i++ {
		a := NewAnt(Vec2{X: rng.Float64() * 800, Y: rng.Float64() * 600}, noFrames)
		a.Speed = 5 + float64(rng.Intn(20))
		a.Direction = (rng.Float64() - 0.5) * 20 // deliberately out of range
		a.Target = foodAt(rng.Float64()*800, rng.Float64()*600)

		before := normalizeAngle(a.Direction)
		a.Move(cfg.TurnRate)
		turn := a.Direction - before

		if limit := a.Speed * cfg.TurnRate; math.Abs(turn) > limit+1e-9 {
			t.Fatalf("turn %v exceeds limit %v (iteration %d)", turn, limit, i)
		}
	}
}

func TestMoveStepsExactlySpeed(t *testing.T) {
	cfg := DefaultConfig()
	a := NewAnt(Vec2{X: 100, Y: 100}, noFrames)
	a.Speed = 7
	a.Target = foodAt(600, 400)

	before := a.pos
	a.Move(cfg.TurnRate)
	if d := Distance(before, a.pos); math.Abs(d-7) > 1e-9 {
		t.Errorf("step length = %v, expected 7", d)
	}
}

func TestMoveCyclesAnimationFrames(t *testing.T) {
	cfg := DefaultConfig()
	a := NewAnt(Vec2{X: 100, Y: 100}, noFrames)
	a.Speed = 5
	a.Target = foodAt(600, 400)

	want := []int{1, 2, 0, 1}
	for i, w := range want {
		a.Move(cfg.TurnRate)
		if a.frame != w {
			t.Fatalf("after move %d frame = %d, expected %d", i+1, a.frame, w)
		}
	}
}
