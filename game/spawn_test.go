package game

import (
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
)

// newTestGame builds a headless game: no sprites, no audio device, seeded
// RNG so runs are reproducible.
func newTestGame(seed int64) *Game {
	cfg := DefaultConfig()
	return NewGame(cfg, nil, SilentMixer{}, rand.New(rand.NewSource(seed)), log.New(io.Discard))
}

func TestGoodPositionConstraints(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 12345} {
		g := newTestGame(seed)
		g.Start() // random layout of 4 food and 6 poison

		cfg := g.cfg
		for i := 0; i < 200; i++ {
			p := g.goodPosition()

			if p.X < cfg.EdgePadding || p.X > float64(cfg.ScreenWidth)-cfg.EdgePadding ||
				p.Y < cfg.EdgePadding || p.Y > float64(cfg.ScreenHeight)-cfg.EdgePadding {
				t.Fatalf("seed %d: position %v outside padded bounds", seed, p)
			}
			if d := Distance(g.ant.pos, p); d < cfg.AntClearance {
				t.Fatalf("seed %d: position %v only %v from ant", seed, p, d)
			}
			for _, f := range g.food {
				if d := Distance(f.pos, p); d < cfg.ItemClearance {
					t.Fatalf("seed %d: position %v only %v from food", seed, p, d)
				}
			}
			for _, q := range g.poison {
				if d := Distance(q.pos, p); d < cfg.ItemClearance {
					t.Fatalf("seed %d: position %v only %v from poison", seed, p, d)
				}
			}
		}
	}
}

func TestStartKeepsFoodCountConstant(t *testing.T) {
	g := newTestGame(5)
	for i := 0; i < 5; i++ {
		g.Start()
		if len(g.food) != g.cfg.NumFood {
			t.Fatalf("after Start %d: %d food items, expected %d", i+1, len(g.food), g.cfg.NumFood)
		}
	}
}

func TestStartPoisonCountScalesWithScore(t *testing.T) {
	tests := []struct {
		score    int
		expected int
	}{
		{0, 6},
		{4900, 6},
		{5000, 7},
		{10000, 8},
		{29900, 11},
		{50000, 16},
	}

	for _, tc := range tests {
		g := newTestGame(11)
		g.score = tc.score
		g.Start()
		if len(g.poison) != tc.expected {
			t.Errorf("score %d: %d poison items, expected %d", tc.score, len(g.poison), tc.expected)
		}
	}
}

func TestSpawnedItemSizeTracksSprite(t *testing.T) {
	g := newTestGame(41)
	g.Start()
	// headless games have no sprites, so sizes collapse to zero
	if s := g.poison[0].Size(); s != 0 {
		t.Errorf("Size() = %v without a sprite, expected 0", s)
	}
}

func TestStartRegeneratesAllPoison(t *testing.T) {
	g := newTestGame(21)
	g.Start()
	old := append([]*Poison(nil), g.poison...)

	g.Start()
	for _, p := range g.poison {
		for _, q := range old {
			if p == q {
				t.Fatal("Start reused a poison item; the set must be rebuilt from scratch")
			}
		}
	}
}

func TestSpawnedFoodVariantsInRange(t *testing.T) {
	g := newTestGame(31)
	g.Start()
	for i := 0; i < 50; i++ {
		f := g.newFood()
		if f.variant < 0 || f.variant >= numFoodVariants {
			t.Fatalf("food variant %d out of range", f.variant)
		}
	}
}
