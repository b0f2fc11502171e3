package game

import "github.com/hajimehoshi/ebiten/v2"

// goodPosition draws random positions inside the padded board until one is
// far enough from the ant and from every existing item. The board is sparse
// relative to its area, so the retry loop terminates quickly in practice.
func (g *Game) goodPosition() Vec2 {
	pad := g.cfg.EdgePadding
	w := float64(g.cfg.ScreenWidth)
	h := float64(g.cfg.ScreenHeight)
	for {
		p := Vec2{
			X: pad + g.rng.Float64()*(w-2*pad),
			Y: pad + g.rng.Float64()*(h-2*pad),
		}
		if Distance(g.ant.pos, p) < g.cfg.AntClearance {
			continue
		}
		if g.clearOfItems(p) {
			return p
		}
	}
}

func (g *Game) clearOfItems(p Vec2) bool {
	for _, f := range g.food {
		if Distance(f.pos, p) < g.cfg.ItemClearance {
			return false
		}
	}
	for _, q := range g.poison {
		if Distance(q.pos, p) < g.cfg.ItemClearance {
			return false
		}
	}
	return true
}

// newFood spawns one food item with a random sprite variant at a good
// position. Sprites are nil when the game runs without loaded assets.
func (g *Game) newFood() *Food {
	v := g.rng.Intn(numFoodVariants)
	var img *ebiten.Image
	if g.assets != nil {
		img = g.assets.Food[v]
	}
	return &Food{
		object:  object{pos: g.goodPosition(), sprite: img, size: spriteSize(img)},
		variant: v,
	}
}

// newPoison spawns one poison item at a good position.
func (g *Game) newPoison() *Poison {
	var img *ebiten.Image
	if g.assets != nil {
		img = g.assets.Poison
	}
	return &Poison{
		object{pos: g.goodPosition(), sprite: img, size: spriteSize(img)},
	}
}
