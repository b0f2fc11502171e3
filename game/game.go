package game

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// State enumerates the phases of a session.
type State int

const (
	// StateStarting shows the title banner and waits for a click.
	StateStarting State = iota
	// StatePlaying runs the simulation.
	StatePlaying
	// StateDying pauses after a poisoning until the resume timer fires.
	StateDying
	// StateGameOver shows the final banner until the restart timer fires.
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StatePlaying:
		return "playing"
	case StateDying:
		return "dying"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

// Game owns all board state and implements ebiten.Game. Every mutation
// happens inside Update, which ebiten calls once per tick; Draw only reads.
type Game struct {
	cfg    Config
	rng    *rand.Rand
	logger *log.Logger
	assets *Assets
	mixer  Mixer

	state State
	score int
	lives int

	ant    *Ant
	food   []*Food
	poison []*Poison

	// One-shot delays in ticks remaining; zero means disarmed. Only one is
	// ever armed at a time.
	resumeTicks  int // DYING -> PLAYING or GAME_OVER
	restartTicks int // GAME_OVER -> STARTING
}

// NewGame builds a game on the title screen. assets may be nil when the
// renderer and audio device are never used (headless runs); mixer, rng,
// and logger must not be nil.
func NewGame(cfg Config, assets *Assets, mixer Mixer, rng *rand.Rand, logger *log.Logger) *Game {
	g := &Game{
		cfg:    cfg,
		rng:    rng,
		logger: logger,
		assets: assets,
		mixer:  mixer,
		state:  StateStarting,
		lives:  cfg.Lives,
	}
	var frames [antFrameCount]*ebiten.Image
	if assets != nil {
		frames = assets.AntFrames
	}
	g.ant = NewAnt(g.center(), frames)
	g.ant.Speed = cfg.StartSpeed
	return g
}

func (g *Game) center() Vec2 {
	return Vec2{X: float64(g.cfg.ScreenWidth) / 2, Y: float64(g.cfg.ScreenHeight) / 2}
}

// Start begins a round: ant back at the centre, a fresh food set, and a
// poison set rebuilt from scratch at MinPoison + score/PoisonStep. Losing
// a life therefore reshuffles the whole poison layout.
func (g *Game) Start() {
	g.mixer.Loop(SoundTrack, soundtrackVolume, time.Second)
	g.ant.pos = g.center()

	g.food = g.food[:0]
	g.poison = g.poison[:0]
	for i := 0; i < g.cfg.NumFood; i++ {
		g.food = append(g.food, g.newFood())
	}
	for i, n := 0, g.cfg.MinPoison+g.score/g.cfg.PoisonStep; i < n; i++ {
		g.poison = append(g.poison, g.newPoison())
	}

	g.ant.ChooseFood(g.food)
	g.state = StatePlaying
	g.logger.Info("round started", "score", g.score, "lives", g.lives, "poison", len(g.poison))
}

// Restart resets lives, score, and speed for a brand new game.
func (g *Game) Restart() {
	g.lives = g.cfg.Lives
	g.score = 0
	g.ant.Speed = g.cfg.StartSpeed
	g.logger.Info("new game")
	g.Start()
}

func (g *Game) die() {
	g.mixer.Stop(SoundTrack)
	g.lives--
	g.state = StateDying
	g.mixer.Play(SoundDie)
	g.resumeTicks = g.delayTicks(g.mixer.Duration(SoundDie))
	g.logger.Info("ant poisoned", "lives", g.lives, "score", g.score)
}

func (g *Game) gameOver() {
	g.state = StateGameOver
	g.mixer.Play(SoundGameOver)
	g.restartTicks = g.delayTicks(g.mixer.Duration(SoundGameOver))
	g.logger.Info("game over", "score", g.score)
}

// delayTicks converts a sound length plus one second of padding into ticks.
func (g *Game) delayTicks(d time.Duration) int {
	n := int((d + time.Second) * time.Duration(g.cfg.TPS) / time.Second)
	if n < 1 {
		n = 1
	}
	return n
}

// Tick advances the simulation one step: run any armed timer, then, while
// playing, move the ant and apply the eating and poisoning rules in that
// order.
func (g *Game) Tick() {
	g.mixer.Step()
	if g.stepTimers() {
		// a state transition consumed this tick
		return
	}
	if g.state != StatePlaying {
		return
	}
	g.ant.Move(g.cfg.TurnRate)
	g.checkEating()
	g.checkPoisoned()
}

// stepTimers counts down whichever one-shot timer is armed and reports
// whether it fired. Firing disarms the timer.
func (g *Game) stepTimers() bool {
	switch {
	case g.resumeTicks > 0:
		g.resumeTicks--
		if g.resumeTicks > 0 {
			return false
		}
		if g.lives == 0 {
			g.gameOver()
		} else {
			g.Start()
		}
		return true
	case g.restartTicks > 0:
		g.restartTicks--
		if g.restartTicks > 0 {
			return false
		}
		g.state = StateStarting
		return true
	}
	return false
}

// checkEating consumes the target once the ant is within one step of it,
// then applies the score-triggered speed and poison bumps and tops the food
// set back up.
func (g *Game) checkEating() {
	if Distance(g.ant.pos, g.ant.Target.pos) >= g.ant.Speed {
		return
	}
	g.removeFood(g.ant.Target)
	g.score += g.cfg.EatScore
	if g.score%g.cfg.SpeedStep == 0 {
		g.ant.Speed++
		g.logger.Info("ant sped up", "speed", g.ant.Speed, "score", g.score)
	}
	if g.score%g.cfg.PoisonStep == 0 && g.score < g.cfg.PoisonScoreCap {
		g.poison = append(g.poison, g.newPoison())
	}
	g.food = append(g.food, g.newFood())
	g.ant.ChooseFood(g.food)
	g.mixer.Play(SoundEat)
	g.logger.Debug("food eaten", "score", g.score)
}

// checkPoisoned kills the ant on the first poison item within reach.
func (g *Game) checkPoisoned() {
	for _, p := range g.poison {
		if Distance(g.ant.pos, p.pos) < (g.ant.size+p.size)/3 {
			g.die()
			return
		}
	}
}

// Click handles a mouse press at pos. While playing it clears every poison
// item under the cursor, spawning a replacement for each so the count never
// changes; on the title screen it starts a new game.
func (g *Game) Click(pos Vec2) {
	switch g.state {
	case StatePlaying:
		// iterate a snapshot; the slice is mutated inside the loop
		for _, p := range append([]*Poison(nil), g.poison...) {
			if Distance(p.pos, pos) < p.size/2 {
				g.removePoison(p)
				g.poison = append(g.poison, g.newPoison())
			}
		}
	case StateStarting:
		g.Restart()
	}
}

// removeFood deletes f from the food set. Absent items are a no-op.
func (g *Game) removeFood(f *Food) {
	for i, x := range g.food {
		if x == f {
			g.food = append(g.food[:i], g.food[i+1:]...)
			return
		}
	}
}

// removePoison deletes p from the poison set. Absent items are a no-op.
func (g *Game) removePoison(p *Poison) {
	for i, x := range g.poison {
		if x == p {
			g.poison = append(g.poison[:i], g.poison[i+1:]...)
			return
		}
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	in := readInput()
	if in.Quit {
		return ebiten.Termination
	}
	if in.Clicked {
		g.Click(in.ClickPos)
	}
	g.Tick()
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.draw(screen)
}

// Layout implements ebiten.Game; the board is a fixed 800×600.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
