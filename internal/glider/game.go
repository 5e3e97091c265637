// Package glider implements Gap Glider: a craft rides a stream of obstacle
// pairs, flapping against gravity, one point per pair cleared. The package
// owns the whole simulation (physics, obstacle lifecycle, collisions, the
// idle/playing/ended machine) and renders into a core.Screen; everything
// platform-specific lives in internal/platform/tui.
package glider

import (
	"fmt"

	"github.com/vovakirdan/tui-glider/internal/config"
	"github.com/vovakirdan/tui-glider/internal/core"
)

// GameID is the identifier used for score storage.
const GameID = "glider"

// Visual characters for rendering
const (
	CraftNose     = '▶'
	CraftBody     = '●'
	SegmentSolid  = '█'
	SegmentRidged = '▓'
	CapTop        = '▄'
	CapBottom     = '▀'
)

// Game holds the entire mutable simulation state. One instance is owned by
// the driving loop; the renderer reads the same record, so there are no
// copies to drift apart.
type Game struct {
	params config.Config
	cfg    core.RuntimeConfig

	phase    core.Phase
	craftY   float64 // Top of the craft hitbox
	craftVel float64

	field     *Field
	score     int
	highScore int
	newHigh   bool // Whether the last ended run set a new high score
	tickCount int  // Ticks spent in the playing phase of the current run
}

// New creates a game with the given parameters. Reset must be called with
// a RuntimeConfig before stepping.
func New(params config.Config) *Game {
	return &Game{params: params}
}

// ID returns the storage identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Gap Glider"
}

// Reset initializes the game for the given runtime configuration. The game
// comes up idle with the craft centered and no obstacles. The high score
// survives resets; it is fed from storage and only replaced by a better run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.phase = core.PhaseIdle
	g.craftY = float64(cfg.ScreenH) / 2.0
	g.craftVel = 0
	g.score = 0
	g.newHigh = false
	g.tickCount = 0

	if g.field == nil {
		g.field = NewField(cfg.Seed, cfg.ScreenW, cfg.ScreenH, cfg.TickRate, g.params.Obstacles)
	} else {
		g.field.Resize(cfg.ScreenW, cfg.ScreenH)
		g.field.Reset(cfg.Seed)
	}
}

// SetHighScore feeds the stored high score into the game. Used by the
// platform after reading persistence at startup.
func (g *Game) SetHighScore(hs int) {
	if hs > g.highScore {
		g.highScore = hs
	}
}

// Phase returns the current phase of the run lifecycle.
func (g *Game) Phase() core.Phase {
	return g.phase
}

// Step advances the game by one tick. Outside the playing phase the only
// input that matters is activation, which (re)starts a run; during play an
// activation is an impulse.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var res core.StepResult
	activate := in.Has(core.ActionActivate)

	switch g.phase {
	case core.PhaseIdle, core.PhaseEnded:
		if activate {
			g.start()
			res.Started = true
		}

	case core.PhasePlaying:
		g.tickCount++

		g.craftY, g.craftVel = Integrate(g.craftY, g.craftVel, activate, g.params.Physics)

		g.score += g.field.Update(g.craftLeft(), g.params.Physics.Speed)

		if g.outOfBounds() || g.field.Collides(g.craftRect()) {
			res.Ended = g.endRun()
		}
	}

	res.State = g.State()
	return res
}

// start transitions idle/ended -> playing: fresh score, craft recentered
// with zero velocity, obstacle collection and spawn timer cleared.
func (g *Game) start() {
	g.phase = core.PhasePlaying
	g.score = 0
	g.newHigh = false
	g.tickCount = 0
	g.craftY = float64(g.cfg.ScreenH) / 2.0
	g.craftVel = 0
	g.field.Clear()
}

// endRun transitions playing -> ended. The craft freezes where it died and
// the obstacle collection empties; the returned RunEnd carries the final
// numbers for notification and persistence.
func (g *Game) endRun() *core.RunEnd {
	g.phase = core.PhaseEnded
	g.newHigh = g.score > g.highScore
	if g.newHigh {
		g.highScore = g.score
	}
	g.field.Clear()

	return &core.RunEnd{
		Score:     g.score,
		HighScore: g.highScore,
		NewHigh:   g.newHigh,
	}
}

// outOfBounds reports whether the craft left the field vertically.
func (g *Game) outOfBounds() bool {
	return g.craftY < 0 || g.craftY+float64(g.params.Craft.Height) > float64(g.cfg.ScreenH)
}

// craftLeft returns the x-coordinate of the craft's left edge. The craft is
// pinned horizontally at screen center.
func (g *Game) craftLeft() float64 {
	return float64(g.cfg.ScreenW)/2.0 - float64(g.params.Craft.Width)/2.0
}

// craftRect returns the craft's collision rectangle.
func (g *Game) craftRect() core.RectF {
	return core.NewRectF(
		g.craftLeft(),
		g.craftY,
		float64(g.params.Craft.Width),
		float64(g.params.Craft.Height),
	)
}

// State returns a snapshot of the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:     g.phase,
		Score:     g.score,
		HighScore: g.highScore,
	}
}

// Render draws the current game state to the screen. Read-only: nothing
// here feeds back into the simulation.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, o := range g.field.Obstacles() {
		g.drawObstacle(dst, o)
	}

	g.drawCraft(dst)

	hud := fmt.Sprintf(" Score: %d   Best: %d ", g.score, g.highScore)
	dst.DrawTextColor(2, 0, hud, core.ColorBrightWhite)

	switch g.phase {
	case core.PhaseIdle:
		g.drawCenteredMessage(dst, "G A P   G L I D E R",
			fmt.Sprintf("Press Space to start  |  Best: %d", g.highScore))
	case core.PhaseEnded:
		title := "GAME OVER"
		if g.newHigh {
			title = "NEW BEST!"
		}
		g.drawCenteredMessage(dst, title,
			fmt.Sprintf("Score: %d  |  Best: %d  |  Space to retry", g.score, g.highScore))
	}
}

// drawCraft renders the craft with a nose marker on the leading edge.
func (g *Game) drawCraft(dst *core.Screen) {
	x := int(g.craftLeft())
	y := int(g.craftY)
	for dy := 0; dy < g.params.Craft.Height; dy++ {
		for dx := 0; dx < g.params.Craft.Width; dx++ {
			ch := CraftBody
			if dx == g.params.Craft.Width-1 && dy == 0 {
				ch = CraftNose
			}
			dst.SetCell(x+dx, y+dy, ch, core.ColorBrightYellow)
		}
	}
}

// drawObstacle renders both segments of a pair with caps facing the gap.
func (g *Game) drawObstacle(dst *core.Screen, o Obstacle) {
	x := int(o.X)
	width := g.params.Obstacles.Width
	topH := int(o.TopHeight)
	bottomY := topH + g.params.Obstacles.Gap

	ch := SegmentSolid
	color := core.ColorGreen
	if o.Kind == KindRidged {
		ch = SegmentRidged
		color = core.ColorCyan
	}

	for y := 0; y < topH; y++ {
		for dx := 0; dx < width; dx++ {
			dst.SetCell(x+dx, y, ch, color)
		}
	}
	if topH > 0 {
		for dx := 0; dx < width; dx++ {
			dst.SetCell(x+dx, topH-1, CapTop, color)
		}
	}

	for y := bottomY; y < dst.Height(); y++ {
		for dx := 0; dx < width; dx++ {
			dst.SetCell(x+dx, y, ch, color)
		}
	}
	if bottomY < dst.Height() {
		for dx := 0; dx < width; dx++ {
			dst.SetCell(x+dx, bottomY, CapBottom, color)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColor(titleX, boxY+1, title, core.ColorBrightWhite)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
