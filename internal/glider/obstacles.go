package glider

import (
	"math/rand"

	"github.com/vovakirdan/tui-glider/internal/config"
	"github.com/vovakirdan/tui-glider/internal/core"
)

// Kind selects one of two obstacle looks. Purely cosmetic, no gameplay
// effect.
type Kind int

const (
	KindSolid Kind = iota
	KindRidged
)

// Obstacle is a vertical pair of segments with a fixed-height gap the craft
// must pass through.
type Obstacle struct {
	X         float64 // Horizontal position of the left edge
	TopHeight float64 // Height of the top segment; the gap starts here
	Passed    bool    // Whether the craft has cleared this pair (scoring de-dup)
	Kind      Kind
}

// TopRect returns the collision rectangle for the top segment.
func (o Obstacle) TopRect(width float64) core.RectF {
	return core.NewRectF(o.X, 0, width, o.TopHeight)
}

// BottomRect returns the collision rectangle for the bottom segment.
func (o Obstacle) BottomRect(width, gap, fieldH float64) core.RectF {
	bottomY := o.TopHeight + gap
	return core.NewRectF(o.X, bottomY, width, fieldH-bottomY)
}

// Field owns the active obstacle collection: spawning, movement, scoring
// flags and pruning. Obstacles are kept in spawn order, which is also
// right-to-left traversal order, so pruning only ever removes from the
// front.
type Field struct {
	obstacles  []Obstacle
	rng        *rand.Rand
	fieldW     int
	fieldH     int
	spawnEvery int // Ticks between spawns, derived from the ms interval
	sinceSpawn int // Ticks since the last spawn
	cfg        config.Obstacles
}

// NewField creates an obstacle field for the given dimensions and tick rate.
func NewField(seed int64, fieldW, fieldH, tickRate int, cfg config.Obstacles) *Field {
	f := &Field{
		obstacles: make([]Obstacle, 0, 8),
		fieldW:    fieldW,
		fieldH:    fieldH,
		cfg:       cfg,
	}
	f.spawnEvery = ticksForInterval(cfg.SpawnIntervalMS, tickRate)
	f.Reset(seed)
	return f
}

// ticksForInterval converts a millisecond spawn interval to whole ticks.
// The simulation is tick-based throughout, so the gate is deterministic
// for a given tick rate.
func ticksForInterval(ms, tickRate int) int {
	ticks := ms * tickRate / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// Reset clears all obstacles, the spawn timer and reseeds the RNG.
func (f *Field) Reset(seed int64) {
	f.obstacles = f.obstacles[:0]
	f.sinceSpawn = 0
	f.rng = rand.New(rand.NewSource(seed))
}

// Resize updates the field dimensions.
func (f *Field) Resize(fieldW, fieldH int) {
	f.fieldW = fieldW
	f.fieldH = fieldH
}

// Clear drops all active obstacles without touching the RNG.
func (f *Field) Clear() {
	f.obstacles = f.obstacles[:0]
	f.sinceSpawn = 0
}

// Update advances the field by one tick: moves obstacles left, flags pairs
// the craft has cleared, prunes pairs that are fully off-screen, and spawns
// a new pair when the interval gate opens. craftLeft is the x-coordinate of
// the craft's left edge. Returns the number of pairs cleared this tick.
func (f *Field) Update(craftLeft, speed float64) int {
	passed := 0
	width := float64(f.cfg.Width)

	for i := range f.obstacles {
		f.obstacles[i].X -= speed
	}

	// A pair scores exactly once, guarded by the Passed flag, when its
	// trailing edge has moved left of the craft's left edge.
	for i := range f.obstacles {
		if !f.obstacles[i].Passed && f.obstacles[i].X+width < craftLeft {
			f.obstacles[i].Passed = true
			passed++
		}
	}

	// Prune pairs only once fully past the left boundary; a pair that is
	// still partially visible stays active.
	alive := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.X+width >= 0 {
			alive = append(alive, o)
		}
	}
	f.obstacles = alive

	f.sinceSpawn++
	if f.sinceSpawn >= f.spawnEvery {
		f.spawn()
		f.sinceSpawn = 0
	}

	return passed
}

// spawn appends a new pair at the right edge of the field with a uniformly
// random gap placement constrained by the margins.
func (f *Field) spawn() {
	minTop := f.cfg.TopMargin
	maxTop := f.fieldH - f.cfg.Gap - f.cfg.BottomMargin
	if maxTop < minTop {
		maxTop = minTop // Degenerate case for very small fields
	}

	topHeight := minTop
	if maxTop > minTop {
		topHeight = minTop + f.rng.Intn(maxTop-minTop+1)
	}

	kind := KindSolid
	if f.rng.Intn(2) == 1 {
		kind = KindRidged
	}

	f.obstacles = append(f.obstacles, Obstacle{
		X:         float64(f.fieldW),
		TopHeight: float64(topHeight),
		Kind:      kind,
	})
}

// Collides tests the craft rectangle against every active pair's segments,
// short-circuiting on the first hit.
func (f *Field) Collides(craft core.RectF) bool {
	width := float64(f.cfg.Width)
	gap := float64(f.cfg.Gap)
	fieldH := float64(f.fieldH)

	for _, o := range f.obstacles {
		if craft.Intersects(o.TopRect(width)) || craft.Intersects(o.BottomRect(width, gap, fieldH)) {
			return true
		}
	}
	return false
}

// Obstacles returns the active obstacle collection.
func (f *Field) Obstacles() []Obstacle {
	return f.obstacles
}
