package glider

import (
	"testing"

	"github.com/vovakirdan/tui-glider/internal/config"
	"github.com/vovakirdan/tui-glider/internal/core"
)

// fieldCfg mirrors the reference arcade's pixel-scale parameters so the
// scenario numbers stay readable.
func fieldCfg() config.Obstacles {
	return config.Obstacles{
		Width:           50,
		Gap:             150,
		TopMargin:       40,
		BottomMargin:    40,
		SpawnIntervalMS: 1500,
	}
}

func TestSpawnTimingIsTickGated(t *testing.T) {
	cfg := fieldCfg()
	cfg.SpawnIntervalMS = 500 // 30 ticks at 60/s
	f := NewField(1, 400, 400, 60, cfg)

	for i := 0; i < 29; i++ {
		f.Update(200, 3)
	}
	if len(f.Obstacles()) != 0 {
		t.Fatalf("obstacles before the interval elapsed = %d, expected 0", len(f.Obstacles()))
	}

	f.Update(200, 3)
	if len(f.Obstacles()) != 1 {
		t.Fatalf("obstacles after 30 ticks = %d, expected 1", len(f.Obstacles()))
	}

	// The gate repeats: another full interval yields a second pair.
	for i := 0; i < 30; i++ {
		f.Update(200, 3)
	}
	if len(f.Obstacles()) != 2 {
		t.Fatalf("obstacles after 60 ticks = %d, expected 2", len(f.Obstacles()))
	}
}

func TestSpawnIntervalNeverBelowOneTick(t *testing.T) {
	if got := ticksForInterval(1, 60); got != 1 {
		t.Errorf("ticksForInterval(1ms, 60) = %d, expected 1", got)
	}
	if got := ticksForInterval(1500, 60); got != 90 {
		t.Errorf("ticksForInterval(1500ms, 60) = %d, expected 90", got)
	}
	if got := ticksForInterval(1000, 30); got != 30 {
		t.Errorf("ticksForInterval(1000ms, 30) = %d, expected 30", got)
	}
}

func TestSpawnPlacementStaysWithinMargins(t *testing.T) {
	cfg := fieldCfg()
	cfg.SpawnIntervalMS = 100 // Spawn often to sample many placements
	fieldH := 400
	f := NewField(12345, 400, fieldH, 60, cfg)

	minTop := float64(cfg.TopMargin)
	maxTop := float64(fieldH - cfg.Gap - cfg.BottomMargin)

	sawSolid, sawRidged := false, false
	for i := 0; i < 600; i++ {
		f.Update(-1000, 0) // Craft far left, zero speed: nothing scores or prunes
	}

	obstacles := f.Obstacles()
	if len(obstacles) == 0 {
		t.Fatal("expected spawned obstacles")
	}
	for _, o := range obstacles {
		if o.TopHeight < minTop || o.TopHeight > maxTop {
			t.Errorf("TopHeight %v outside [%v, %v]", o.TopHeight, minTop, maxTop)
		}
		switch o.Kind {
		case KindSolid:
			sawSolid = true
		case KindRidged:
			sawRidged = true
		default:
			t.Errorf("unexpected kind %v", o.Kind)
		}
	}

	// Both cosmetic variants should appear across a large sample.
	if !sawSolid || !sawRidged {
		t.Errorf("expected both kinds across %d spawns (solid=%v ridged=%v)",
			len(obstacles), sawSolid, sawRidged)
	}
}

func TestObstacleMotionAndPruning(t *testing.T) {
	cfg := fieldCfg()
	f := NewField(1, 400, 400, 60, cfg)

	// Place one pair at the right edge by hand; gate far away.
	f.spawnEvery = 1 << 30
	f.obstacles = append(f.obstacles, Obstacle{X: 400, TopHeight: 50})

	speed := 3.0
	for n := 1; n <= 100; n++ {
		f.Update(-1000, speed)
		want := 400 - speed*float64(n)
		if got := f.Obstacles()[0].X; got != want {
			t.Fatalf("after %d ticks X = %v, expected %v", n, got, want)
		}
	}

	// x = 400 - 3N; the pair survives while x+width >= 0, i.e. through
	// N = 150 (x = -50), and is pruned at N = 151.
	for n := 101; n <= 150; n++ {
		f.Update(-1000, speed)
		if len(f.Obstacles()) != 1 {
			t.Fatalf("pair pruned at tick %d while trailing edge still at or past the boundary", n)
		}
	}

	f.Update(-1000, speed)
	if len(f.Obstacles()) != 0 {
		t.Error("pair should be pruned once fully past the left boundary")
	}
}

func TestPassedFlagScoresExactlyOnce(t *testing.T) {
	cfg := fieldCfg()
	f := NewField(1, 400, 400, 60, cfg)
	f.spawnEvery = 1 << 30

	craftLeft := 175.0
	f.obstacles = append(f.obstacles, Obstacle{X: 129, TopHeight: 50})

	// After one tick at speed 3: X = 126, trailing edge 176 > 175, not passed.
	if got := f.Update(craftLeft, 3); got != 0 {
		t.Fatalf("scored %d while trailing edge not yet past craft", got)
	}

	// Next tick: X = 123, trailing edge 173 < 175: exactly one point.
	if got := f.Update(craftLeft, 3); got != 1 {
		t.Fatalf("Update() = %d, expected 1 on the crossing tick", got)
	}
	if !f.Obstacles()[0].Passed {
		t.Error("Passed flag not set on scoring")
	}

	// Never again for the same pair.
	for i := 0; i < 40; i++ {
		if got := f.Update(craftLeft, 3); got != 0 {
			t.Fatalf("pair scored again on tick %d", i)
		}
	}
}

func TestCollides(t *testing.T) {
	cfg := fieldCfg()
	f := NewField(1, 400, 400, 60, cfg)
	f.spawnEvery = 1 << 30

	// Gap spans [100, 250) at X 180..230.
	f.obstacles = append(f.obstacles, Obstacle{X: 180, TopHeight: 100})

	tests := []struct {
		name     string
		craft    core.RectF
		expected bool
	}{
		{"inside gap with horizontal overlap", core.NewRectF(190, 150, 30, 30), false},
		{"gap fully contains craft span", core.NewRectF(180, 101, 50, 148), false},
		{"overlaps top segment", core.NewRectF(190, 90, 30, 30), true},
		{"overlaps bottom segment", core.NewRectF(190, 240, 30, 30), true},
		{"no horizontal overlap", core.NewRectF(0, 50, 30, 30), false},
		{"touching top segment bottom edge", core.NewRectF(190, 100, 30, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.Collides(tc.craft); got != tc.expected {
				t.Errorf("Collides(%+v) = %v, expected %v", tc.craft, got, tc.expected)
			}
		})
	}
}

func TestFieldResetClearsEverything(t *testing.T) {
	cfg := fieldCfg()
	cfg.SpawnIntervalMS = 100
	f := NewField(7, 400, 400, 60, cfg)

	for i := 0; i < 50; i++ {
		f.Update(-1000, 1)
	}
	if len(f.Obstacles()) == 0 {
		t.Fatal("expected obstacles before reset")
	}

	f.Reset(7)
	if len(f.Obstacles()) != 0 {
		t.Error("Reset should clear the obstacle collection")
	}
	if f.sinceSpawn != 0 {
		t.Error("Reset should clear the spawn timer")
	}
}
