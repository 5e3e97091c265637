package glider

import "github.com/vovakirdan/tui-glider/internal/config"

// Integrate advances the craft's vertical state by one tick.
//
// Gravity is applied first; an impulse then replaces the velocity outright
// rather than adding to it, so a flap tick always leaves the velocity at
// exactly cfg.Impulse. Position is updated last. No clamping against the
// field bounds happens here; that is the simulation step's job.
func Integrate(y, v float64, impulse bool, cfg config.Physics) (float64, float64) {
	v += cfg.Gravity
	if impulse {
		v = cfg.Impulse
	}
	if cfg.MaxFallSpeed > 0 && v > cfg.MaxFallSpeed {
		v = cfg.MaxFallSpeed
	}
	y += v
	return y, v
}
