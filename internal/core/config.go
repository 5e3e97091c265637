package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for obstacle placement; 0 means time-based in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// Phase identifies where in the run lifecycle the game is.
type Phase int

const (
	// PhaseIdle is the initial state: craft frozen, no obstacles, waiting
	// for activation.
	PhaseIdle Phase = iota
	// PhasePlaying is the active simulation.
	PhasePlaying
	// PhaseEnded is after a collision or bounds exit, waiting for
	// activation to restart.
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// GameState is a snapshot of the game returned after every tick.
type GameState struct {
	Phase     Phase
	Score     int
	HighScore int
}

// RunEnd describes the run that terminated this tick.
type RunEnd struct {
	Score     int
	HighScore int  // Best score after this run has been accounted for
	NewHigh   bool // True if this run set a new high score
}

// StepResult is returned by Game.Step after each simulation tick.
// Events on it are fire-and-forget: the platform may surface them as
// notifications and persist new high scores, but the simulation never
// waits on a response.
type StepResult struct {
	State   GameState
	Started bool    // A new run began this tick
	Ended   *RunEnd // Set on the tick a run terminated, nil otherwise
}
