// Package config provides YAML-based game configuration loading for
// Gap Glider.
package config

// Config contains all tunable parameters for the game.
type Config struct {
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Craft     Craft     `yaml:"craft"`
}

// Physics defines the vertical motion parameters.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`        // Acceleration per tick (cells/tick²)
	Impulse      float64 `yaml:"impulse"`        // Velocity set by an activation (negative = up)
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity; <= 0 disables the cap
	Speed        float64 `yaml:"speed"`          // Obstacle scroll speed (cells/tick)
}

// Obstacles defines the obstacle pair parameters.
type Obstacles struct {
	Width           int `yaml:"width"`             // Obstacle width in cells
	Gap             int `yaml:"gap"`               // Fixed gap height in cells
	TopMargin       int `yaml:"top_margin"`        // Minimum top segment height
	BottomMargin    int `yaml:"bottom_margin"`     // Minimum bottom segment height
	SpawnIntervalMS int `yaml:"spawn_interval_ms"` // Time between spawns, converted to ticks at reset
}

// Craft defines the player craft hitbox.
type Craft struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}
