package ai

import (
	"time"

	"github.com/GodfreyDev/ChatGame/internal/state"
)

// Blackboard aliases the per-enemy AI memory stored on the enemy state.
type Blackboard = state.Blackboard

// PlayerRef mirrors the subset of player state the executor reads.
type PlayerRef struct {
	ID string
	X  float64
	Y  float64
}

// Config tunes the enemy state machine.
type Config struct {
	AggroRadius    float64
	MeleeRange     float64
	AttackDamage   int
	AttackCooldown time.Duration
	MinActionTime  float64 // seconds
	MaxActionTime  float64 // seconds
}

// DefaultConfig returns the standard tuning: 500-unit aggro, 50-unit melee
// reach, 10 damage once per second, wander timers in [1,3) seconds.
func DefaultConfig() Config {
	return Config{
		AggroRadius:    500,
		MeleeRange:     50,
		AttackDamage:   10,
		AttackCooldown: time.Second,
		MinActionTime:  1,
		MaxActionTime:  3,
	}
}

// Decision is the executor's output for one enemy tick: a unit movement
// vector, the facing to present, and an optional melee attack target.
type Decision struct {
	MoveX          float64
	MoveY          float64
	Facing         state.Direction
	AttackTargetID string
}

// Moving reports whether the decision displaces the enemy this tick.
func (d Decision) Moving() bool {
	return d.MoveX != 0 || d.MoveY != 0
}
