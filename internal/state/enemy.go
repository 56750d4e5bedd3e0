package state

import "time"

// AIAction enumerates the enemy finite-state-machine states.
type AIAction string

const (
	AIActionIdle  AIAction = "idle"
	AIActionMove  AIAction = "move"
	AIActionChase AIAction = "chase"
)

// Blackboard stores the per-enemy AI memory advanced once per tick.
type Blackboard struct {
	Action   AIAction
	Timer    float64 // seconds remaining in the current action
	Heading  Direction
	TargetID string
}

// Enemy mirrors the enemy state broadcast to clients every tick.
type Enemy struct {
	Actor
	Width      float64  `json:"width"`
	Height     float64  `json:"height"`
	Speed      float64  `json:"speed"`
	FrameIndex int      `json:"frameIndex"`
	Action     AIAction `json:"action"`
}

// EnemyState wraps the wire-visible enemy with AI bookkeeping.
type EnemyState struct {
	ActorState
	Width      float64
	Height     float64
	Speed      float64
	FrameIndex int
	Blackboard Blackboard
	LastAttack time.Time
}

// NewEnemyState creates an enemy at full health in the idle state. The first
// tick rolls a fresh action because the timer starts expired.
func NewEnemyState(id string, x, y, width, height, speed float64, maxHealth int) *EnemyState {
	return &EnemyState{
		ActorState: ActorState{Actor: Actor{
			ID:        id,
			X:         x,
			Y:         y,
			Direction: DefaultDirection,
			Health:    maxHealth,
			MaxHealth: maxHealth,
		}},
		Width:  width,
		Height: height,
		Speed:  speed,
		Blackboard: Blackboard{
			Action:  AIActionIdle,
			Heading: DefaultDirection,
		},
	}
}

// Snapshot returns the wire-visible enemy record.
func (s *EnemyState) Snapshot() Enemy {
	direction := s.Direction
	if direction == "" {
		direction = DefaultDirection
	}
	actor := s.Actor
	actor.Direction = direction
	return Enemy{
		Actor:      actor,
		Width:      s.Width,
		Height:     s.Height,
		Speed:      s.Speed,
		FrameIndex: s.FrameIndex,
		Action:     s.Blackboard.Action,
	}
}
