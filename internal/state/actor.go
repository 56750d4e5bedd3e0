package state

import "math"

// Actor captures the shared state for any living entity in the world.
type Actor struct {
	ID        string    `json:"id"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Direction Direction `json:"direction"`
	Health    int       `json:"health"`
	MaxHealth int       `json:"maxHealth"`
}

// ActorState wraps an Actor with mutation helpers. All mutation happens under
// the hub's world lock.
type ActorState struct {
	Actor
}

// ApplyHealthDelta adjusts health while clamping to [0, MaxHealth]. It
// returns true when the stored value actually changes.
func (s *ActorState) ApplyHealthDelta(delta int) bool {
	if delta == 0 {
		return false
	}
	next := s.Health + delta
	if next < 0 {
		next = 0
	}
	if s.MaxHealth > 0 && next > s.MaxHealth {
		next = s.MaxHealth
	}
	if next == s.Health {
		return false
	}
	s.Health = next
	return true
}

// ClampHealth forces a client-echoed health value into [0, MaxHealth].
func ClampHealth(health, maxHealth int) int {
	if health < 0 {
		return 0
	}
	if maxHealth > 0 && health > maxHealth {
		return maxHealth
	}
	return health
}

// DistanceTo returns the Euclidean distance between two positions.
func DistanceTo(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
