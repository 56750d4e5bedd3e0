package world

import "math/rand"

// Rect is an axis-aligned rectangle in world units. Bounds are inclusive.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Contains reports whether the point lies within the rectangle, bounds
// inclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// RandomPoint picks a uniform point inside the rectangle.
func (r Rect) RandomPoint(rng *rand.Rand) (float64, float64) {
	if rng == nil {
		return r.X + r.W/2, r.Y + r.H/2
	}
	return r.X + rng.Float64()*r.W, r.Y + rng.Float64()*r.H
}

// IsInSafeZone reports whether the position lies inside any safe zone.
// Safe zones suppress player-target attack initiation and resolution.
func (m *Map) IsInSafeZone(x, y float64) bool {
	for _, zone := range m.safeZones {
		if zone.Contains(x, y) {
			return true
		}
	}
	return false
}

// SafeZones returns the safe-zone rectangles for snapshots.
func (m *Map) SafeZones() []Rect {
	zones := make([]Rect, len(m.safeZones))
	copy(zones, m.safeZones)
	return zones
}

// SpawnZone returns the designated spawn safe zone.
func (m *Map) SpawnZone() Rect {
	return m.spawnZone
}

// SpawnPoint picks a uniform spawn position inside the spawn zone.
func (m *Map) SpawnPoint(rng *rand.Rand) (float64, float64) {
	return m.spawnZone.RandomPoint(rng)
}
