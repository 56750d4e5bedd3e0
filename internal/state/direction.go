package state

import "math"

// Direction is the 8-way facing reported by clients and mirrored to them.
type Direction string

const (
	DirectionUp        Direction = "up"
	DirectionDown      Direction = "down"
	DirectionLeft      Direction = "left"
	DirectionRight     Direction = "right"
	DirectionUpLeft    Direction = "up-left"
	DirectionUpRight   Direction = "up-right"
	DirectionDownLeft  Direction = "down-left"
	DirectionDownRight Direction = "down-right"

	DefaultDirection Direction = DirectionDown
)

// ParseDirection validates a direction string received from the client.
func ParseDirection(value string) (Direction, bool) {
	switch Direction(value) {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight,
		DirectionUpLeft, DirectionUpRight, DirectionDownLeft, DirectionDownRight:
		return Direction(value), true
	default:
		return "", false
	}
}

// CardinalDirections lists the four axis-aligned directions used by wandering
// enemies.
var CardinalDirections = [4]Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

// DeriveFacing picks the cardinal direction that best matches a movement
// vector: the dominant axis wins and ties favor horizontal. Idle vectors fall
// back to the previous facing.
func DeriveFacing(dx, dy float64, fallback Direction) Direction {
	if fallback == "" {
		fallback = DefaultDirection
	}

	const epsilon = 1e-6
	if math.Abs(dx) < epsilon {
		dx = 0
	}
	if math.Abs(dy) < epsilon {
		dy = 0
	}
	if dx == 0 && dy == 0 {
		return fallback
	}

	if math.Abs(dx) >= math.Abs(dy) {
		if dx >= 0 {
			return DirectionRight
		}
		return DirectionLeft
	}
	if dy > 0 {
		return DirectionDown
	}
	return DirectionUp
}

// DirectionToVector returns a unit vector for a cardinal direction. Diagonal
// directions resolve to their normalized components.
func DirectionToVector(direction Direction) (float64, float64) {
	const diag = math.Sqrt2 / 2
	switch direction {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	case DirectionUpLeft:
		return -diag, -diag
	case DirectionUpRight:
		return diag, -diag
	case DirectionDownLeft:
		return -diag, diag
	case DirectionDownRight:
		return diag, diag
	default:
		return 0, 1
	}
}
