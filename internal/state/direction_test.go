package state

import "testing"

func TestDeriveFacing(t *testing.T) {
	cases := []struct {
		name     string
		dx, dy   float64
		fallback Direction
		want     Direction
	}{
		{"east", 10, 0, DirectionDown, DirectionRight},
		{"west", -10, 0, DirectionDown, DirectionLeft},
		{"south", 0, 10, DirectionDown, DirectionDown},
		{"north", 0, -10, DirectionDown, DirectionUp},
		{"dominant x", 10, 5, DirectionDown, DirectionRight},
		{"dominant y", 5, 10, DirectionDown, DirectionDown},
		{"tie favors horizontal", 10, 10, DirectionDown, DirectionRight},
		{"negative tie favors horizontal", -10, -10, DirectionDown, DirectionLeft},
		{"idle keeps fallback", 0, 0, DirectionLeft, DirectionLeft},
		{"idle empty fallback", 0, 0, "", DirectionDown},
	}
	for _, tc := range cases {
		if got := DeriveFacing(tc.dx, tc.dy, tc.fallback); got != tc.want {
			t.Fatalf("%s: DeriveFacing(%v, %v) = %q, want %q", tc.name, tc.dx, tc.dy, got, tc.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	if _, ok := ParseDirection("up-left"); !ok {
		t.Fatalf("expected diagonal directions to parse")
	}
	if _, ok := ParseDirection("sideways"); ok {
		t.Fatalf("expected unknown directions to be rejected")
	}
	if _, ok := ParseDirection(""); ok {
		t.Fatalf("expected the empty string to be rejected")
	}
}

func TestDirectionToVectorIsUnitLength(t *testing.T) {
	directions := []Direction{
		DirectionUp, DirectionDown, DirectionLeft, DirectionRight,
		DirectionUpLeft, DirectionUpRight, DirectionDownLeft, DirectionDownRight,
	}
	for _, dir := range directions {
		x, y := DirectionToVector(dir)
		length := x*x + y*y
		if length < 0.999 || length > 1.001 {
			t.Fatalf("expected unit vector for %q, got (%v, %v)", dir, x, y)
		}
	}
}
