package items

import "math/rand"

// Catalog templates for the starting world drop. Damage, healing and defense
// values mirror the client's item table.
var spawnTemplates = []func() Item{
	func() Item { return NewSword(15) },
	func() Item { return NewStaff(12) },
	func() Item { return NewPotion(25) },
	func() Item { return NewShield(5) },
}

// PositionPicker returns a legal drop position for a new ground item.
type PositionPicker func() (x, y float64)

// SpawnInitial mints the starting ground items, one of each template per
// round, positioned by the supplied picker.
func SpawnInitial(count int, pick PositionPicker) []GroundItem {
	if count <= 0 || pick == nil {
		return nil
	}
	spawned := make([]GroundItem, 0, count)
	for i := 0; i < count; i++ {
		x, y := pick()
		item := spawnTemplates[i%len(spawnTemplates)]()
		spawned = append(spawned, GroundItem{Item: item, X: x, Y: y})
	}
	return spawned
}

// RandomKind returns a uniformly chosen item kind, used by drop tables.
func RandomKind(rng *rand.Rand) Kind {
	kinds := [...]Kind{KindSword, KindStaff, KindPotion, KindShield}
	if rng == nil {
		return kinds[rand.Intn(len(kinds))]
	}
	return kinds[rng.Intn(len(kinds))]
}
