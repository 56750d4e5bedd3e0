package world

import "math/rand"

// CollidesWall reports whether any corner of the bounding box anchored at
// (x, y) lands on a WALL tile. Callers reject the proposed position wholesale
// on collision; there is no axis sliding.
func (m *Map) CollidesWall(x, y, width, height float64) bool {
	corners := [4][2]float64{
		{x, y},
		{x + width, y},
		{x, y + height},
		{x + width, y + height},
	}
	for _, corner := range corners {
		if m.TileAt(corner[0], corner[1]) == TileWall {
			return true
		}
	}
	return false
}

// RandomOpenPosition samples passable positions until the bounding box fits,
// used for enemy and item placement at world initialization. Positions inside
// safe zones are skipped so hostile spawns cannot camp the spawn area.
func (m *Map) RandomOpenPosition(rng *rand.Rand, width, height float64) (float64, float64) {
	for {
		x := rng.Float64() * (Width - width)
		y := rng.Float64() * (Height - height)
		if m.CollidesWall(x, y, width, height) {
			continue
		}
		if m.IsInSafeZone(x, y) {
			continue
		}
		return x, y
	}
}
