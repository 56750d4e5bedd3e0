package world

// TileKind enumerates the static tile grid cells.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileDoor
	TileFloor
)

// Grid geometry. Positions elsewhere in the server are world units; divide by
// TileSize to reach cell coordinates.
const (
	GridWidth  = 200
	GridHeight = 200
	TileSize   = 64.0

	// Width and Height are the world-unit extents of the map.
	Width  = GridWidth * TileSize
	Height = GridHeight * TileSize
)

// room is a walled rectangle in cell coordinates with one door centered on
// its left edge.
type room struct {
	x, y, w, h int
}

func (r room) doorCell() (int, int) {
	return r.x, r.y + r.h/2
}

// The fixed room set. Generation must stay bit-identical everywhere collision
// is checked, so the layout is compiled in rather than randomized.
var rooms = []room{
	{x: 20, y: 20, w: 18, h: 12},
	{x: 60, y: 24, w: 16, h: 14},
	{x: 30, y: 60, w: 20, h: 16},
	{x: 70, y: 70, w: 14, h: 10},
	{x: 120, y: 40, w: 22, h: 18},
	{x: 150, y: 120, w: 18, h: 18},
}

// Map is the immutable tile grid plus safe-zone geometry. Build one with
// Generate and share it freely; it is never mutated afterwards.
type Map struct {
	tiles     [GridHeight][GridWidth]TileKind
	safeZones []Rect
	spawnZone Rect
}

// Generate builds the world map. The procedure is deterministic: open floor,
// border walls, the fixed room set, and straight corridors carved between
// consecutive room doors.
func Generate() *Map {
	m := &Map{}

	for cy := 0; cy < GridHeight; cy++ {
		for cx := 0; cx < GridWidth; cx++ {
			m.tiles[cy][cx] = TileFloor
		}
	}

	// Border walls.
	for cx := 0; cx < GridWidth; cx++ {
		m.tiles[0][cx] = TileWall
		m.tiles[GridHeight-1][cx] = TileWall
	}
	for cy := 0; cy < GridHeight; cy++ {
		m.tiles[cy][0] = TileWall
		m.tiles[cy][GridWidth-1] = TileWall
	}

	for _, r := range rooms {
		m.carveRoom(r)
	}

	// Straight corridors between consecutive room doors: horizontal first,
	// then vertical, carved one cell in front of each door.
	for i := 1; i < len(rooms); i++ {
		prevX, prevY := rooms[i-1].doorCell()
		curX, curY := rooms[i].doorCell()
		m.carveHorizontal(prevX-1, curX-1, prevY)
		m.carveVertical(prevY, curY, curX-1)
	}

	m.spawnZone = Rect{X: 2 * TileSize, Y: 2 * TileSize, W: 8 * TileSize, H: 8 * TileSize}
	m.safeZones = []Rect{
		m.spawnZone,
		{X: 96 * TileSize, Y: 96 * TileSize, W: 6 * TileSize, H: 6 * TileSize},
	}

	return m
}

func (m *Map) carveRoom(r room) {
	for cy := r.y; cy <= r.y+r.h; cy++ {
		for cx := r.x; cx <= r.x+r.w; cx++ {
			if !inGrid(cx, cy) {
				continue
			}
			onEdge := cx == r.x || cx == r.x+r.w || cy == r.y || cy == r.y+r.h
			if onEdge {
				m.tiles[cy][cx] = TileWall
			} else {
				m.tiles[cy][cx] = TileFloor
			}
		}
	}
	doorX, doorY := r.doorCell()
	if inGrid(doorX, doorY) {
		m.tiles[doorY][doorX] = TileDoor
	}
}

func (m *Map) carveHorizontal(x1, x2, cy int) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	for cx := x1; cx <= x2; cx++ {
		m.carveCell(cx, cy)
	}
}

func (m *Map) carveVertical(y1, y2, cx int) {
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	for cy := y1; cy <= y2; cy++ {
		m.carveCell(cx, cy)
	}
}

// carveCell opens a corridor cell. The outer border stays closed; doors stay
// doors.
func (m *Map) carveCell(cx, cy int) {
	if cx <= 0 || cy <= 0 || cx >= GridWidth-1 || cy >= GridHeight-1 {
		return
	}
	if m.tiles[cy][cx] == TileDoor {
		return
	}
	m.tiles[cy][cx] = TileFloor
}

func inGrid(cx, cy int) bool {
	return cx >= 0 && cy >= 0 && cx < GridWidth && cy < GridHeight
}

// TileAtCell looks a tile up by cell coordinates. Out-of-bounds cells read as
// WALL so collision fails closed.
func (m *Map) TileAtCell(cx, cy int) TileKind {
	if !inGrid(cx, cy) {
		return TileWall
	}
	return m.tiles[cy][cx]
}

// TileAt looks a tile up by world-unit position.
func (m *Map) TileAt(x, y float64) TileKind {
	if x < 0 || y < 0 {
		return TileWall
	}
	return m.TileAtCell(int(x/TileSize), int(y/TileSize))
}

// IsPassable reports whether entities may occupy the tile kind.
func IsPassable(kind TileKind) bool {
	return kind == TileFloor || kind == TileDoor
}
