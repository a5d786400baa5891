package blueprint

// Wall map cell values. Anything >= RoomOutside is a room index assigned by
// FindRooms; RoomOutside itself marks the region connected to an open grid
// boundary.
const (
	CellWall      = -1
	CellUnvisited = 0
	RoomOutside   = 1
)

// ItemTile is a single item stack recorded at a blueprint cell.
// Cost and Weight are derived by UpdateStats.
type ItemTile struct {
	DefName    string
	StuffDef   string
	StackCount int32
	Cost       float64
	Weight     float64
}

// TerrainTile is the floor recorded at a blueprint cell. Terrain contributes
// cost to blueprint totals but never weight.
type TerrainTile struct {
	DefName string
	Cost    float64
}

// Blueprint is a fixed-size width×height grid bundle owned by one consumer.
// It is filled once from stored snapshot data; room segmentation and stats
// are computed on demand and cached until the instance is discarded.
// Never shared between goroutines.
type Blueprint struct {
	width  int
	height int

	wallMap [][]int
	terrain [][]*TerrainTile
	items   [][][]*ItemTile

	totalCost    float64
	itemsDensity float64
	roomCount    int
	roomAreas    []int
}

// New creates an empty blueprint with the given dimensions.
func New(width, height int) *Blueprint {
	b := &Blueprint{
		width:   width,
		height:  height,
		wallMap: make([][]int, width),
		terrain: make([][]*TerrainTile, width),
		items:   make([][][]*ItemTile, width),
	}
	for x := 0; x < width; x++ {
		b.wallMap[x] = make([]int, height)
		b.terrain[x] = make([]*TerrainTile, height)
		b.items[x] = make([][]*ItemTile, height)
	}
	return b
}

func (b *Blueprint) Width() int  { return b.width }
func (b *Blueprint) Height() int { return b.height }

// InBounds reports whether (x, z) addresses a cell of the grid.
func (b *Blueprint) InBounds(x, z int) bool {
	return x >= 0 && x < b.width && z >= 0 && z < b.height
}

// CellAt returns the raw wall map value at (x, z): CellWall, CellUnvisited
// or a room index.
func (b *Blueprint) CellAt(x, z int) int {
	return b.wallMap[x][z]
}

// SetWallAt marks (x, z) as a wall. No-op out of bounds.
func (b *Blueprint) SetWallAt(x, z int) {
	if !b.InBounds(x, z) {
		return
	}
	b.wallMap[x][z] = CellWall
}

// SetTerrainAt records the floor at (x, z). No-op out of bounds.
func (b *Blueprint) SetTerrainAt(x, z int, t TerrainTile) {
	if !b.InBounds(x, z) {
		return
	}
	b.terrain[x][z] = &t
}

// TerrainAt returns the floor at (x, z), or nil.
func (b *Blueprint) TerrainAt(x, z int) *TerrainTile {
	return b.terrain[x][z]
}

// AddItemAt appends an item stack at (x, z). No-op out of bounds.
func (b *Blueprint) AddItemAt(x, z int, it ItemTile) {
	if !b.InBounds(x, z) {
		return
	}
	b.items[x][z] = append(b.items[x][z], &it)
}

// ItemsAt returns the item stacks recorded at (x, z).
func (b *Blueprint) ItemsAt(x, z int) []*ItemTile {
	return b.items[x][z]
}

// TotalCost returns the aggregate market cost computed by the last
// UpdateStats(true) pass.
func (b *Blueprint) TotalCost() float64 { return b.totalCost }

// ItemsDensity returns item stacks per cell from the last UpdateStats pass.
func (b *Blueprint) ItemsDensity() float64 { return b.itemsDensity }

// RoomCount returns the highest room index + 1 after FindRooms.
func (b *Blueprint) RoomCount() int { return b.roomCount }

// RoomAreas returns cell counts per room index. Index 0 is an unused
// placeholder so the slice aligns with room indices.
func (b *Blueprint) RoomAreas() []int { return b.roomAreas }

// RoomMapCopy returns an independent copy of the wall map, for attaching to
// placement options after generation.
func (b *Blueprint) RoomMapCopy() [][]int {
	out := make([][]int, b.width)
	for x := 0; x < b.width; x++ {
		out[x] = make([]int, b.height)
		copy(out[x], b.wallMap[x])
	}
	return out
}
