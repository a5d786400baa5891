package blueprint

var orthogonal = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// FindRooms re-segments the grid into enclosed rooms. Every non-wall cell is
// reset and then assigned a room index by breadth-first fill: the scan runs
// row-major, each unvisited seed opens a new room. The region touching an
// open boundary gets index RoomOutside (1) because it is seeded first along
// the edge scan order.
//
// Afterwards every cell is either CellWall or a positive room index,
// RoomCount is the highest index + 1 and RoomAreas aligns with indices
// (index 0 stays a zero placeholder).
func (b *Blueprint) FindRooms() {
	for x := 0; x < b.width; x++ {
		for z := 0; z < b.height; z++ {
			if b.wallMap[x][z] != CellWall {
				b.wallMap[x][z] = CellUnvisited
			}
		}
	}

	areas := []int{0}
	next := RoomOutside

	for z := 0; z < b.height; z++ {
		for x := 0; x < b.width; x++ {
			if b.wallMap[x][z] != CellUnvisited {
				continue
			}
			areas = append(areas, b.fillRoom(x, z, next))
			next++
		}
	}

	b.roomCount = next
	b.roomAreas = areas
}

// fillRoom assigns index to every cell reachable from the seed through
// orthogonal non-wall neighbors and returns the region's area. Explicit
// queue, no recursion.
func (b *Blueprint) fillRoom(seedX, seedZ, index int) int {
	type cell struct{ x, z int }

	b.wallMap[seedX][seedZ] = index
	queue := []cell{{seedX, seedZ}}
	area := 0

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		area++

		for _, d := range orthogonal {
			nx, nz := c.x+d[0], c.z+d[1]
			if !b.InBounds(nx, nz) || b.wallMap[nx][nz] != CellUnvisited {
				continue
			}
			b.wallMap[nx][nz] = index
			queue = append(queue, cell{nx, nz})
		}
	}

	return area
}

// RemoveWall opens the wall cell at (x, z) and merges the rooms it joined.
// Mutates only the wall map, never terrain or items. No-op when (x, z) is
// out of bounds or not currently a wall, so repeated calls on the same cell
// are idempotent.
//
// A cell on the grid boundary always resolves to RoomOutside. An interior
// cell joins the distinct room indices of its orthogonal neighbors: if
// RoomOutside is among them everything merges into it, otherwise an
// arbitrary neighbor index survives. The merge relabels the full grid —
// wall removal is an infrequent deterioration event, not a hot path.
func (b *Blueprint) RemoveWall(x, z int) {
	if !b.InBounds(x, z) || b.wallMap[x][z] != CellWall {
		return
	}

	if x == 0 || z == 0 || x == b.width-1 || z == b.height-1 {
		b.wallMap[x][z] = RoomOutside
		b.growArea(RoomOutside, 1)
		return
	}

	var rooms []int
	for _, d := range orthogonal {
		v := b.wallMap[x+d[0]][z+d[1]]
		if v <= CellUnvisited {
			continue
		}
		if !containsRoom(rooms, v) {
			rooms = append(rooms, v)
		}
	}

	if len(rooms) == 0 {
		// Pocket fully enclosed in walls; the next FindRooms pass picks it up.
		b.wallMap[x][z] = CellUnvisited
		return
	}

	survivor := rooms[0]
	if containsRoom(rooms, RoomOutside) {
		survivor = RoomOutside
	}

	b.wallMap[x][z] = survivor
	b.growArea(survivor, 1)
	for _, r := range rooms {
		if r != survivor {
			b.relabelRoom(r, survivor)
		}
	}
}

// MarkRoomAsOpenedAt deletes the room containing (x, z) from the
// segmentation by relabeling all its cells to wall. Only real interior
// rooms (index >= 2) qualify; outside, walls and unprocessed cells are
// left alone.
func (b *Blueprint) MarkRoomAsOpenedAt(x, z int) {
	if !b.InBounds(x, z) {
		return
	}
	index := b.wallMap[x][z]
	if index <= RoomOutside {
		return
	}

	for cx := 0; cx < b.width; cx++ {
		for cz := 0; cz < b.height; cz++ {
			if b.wallMap[cx][cz] == index {
				b.wallMap[cx][cz] = CellWall
			}
		}
	}
	if index < len(b.roomAreas) {
		b.roomAreas[index] = 0
	}
}

// relabelRoom rewrites every cell carrying index from to index to and moves
// the area tally with it.
func (b *Blueprint) relabelRoom(from, to int) {
	for x := 0; x < b.width; x++ {
		for z := 0; z < b.height; z++ {
			if b.wallMap[x][z] == from {
				b.wallMap[x][z] = to
			}
		}
	}
	if from < len(b.roomAreas) {
		b.growArea(to, b.roomAreas[from])
		b.roomAreas[from] = 0
	}
}

func (b *Blueprint) growArea(index, delta int) {
	if index >= 0 && index < len(b.roomAreas) {
		b.roomAreas[index] += delta
	}
}

func containsRoom(rooms []int, v int) bool {
	for _, r := range rooms {
		if r == v {
			return true
		}
	}
	return false
}
