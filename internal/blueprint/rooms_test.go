package blueprint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// countRoomCells tallies cells per room index straight from the wall map,
// for cross-checking RoomAreas.
func countRoomCells(b *Blueprint) map[int]int {
	counts := make(map[int]int)
	for x := 0; x < b.Width(); x++ {
		for z := 0; z < b.Height(); z++ {
			if v := b.CellAt(x, z); v > CellUnvisited {
				counts[v]++
			}
		}
	}
	return counts
}

func requireAreasConsistent(t *testing.T, b *Blueprint) {
	t.Helper()
	counts := countRoomCells(b)
	for index, area := range b.RoomAreas() {
		if index == 0 {
			require.Zero(t, area, "index 0 is a placeholder")
			continue
		}
		require.Equalf(t, counts[index], area, "area of room %d", index)
	}
}

func TestFindRooms_AllOpen(t *testing.T) {
	b := New(10, 10)
	b.FindRooms()

	require.Equal(t, 2, b.RoomCount())
	require.Equal(t, []int{0, 100}, b.RoomAreas())
	for x := 0; x < 10; x++ {
		for z := 0; z < 10; z++ {
			require.Equal(t, RoomOutside, b.CellAt(x, z))
		}
	}
}

func TestFindRooms_PartitionedByWallLine(t *testing.T) {
	b := New(10, 10)
	for z := 0; z < 10; z++ {
		b.SetWallAt(5, z)
	}
	b.FindRooms()

	require.Equal(t, 3, b.RoomCount(), "two rooms plus the placeholder index")

	areas := b.RoomAreas()
	require.Len(t, areas, 3)
	require.Equal(t, 90, areas[1]+areas[2], "areas sum to open cell count")
	requireAreasConsistent(t, b)
}

func TestFindRooms_EnclosedInterior(t *testing.T) {
	// 5×5 with a wall ring around the center cell. The outer region scans
	// first and gets the outside index, the pocket becomes room 2.
	b := New(5, 5)
	for _, c := range [][2]int{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {3, 2}, {1, 3}, {2, 3}, {3, 3}} {
		b.SetWallAt(c[0], c[1])
	}
	b.FindRooms()

	require.Equal(t, 3, b.RoomCount())
	require.Equal(t, RoomOutside, b.CellAt(0, 0))
	require.Equal(t, 2, b.CellAt(2, 2))
	require.Equal(t, []int{0, 16, 1}, b.RoomAreas())
}

func TestFindRooms_Resegments(t *testing.T) {
	b := New(10, 10)
	for z := 0; z < 10; z++ {
		b.SetWallAt(5, z)
	}
	b.FindRooms()
	require.Equal(t, 3, b.RoomCount())

	// Re-running from the same walls must give identical segmentation.
	b.FindRooms()
	require.Equal(t, 3, b.RoomCount())
	requireAreasConsistent(t, b)
}

func TestRemoveWall_BoundaryResolvesToOutside(t *testing.T) {
	b := New(10, 10)
	for z := 0; z < 10; z++ {
		b.SetWallAt(0, z)
	}
	b.FindRooms()

	b.RemoveWall(0, 4)
	require.Equal(t, RoomOutside, b.CellAt(0, 4))
	requireAreasConsistent(t, b)
}

func TestRemoveWall_Idempotent(t *testing.T) {
	b := New(10, 10)
	for z := 0; z < 10; z++ {
		b.SetWallAt(5, z)
	}
	b.FindRooms()

	b.RemoveWall(5, 5)
	snapshot := b.RoomMapCopy()
	areas := append([]int(nil), b.RoomAreas()...)

	b.RemoveWall(5, 5)
	require.Equal(t, snapshot, b.RoomMapCopy(), "second call must be a no-op")
	require.Equal(t, areas, b.RoomAreas())
}

func TestRemoveWall_MergesIntoOutside(t *testing.T) {
	b := New(10, 10)
	for z := 0; z < 10; z++ {
		b.SetWallAt(5, z)
	}
	b.FindRooms()

	b.RemoveWall(5, 5)

	// Both halves touched the boundary, so everything open is now outside.
	for x := 0; x < 10; x++ {
		for z := 0; z < 10; z++ {
			if v := b.CellAt(x, z); v != CellWall {
				require.Equal(t, RoomOutside, v)
			}
		}
	}
	require.Equal(t, 91, b.RoomAreas()[1])
	requireAreasConsistent(t, b)
}

func TestRemoveWall_MergesInteriorRooms(t *testing.T) {
	// 9×5, boundary fully walled, interior split into three rooms by wall
	// columns at x=3 and x=5.
	b := New(9, 5)
	for x := 0; x < 9; x++ {
		b.SetWallAt(x, 0)
		b.SetWallAt(x, 4)
	}
	for z := 0; z < 5; z++ {
		b.SetWallAt(0, z)
		b.SetWallAt(8, z)
		b.SetWallAt(3, z)
		b.SetWallAt(5, z)
	}
	b.FindRooms()
	require.Equal(t, 4, b.RoomCount())

	left := b.CellAt(4, 2)
	right := b.CellAt(6, 2)
	require.NotEqual(t, left, right)

	b.RemoveWall(5, 2)

	merged := b.CellAt(5, 2)
	require.Contains(t, []int{left, right}, merged, "an arbitrary neighbor index survives")
	require.Equal(t, merged, b.CellAt(4, 2))
	require.Equal(t, merged, b.CellAt(6, 2))
	require.Equal(t, 10, b.RoomAreas()[merged], "3 + 6 cells plus the opened one")
	requireAreasConsistent(t, b)
}

func TestRemoveWall_NoOpCases(t *testing.T) {
	b := New(5, 5)
	b.FindRooms()

	// Out of bounds and non-wall cells are defensively ignored.
	b.RemoveWall(-1, 2)
	b.RemoveWall(2, 17)
	b.RemoveWall(2, 2)

	require.Equal(t, []int{0, 25}, b.RoomAreas())
}

func TestMarkRoomAsOpenedAt(t *testing.T) {
	b := New(5, 5)
	for _, c := range [][2]int{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {3, 2}, {1, 3}, {2, 3}, {3, 3}} {
		b.SetWallAt(c[0], c[1])
	}
	b.FindRooms()
	require.Equal(t, 2, b.CellAt(2, 2))

	b.MarkRoomAsOpenedAt(2, 2)
	require.Equal(t, CellWall, b.CellAt(2, 2))
	require.Zero(t, b.RoomAreas()[2])
	requireAreasConsistent(t, b)
}

func TestMarkRoomAsOpenedAt_OnlyRealRooms(t *testing.T) {
	b := New(5, 5)
	b.SetWallAt(2, 2)
	b.FindRooms()

	// Outside and walls are left alone.
	b.MarkRoomAsOpenedAt(0, 0)
	require.Equal(t, RoomOutside, b.CellAt(0, 0))

	b.MarkRoomAsOpenedAt(2, 2)
	require.Equal(t, CellWall, b.CellAt(2, 2))

	b.MarkRoomAsOpenedAt(-3, 0)
	requireAreasConsistent(t, b)
}
