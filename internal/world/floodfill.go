package world

// FloodFill traverses the tile graph breadth-first from origin, visiting
// every passable tile within maxHops hops. The visitor receives each tile
// together with its hop distance (origin is visited at distance 0).
// Returning false from the visitor aborts the whole fill.
//
// Impassable tiles are neither visited nor expanded. Traversal uses an
// explicit queue, so grid size never threatens the call stack.
func FloodFill(g TileGraph, origin Tile, maxHops int, visit func(t Tile, hops int) bool) {
	if g.IsImpassable(origin) {
		return
	}

	type entry struct {
		tile Tile
		hops int
	}

	visited := map[Tile]struct{}{origin: {}}
	queue := []entry{{tile: origin, hops: 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if !visit(cur.tile, cur.hops) {
			return
		}
		if cur.hops >= maxHops {
			continue
		}

		for _, next := range g.Neighbors(cur.tile) {
			if _, seen := visited[next]; seen {
				continue
			}
			if g.IsImpassable(next) {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, entry{tile: next, hops: cur.hops + 1})
		}
	}
}
