package world

import "math"

const (
	// DefaultProximityHops bounds the proximity flood fill.
	DefaultProximityHops = 16

	// proximityFloor is the factor returned when nothing hostile is in range.
	proximityFloor = 0.05

	settlementWeight = 6.0
	siteWeight       = 2.0
)

// HostileProximity scores how close hostile settlements and sites sit to the
// origin tile. Higher means more inhabited surroundings.
//
// A hostile object directly on the origin short-circuits to 1.0: the spot is
// already adjacent to inhabited content and no search is needed. Otherwise a
// breadth-first fill bounded by maxHops accumulates, for every visited tile
// at hop distance d > 0, 6/d^1.5 per hostile settlement and 2/d^2 per hostile
// site on it, starting from a floor of 0.05. Contributions are additive
// across the whole fill.
//
// Pure function of the graph snapshot at call time.
func HostileProximity(g TileGraph, origin Tile, maxHops int) float64 {
	for _, obj := range g.ObjectsAt(origin) {
		if obj.Hostile {
			return 1.0
		}
	}

	factor := proximityFloor
	FloodFill(g, origin, maxHops, func(t Tile, hops int) bool {
		if hops == 0 {
			return true
		}
		for _, obj := range g.ObjectsAt(t) {
			if !obj.Hostile {
				continue
			}
			d := float64(hops)
			switch obj.Kind {
			case KindSettlement:
				factor += settlementWeight / math.Pow(d, 1.5)
			case KindSite:
				factor += siteWeight / (d * d)
			}
		}
		return true
	})

	return factor
}
