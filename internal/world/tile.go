package world

// Tile identifies a single tile of the world map.
type Tile int32

// ObjectKind classifies a point of interest sitting on a world tile.
type ObjectKind uint8

const (
	KindSettlement ObjectKind = iota
	KindSite
)

// String returns a human-readable kind name for logging.
func (k ObjectKind) String() string {
	switch k {
	case KindSettlement:
		return "settlement"
	case KindSite:
		return "site"
	default:
		return "unknown"
	}
}

// MapObject is a point of interest located on a world tile.
type MapObject struct {
	Kind    ObjectKind
	Hostile bool
}

// TileGraph is the read-only world adjacency consumed by proximity scoring.
// Implementations belong to the host simulation; this package never mutates
// the graph.
type TileGraph interface {
	// Neighbors returns the tiles adjacent to t.
	Neighbors(t Tile) []Tile

	// IsImpassable reports whether t is excluded from traversal.
	IsImpassable(t Tile) bool

	// ObjectsAt returns the points of interest located on t.
	ObjectsAt(t Tile) []MapObject
}
