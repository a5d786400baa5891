package scatter

// Options is the tunable parameter bundle controlling one ruin-placement
// pass. A process-wide default is created once and treated as immutable:
// every planning pass works on a Copy and discards it after one generation.
type Options struct {
	DensityMultiplier       float64
	MinRadius               float64
	MaxRadius               float64
	ScavengingMultiplier    float64
	DeteriorationMultiplier float64
	HostileChance           float64

	ItemCostLimit          float64
	MinimumCostRequired    float64
	MinimumDensityRequired float64
	MinimumAreaRequired    int

	DeleteLowQuality           bool
	ShouldKeepDefencesAndPower bool
	ShouldLoadPartOnly         bool
	ShouldAddRaidTriggers      bool
	ClaimableBlocks            bool
	AllowFriendlyRaids         bool

	// UncoveredCost is the signed budget remaining after the structure's own
	// cost is subtracted from a target budget. Negative when the structure
	// overshoots.
	UncoveredCost float64

	// Filled in post-placement by the resolver.
	BottomLeft Cell
	RoomMap    [][]int
}

// DefaultOptions returns the base configuration for common ruin scatter.
func DefaultOptions() Options {
	return Options{
		DensityMultiplier:    1.0,
		MinRadius:            8,
		MaxRadius:            16,
		ScavengingMultiplier: 1.0,
		HostileChance:        0.1,
		ItemCostLimit:        1000,
		DeleteLowQuality:     true,
		ClaimableBlocks:      true,
	}
}

// Copy returns an independent copy. RoomMap is duplicated so a pass can
// never alias grid state with another pass or with the default.
func (o Options) Copy() Options {
	out := o
	if o.RoomMap != nil {
		out.RoomMap = make([][]int, len(o.RoomMap))
		for i, col := range o.RoomMap {
			out.RoomMap[i] = append([]int(nil), col...)
		}
	}
	return out
}
