package blueprint

import (
	"log/slog"

	"github.com/ruinworks/ruingen/internal/data"
)

// UpdateStats recomputes per-item weight and, when includeCost is set,
// per-item and per-terrain market cost plus the blueprint totals, in a
// single pass over all cells.
//
// An item or terrain tile whose cost cannot be resolved (missing def, bad
// material) is a recoverable local failure: its cost stays zero and the
// pass continues. Terrain contributes cost but never weight.
func (b *Blueprint) UpdateStats(includeCost bool) {
	itemCount := 0
	totalCost := 0.0

	for x := 0; x < b.width; x++ {
		for z := 0; z < b.height; z++ {
			if t := b.terrain[x][z]; t != nil && includeCost {
				cost, err := unitMarketCost(t.DefName, "")
				if err != nil {
					slog.Debug("terrain cost unresolved", "def", t.DefName, "err", err)
				} else {
					t.Cost = cost
					totalCost += cost
				}
			}

			for _, it := range b.items[x][z] {
				it.Weight = itemWeight(it.DefName, it.StackCount)
				if includeCost {
					cost, err := unitMarketCost(it.DefName, it.StuffDef)
					if err != nil {
						slog.Debug("item cost unresolved", "def", it.DefName, "err", err)
					} else {
						it.Cost = cost * float64(it.StackCount)
						totalCost += it.Cost
					}
				}
				itemCount++
			}
		}
	}

	if includeCost {
		b.totalCost = totalCost
	}
	b.itemsDensity = float64(itemCount) / float64(b.width*b.height)
}

// itemWeight derives stack weight from the def's mass table. A mass that
// resolves to exactly zero falls back to 0.5 per stacked unit, and 1.0 as
// the last resort, so nothing downstream divides by a zero weight.
func itemWeight(defName string, stackCount int32) float64 {
	var mass float64
	if def := data.GetThingDef(defName); def != nil {
		mass = def.Mass()
	}

	w := mass * float64(stackCount)
	if w == 0 {
		w = 0.5 * float64(stackCount)
	}
	if w == 0 {
		w = 1.0
	}
	return w
}
