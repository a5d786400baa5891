package blueprint

import (
	"fmt"

	"github.com/ruinworks/ruingen/internal/data"
)

// unitMarketCost resolves the market cost of a single unit of defName made
// of stuffName. An empty stuffName falls back to the def's default stuff.
//
// The cost is the recursive sum of count·cost(component) over the def's
// cost list, plus stuffCount·stuffMarketValue/volumePerUnit when a material
// applies. When both sums are zero the def's own base market value is used,
// which covers leaf items with no recipe.
func unitMarketCost(defName, stuffName string) (float64, error) {
	def, err := data.ResolveThingDef(defName)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, c := range def.CostList() {
		sub, err := unitMarketCost(c.DefName, "")
		if err != nil {
			return 0, fmt.Errorf("component of %q: %w", defName, err)
		}
		total += float64(c.Count) * sub
	}

	if n := def.CostStuffCount(); n > 0 {
		material := stuffName
		if material == "" {
			material = def.DefaultStuff()
		}
		if material != "" {
			stuff, err := data.ResolveThingDef(material)
			if err != nil {
				return 0, fmt.Errorf("stuff of %q: %w", defName, err)
			}
			if !stuff.IsStuff() || stuff.VolumePerUnit() == 0 {
				return 0, fmt.Errorf("def %q cannot serve as stuff for %q", material, defName)
			}
			total += float64(n) * stuff.StuffMarketValue() / stuff.VolumePerUnit()
		}
	}

	if total == 0 {
		total = def.BaseMarketValue()
	}
	return total, nil
}
