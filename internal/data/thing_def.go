package data

// thingDef — definition record for items, buildings and terrain placed in
// blueprints. Mirrors the fields the stats pass needs: mass for weight,
// market value and cost components for cost.
type thingDef struct {
	defName  string
	label    string
	category string // "Item", "Building", "Terrain"

	baseMarketValue float64
	mass            float64 // per single unit; 0 for most buildings

	// Crafting recipe: fixed components plus an optional stuff share.
	costList       []costEntry
	costStuffCount int32
	defaultStuff   string // used when an instance carries no explicit stuff

	// Stuff properties, set when the def can serve as a building material.
	isStuff          bool
	stuffMarketValue float64
	volumePerUnit    float64
}

// costEntry — one fixed component of a def's cost list.
type costEntry struct {
	defName string
	count   int32
}

func (d *thingDef) DefName() string           { return d.defName }
func (d *thingDef) Label() string             { return d.label }
func (d *thingDef) Category() string          { return d.category }
func (d *thingDef) BaseMarketValue() float64  { return d.baseMarketValue }
func (d *thingDef) Mass() float64             { return d.mass }
func (d *thingDef) CostStuffCount() int32     { return d.costStuffCount }
func (d *thingDef) DefaultStuff() string      { return d.defaultStuff }
func (d *thingDef) IsStuff() bool             { return d.isStuff }
func (d *thingDef) StuffMarketValue() float64 { return d.stuffMarketValue }
func (d *thingDef) VolumePerUnit() float64    { return d.volumePerUnit }

// CostList returns the fixed recipe components as (defName, count) pairs.
func (d *thingDef) CostList() []CostComponent {
	out := make([]CostComponent, len(d.costList))
	for i, c := range d.costList {
		out[i] = CostComponent{DefName: c.defName, Count: c.count}
	}
	return out
}

// CostComponent is the exported view of a single cost list entry.
type CostComponent struct {
	DefName string
	Count   int32
}
