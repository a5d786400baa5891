package scatter

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/ruinworks/ruingen/internal/world"
)

const (
	// MinSnapshotsForScatter gates common ruin scatter: below this many
	// stored blueprints there is not enough content variety.
	MinSnapshotsForScatter = 10

	minScatterRadius = 6.0
	maxScatterRadius = 60.0

	// Worst-case placement cost bounds.
	maxDensityMultiplier    = 20.0
	maxDensityRadiusProduct = 800.0

	// One cluster budget unit per this many map cells.
	cellsPerClusterUnit = 10000

	// Proximity factors below this mean the site sits next to civilization;
	// most such maps get no ruins at all.
	nearCivilizationFactor     = 0.1
	nearCivilizationSkipChance = 0.8
)

// SnapshotCounter reports how many blueprint snapshots the store holds.
type SnapshotCounter interface {
	StoredSnapshotCount(ctx context.Context) (int, error)
}

// Clock is the host simulation's time progression. Generation pauses it so
// ticks never observe a partially placed structure.
type Clock interface {
	Running() bool
	Pause()
	Resume()
}

// FactionPicker selects factions for spawned content.
type FactionPicker interface {
	RandomHostileFaction() (Faction, error)
	RandomNonHostileFaction() (Faction, error)
}

// TargetMap is the read-only view of the map a pass plans for.
type TargetMap interface {
	// Tile returns the world tile the map occupies.
	Tile() world.Tile
	// Area returns the map cell count.
	Area() int
	// Center returns the map's central cell.
	Center() Cell
	// WaterCovered reports whether the map is covered by water; such
	// targets are skipped entirely.
	WaterCovered() bool
	// HasNonPlayerSite reports whether a non-player site object already
	// occupies the target tile.
	HasNonPlayerSite() bool
}

// Planner turns a hostile-proximity factor and the default options into
// bounded placement parameters for one map, then emits the resulting
// requests. One planner serves one generation pass at a time; it owns no
// shared mutable state beyond its emitter queue.
type Planner struct {
	graph     world.TileGraph
	snapshots SnapshotCounter
	clock     Clock
	factions  FactionPicker
	sink      ResolverSink
	emitter   *Emitter
	rng       *rand.Rand

	defaults         Options
	proximityEnabled bool
}

// PlannerDeps bundles the collaborators a planner consumes.
type PlannerDeps struct {
	Graph     world.TileGraph
	Snapshots SnapshotCounter
	Clock     Clock
	Factions  FactionPicker
	Sink      ResolverSink
}

// NewPlanner creates a planner over the given collaborators. The defaults
// are copied on every pass, never mutated in place. rng is injected so
// passes can be made deterministic.
func NewPlanner(deps PlannerDeps, defaults Options, proximityEnabled bool, rng *rand.Rand) *Planner {
	return &Planner{
		graph:            deps.Graph,
		snapshots:        deps.Snapshots,
		clock:            deps.Clock,
		factions:         deps.Factions,
		sink:             deps.Sink,
		emitter:          NewEmitter(),
		rng:              rng,
		defaults:         defaults,
		proximityEnabled: proximityEnabled,
	}
}

// skipTarget applies the skip conditions shared by all policies. Skips are
// not errors: they short-circuit with no output and no state mutation.
func (p *Planner) skipTarget(m TargetMap) bool {
	if m.WaterCovered() {
		slog.Info("target map is water covered, skipping ruins")
		return true
	}
	if m.HasNonPlayerSite() {
		slog.Info("target tile already hosts a site, skipping ruins")
		return true
	}
	return false
}

// pauseClock pauses the host clock if it is running and returns the restore
// function. A stopped clock stays stopped.
func (p *Planner) pauseClock() func() {
	if p.clock == nil || !p.clock.Running() {
		return func() {}
	}
	p.clock.Pause()
	return p.clock.Resume
}

// proximity computes the hostile-proximity factor for the target tile, or
// 1.0 when the feature is disabled.
func (p *Planner) proximity(m TargetMap) float64 {
	if !p.proximityEnabled {
		return 1.0
	}
	return world.HostileProximity(p.graph, m.Tile(), world.DefaultProximityHops)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
