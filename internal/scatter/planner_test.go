package scatter

import (
	"context"
	"math/rand/v2"

	"github.com/ruinworks/ruingen/internal/world"
)

// fakeSnapshots implements SnapshotCounter.
type fakeSnapshots struct {
	count int
	err   error
}

func (f *fakeSnapshots) StoredSnapshotCount(ctx context.Context) (int, error) {
	return f.count, f.err
}

// fakeClock implements Clock and records transitions.
type fakeClock struct {
	running bool
	pauses  int
	resumes int
}

func (f *fakeClock) Running() bool { return f.running }
func (f *fakeClock) Pause()        { f.pauses++; f.running = false }
func (f *fakeClock) Resume()       { f.resumes++; f.running = true }

// fakeFactions implements FactionPicker.
type fakeFactions struct {
	hostile  Faction
	friendly Faction
	err      error
}

func newFakeFactions() *fakeFactions {
	return &fakeFactions{
		hostile:  Faction{Name: "Pirates", HostileToPlayer: true},
		friendly: Faction{Name: "Outlanders"},
	}
}

func (f *fakeFactions) RandomHostileFaction() (Faction, error)    { return f.hostile, f.err }
func (f *fakeFactions) RandomNonHostileFaction() (Faction, error) { return f.friendly, f.err }

// fakeSink records every bulk-generate call.
type fakeSink struct {
	batches [][]Request
	err     error
}

func (f *fakeSink) Generate(ctx context.Context, requests []Request) error {
	f.batches = append(f.batches, requests)
	return f.err
}

func (f *fakeSink) all() []Request {
	var out []Request
	for _, b := range f.batches {
		out = append(out, b...)
	}
	return out
}

// fakeMap implements TargetMap.
type fakeMap struct {
	tile   world.Tile
	area   int
	center Cell
	water  bool
	site   bool
}

func newFakeMap(area int) *fakeMap {
	return &fakeMap{area: area, center: Cell{X: 100, Z: 100}}
}

func (f *fakeMap) Tile() world.Tile       { return f.tile }
func (f *fakeMap) Area() int              { return f.area }
func (f *fakeMap) Center() Cell           { return f.center }
func (f *fakeMap) WaterCovered() bool     { return f.water }
func (f *fakeMap) HasNonPlayerSite() bool { return f.site }

// emptyGraph is a tile graph holding nothing at all.
type emptyGraph struct{}

func (emptyGraph) Neighbors(t world.Tile) []world.Tile      { return nil }
func (emptyGraph) IsImpassable(t world.Tile) bool           { return false }
func (emptyGraph) ObjectsAt(t world.Tile) []world.MapObject { return nil }

// hostileGraph puts one hostile object right on every tile, which makes the
// proximity factor exactly 1.0.
type hostileGraph struct{ emptyGraph }

func (hostileGraph) ObjectsAt(t world.Tile) []world.MapObject {
	return []world.MapObject{{Kind: world.KindSettlement, Hostile: true}}
}

// testRng returns a deterministic rng plus an identical clone for deriving
// expected draws.
func testRng(seed uint64) (*rand.Rand, *rand.Rand) {
	return rand.New(rand.NewPCG(seed, seed)), rand.New(rand.NewPCG(seed, seed))
}

type plannerFixture struct {
	planner   *Planner
	snapshots *fakeSnapshots
	clock     *fakeClock
	factions  *fakeFactions
	sink      *fakeSink
}

func newPlannerFixture(graph world.TileGraph, defaults Options, proximityEnabled bool, seed uint64) *plannerFixture {
	rng, _ := testRng(seed)
	f := &plannerFixture{
		snapshots: &fakeSnapshots{count: MinSnapshotsForScatter},
		clock:     &fakeClock{running: true},
		factions:  newFakeFactions(),
		sink:      &fakeSink{},
	}
	f.planner = NewPlanner(PlannerDeps{
		Graph:     graph,
		Snapshots: f.snapshots,
		Clock:     f.clock,
		Factions:  f.factions,
		Sink:      f.sink,
	}, defaults, proximityEnabled, rng)
	return f
}
