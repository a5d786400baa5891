package blueprint

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ruinworks/ruingen/internal/data"
)

func TestMain(m *testing.M) {
	if err := data.LoadThingDefs(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestUpdateStats_EmptyBlueprint(t *testing.T) {
	b := New(10, 10)
	b.UpdateStats(true)

	require.Zero(t, b.TotalCost())
	require.Zero(t, b.ItemsDensity())
}

func TestUpdateStats_WeightFromMass(t *testing.T) {
	b := New(4, 4)
	b.AddItemAt(0, 0, ItemTile{DefName: "Steel", StackCount: 10})
	b.UpdateStats(false)

	it := b.ItemsAt(0, 0)[0]
	require.InDelta(t, 5.0, it.Weight, 1e-9) // 0.5 mass × 10
}

func TestUpdateStats_WeightFallbacks(t *testing.T) {
	b := New(4, 4)
	b.AddItemAt(0, 0, ItemTile{DefName: "Wall", StackCount: 1})    // massless building
	b.AddItemAt(1, 0, ItemTile{DefName: "NoSuchDef", StackCount: 4})
	b.AddItemAt(2, 0, ItemTile{DefName: "Wall", StackCount: 0})    // stack of zero
	b.UpdateStats(false)

	require.InDelta(t, 0.5, b.ItemsAt(0, 0)[0].Weight, 1e-9)
	require.InDelta(t, 2.0, b.ItemsAt(1, 0)[0].Weight, 1e-9)
	require.InDelta(t, 1.0, b.ItemsAt(2, 0)[0].Weight, 1e-9, "zero weight never escapes")
}

func TestUpdateStats_CostRecursion(t *testing.T) {
	b := New(4, 4)
	b.AddItemAt(0, 0, ItemTile{DefName: "Battery", StackCount: 1})
	b.UpdateStats(true)

	// 70 steel × 1.9 + 2 components × 32.
	require.InDelta(t, 197.0, b.ItemsAt(0, 0)[0].Cost, 1e-9)
	require.InDelta(t, 197.0, b.TotalCost(), 1e-9)
}

func TestUpdateStats_StuffCost(t *testing.T) {
	b := New(4, 4)
	b.AddItemAt(0, 0, ItemTile{DefName: "Wall", StackCount: 1})                     // default stuff: wood
	b.AddItemAt(1, 0, ItemTile{DefName: "Wall", StuffDef: "Steel", StackCount: 1})
	b.UpdateStats(true)

	require.InDelta(t, 5*1.2, b.ItemsAt(0, 0)[0].Cost, 1e-9)
	require.InDelta(t, 5*1.9, b.ItemsAt(1, 0)[0].Cost, 1e-9)
}

func TestUpdateStats_LeafFallsBackToMarketValue(t *testing.T) {
	b := New(4, 4)
	b.AddItemAt(0, 0, ItemTile{DefName: "MealSurvivalPack", StackCount: 3})
	b.UpdateStats(true)

	require.InDelta(t, 24.0*3, b.ItemsAt(0, 0)[0].Cost, 1e-9)
}

func TestUpdateStats_UnresolvedItemIsRecoverable(t *testing.T) {
	b := New(4, 4)
	b.AddItemAt(0, 0, ItemTile{DefName: "NoSuchDef", StackCount: 1})
	b.AddItemAt(1, 1, ItemTile{DefName: "Steel", StackCount: 10})
	b.UpdateStats(true)

	require.Zero(t, b.ItemsAt(0, 0)[0].Cost, "unresolved item keeps zero cost")
	require.InDelta(t, 19.0, b.TotalCost(), 1e-9, "the pass continues past the failure")
	require.InDelta(t, 2.0/16.0, b.ItemsDensity(), 1e-9, "unresolved items still count for density")
}

func TestUpdateStats_TerrainCostNoWeight(t *testing.T) {
	b := New(4, 4)
	b.SetTerrainAt(0, 0, TerrainTile{DefName: "WoodPlankFloor"})
	b.SetTerrainAt(1, 0, TerrainTile{DefName: "Soil"})
	b.UpdateStats(true)

	require.InDelta(t, 3*1.2, b.TerrainAt(0, 0).Cost, 1e-9)
	require.Zero(t, b.TerrainAt(1, 0).Cost)
	require.InDelta(t, 3.6, b.TotalCost(), 1e-9)
	require.Zero(t, b.ItemsDensity(), "terrain is not an item")
}

func TestUpdateStats_CostSkippedWhenNotRequested(t *testing.T) {
	b := New(4, 4)
	b.SetTerrainAt(0, 0, TerrainTile{DefName: "WoodPlankFloor"})
	b.AddItemAt(0, 0, ItemTile{DefName: "Battery", StackCount: 1})
	b.UpdateStats(false)

	require.Zero(t, b.TerrainAt(0, 0).Cost)
	require.Zero(t, b.ItemsAt(0, 0)[0].Cost)
	require.Zero(t, b.TotalCost())
	require.NotZero(t, b.ItemsAt(0, 0)[0].Weight, "weights are always derived")
}

func TestUpdateStats_Density(t *testing.T) {
	b := New(10, 10)
	b.AddItemAt(0, 0, ItemTile{DefName: "Steel", StackCount: 5})
	b.AddItemAt(0, 0, ItemTile{DefName: "WoodLog", StackCount: 5})
	b.AddItemAt(9, 9, ItemTile{DefName: "Chemfuel", StackCount: 1})
	b.UpdateStats(false)

	require.InDelta(t, 0.03, b.ItemsDensity(), 1e-9)
}
