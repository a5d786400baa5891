package data

// Built-in definition table. Stuff-capable defs carry market value and
// volume so material cost resolves as marketValue/volumePerUnit per unit
// of stuff in a recipe.
var thingDefs = []thingDef{
	// Materials (stuff)
	{
		defName: "Steel", label: "steel", category: "Item",
		baseMarketValue: 1.9, mass: 0.5,
		isStuff: true, stuffMarketValue: 1.9, volumePerUnit: 1,
	},
	{
		defName: "WoodLog", label: "wood", category: "Item",
		baseMarketValue: 1.2, mass: 0.4,
		isStuff: true, stuffMarketValue: 1.2, volumePerUnit: 1,
	},
	{
		defName: "Plasteel", label: "plasteel", category: "Item",
		baseMarketValue: 9.0, mass: 0.5,
		isStuff: true, stuffMarketValue: 9.0, volumePerUnit: 1,
	},
	{
		defName: "BlocksGranite", label: "granite blocks", category: "Item",
		baseMarketValue: 0.9, mass: 1.0,
		isStuff: true, stuffMarketValue: 0.9, volumePerUnit: 1,
	},

	// Plain items
	{
		defName: "ComponentIndustrial", label: "component", category: "Item",
		baseMarketValue: 32, mass: 0.6,
	},
	{
		defName: "MealSurvivalPack", label: "packaged survival meal", category: "Item",
		baseMarketValue: 24, mass: 0.3,
	},
	{
		defName: "MedicineHerbal", label: "herbal medicine", category: "Item",
		baseMarketValue: 10, mass: 0.35,
	},
	{
		defName: "Chemfuel", label: "chemfuel", category: "Item",
		baseMarketValue: 2.3, mass: 0.05,
	},
	{
		defName: "ChunkSlagSteel", label: "steel slag chunk", category: "Item",
		// Worthless debris: no value, no recipe.
	},

	// Buildings
	{
		defName: "Wall", label: "wall", category: "Building",
		costStuffCount: 5, defaultStuff: "WoodLog",
	},
	{
		defName: "Door", label: "door", category: "Building",
		costStuffCount: 25, defaultStuff: "WoodLog",
	},
	{
		defName: "Bed", label: "bed", category: "Building",
		costStuffCount: 45, defaultStuff: "WoodLog",
	},
	{
		defName: "Battery", label: "battery", category: "Building",
		mass: 30,
		costList: []costEntry{{"Steel", 70}, {"ComponentIndustrial", 2}},
	},
	{
		defName: "Turret_Defensive", label: "defensive turret", category: "Building",
		costList: []costEntry{{"Steel", 75}, {"ComponentIndustrial", 3}},
	},
	{
		defName: "Generator_Fueled", label: "fueled generator", category: "Building",
		costList: []costEntry{{"Steel", 100}, {"ComponentIndustrial", 2}},
	},

	// Terrain
	{
		defName: "Soil", label: "soil", category: "Terrain",
	},
	{
		defName: "WoodPlankFloor", label: "wood plank floor", category: "Terrain",
		costList: []costEntry{{"WoodLog", 3}},
	},
	{
		defName: "ConcreteFloor", label: "concrete floor", category: "Terrain",
		baseMarketValue: 1.5,
	},
	{
		defName: "SteelTileFloor", label: "steel tile floor", category: "Terrain",
		costList: []costEntry{{"Steel", 7}},
	},
}
