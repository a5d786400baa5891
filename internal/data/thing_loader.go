package data

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrDefNotFound is returned when a definition name resolves to nothing.
// Callers computing per-item stats treat it as a recoverable local failure.
var ErrDefNotFound = errors.New("thing def not found")

// ThingTable — global registry of all thing definitions.
// map[defName]*thingDef
var ThingTable map[string]*thingDef

// LoadThingDefs builds ThingTable from the Go-literal table.
func LoadThingDefs() error {
	ThingTable = make(map[string]*thingDef, len(thingDefs))

	for i := range thingDefs {
		ThingTable[thingDefs[i].defName] = &thingDefs[i]
	}

	slog.Info("loaded thing defs", "count", len(ThingTable))
	return nil
}

// GetThingDef returns the definition for defName, or nil when the table
// does not hold it (or was never loaded).
func GetThingDef(defName string) *thingDef {
	if ThingTable == nil {
		return nil
	}
	return ThingTable[defName]
}

// ResolveThingDef is GetThingDef with an error instead of nil.
func ResolveThingDef(defName string) (*thingDef, error) {
	def := GetThingDef(defName)
	if def == nil {
		return nil, fmt.Errorf("resolving %q: %w", defName, ErrDefNotFound)
	}
	return def, nil
}
