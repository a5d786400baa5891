package scatter

import (
	"context"
	"fmt"
)

// Cell addresses a single map cell.
type Cell struct {
	X int
	Z int
}

// Rect is an axis-aligned cell rectangle, inclusive on both corners.
type Rect struct {
	MinX int
	MinZ int
	MaxX int
	MaxZ int
}

// SingleCellRect returns the degenerate rectangle holding only c. Placement
// requests start from a single origin cell; the resolver expands them.
func SingleCellRect(c Cell) Rect {
	return Rect{MinX: c.X, MinZ: c.Z, MaxX: c.X, MaxZ: c.Z}
}

// RectCenteredOn returns the rectangle of the given radius around c.
func RectCenteredOn(c Cell, radius int) Rect {
	return Rect{MinX: c.X - radius, MinZ: c.Z - radius, MaxX: c.X + radius, MaxZ: c.Z + radius}
}

// Symbol names a resolver request kind. The resolver maps each symbol to
// the routine that materializes it into map tiles.
type Symbol string

const (
	SymbolScatterRuins        Symbol = "scatterRuins"
	SymbolScatterRuinsMobs    Symbol = "scatterRuinsMobs"
	SymbolScatterRaidTriggers Symbol = "scatterRaidTriggers"
	SymbolChargeBatteries     Symbol = "chargeBatteries"
	SymbolRefuel              Symbol = "refuel"
	SymbolPawnGroup           Symbol = "pawnGroup"
)

// Faction references a faction known to the host simulation.
type Faction struct {
	Name            string
	HostileToPlayer bool
}

// Request is one placement order for the external resolver: an origin
// rectangle, the faction it belongs to, a pawn-points budget for group
// spawns, and the options copy driving resolution. Handed off by value;
// the emitter never touches it again after Flush.
type Request struct {
	Symbol  Symbol
	Rect    Rect
	Faction Faction
	Points  float64
	Options Options
}

// ResolverSink consumes an ordered batch of placement requests in a single
// bulk-generate call. Implementations belong to the host's base-generation
// resolver.
type ResolverSink interface {
	Generate(ctx context.Context, requests []Request) error
}

// Emitter queues placement requests in explicit order. Requests resolve in
// the order they were pushed; that ordering is the contract with the sink.
type Emitter struct {
	queue []Request
}

// NewEmitter returns an empty emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Push appends a request to the queue.
func (e *Emitter) Push(r Request) {
	e.queue = append(e.queue, r)
}

// Len returns the number of queued requests.
func (e *Emitter) Len() int {
	return len(e.queue)
}

// Flush hands the queued requests to the sink in one bulk-generate call and
// clears the queue. Ownership of the batch transfers to the sink. An empty
// queue flushes to nothing without touching the sink.
func (e *Emitter) Flush(ctx context.Context, sink ResolverSink) error {
	if len(e.queue) == 0 {
		return nil
	}
	batch := e.queue
	e.queue = nil
	if err := sink.Generate(ctx, batch); err != nil {
		return fmt.Errorf("resolving %d placement requests: %w", len(batch), err)
	}
	return nil
}
