package scatter

import (
	"context"
	"fmt"
	"log/slog"
	"math"
)

// Medium-ruin fixed overrides.
const (
	mediumMinRadius     = 24.0
	mediumMaxRadius     = 50.0
	mediumScavenging    = 0.5
	mediumDeterioration = 0.5
	mediumItemCostLimit = 800.0

	mediumAssaultChance      = 0.2
	mediumAssaultPointsScale = 500.0
)

// PlanMedium places one medium ruin cluster with fixed overrides and, one
// time in five, a single assault pawn group whose points budget follows a
// half-normal distribution.
func (p *Planner) PlanMedium(ctx context.Context, m TargetMap) error {
	if p.skipTarget(m) {
		return nil
	}

	resume := p.pauseClock()
	defer resume()

	opts := p.defaults.Copy()
	opts.MinRadius = mediumMinRadius
	opts.MaxRadius = mediumMaxRadius
	opts.ScavengingMultiplier = mediumScavenging
	opts.DeteriorationMultiplier = mediumDeterioration
	opts.ItemCostLimit = mediumItemCostLimit

	p.emitter.Push(Request{
		Symbol:  SymbolScatterRuins,
		Rect:    SingleCellRect(m.Center()),
		Options: opts,
	})

	if p.rng.Float64() < mediumAssaultChance {
		faction, err := p.factions.RandomHostileFaction()
		if err != nil {
			return fmt.Errorf("picking assault faction: %w", err)
		}
		points := math.Abs(p.rng.NormFloat64()) * mediumAssaultPointsScale
		// The assault rect radius works out to zero, so the group spawns
		// from the origin cell like every other request.
		p.emitter.Push(Request{
			Symbol:  SymbolPawnGroup,
			Rect:    RectCenteredOn(m.Center(), 0),
			Faction: faction,
			Points:  points,
			Options: opts,
		})
		slog.Info("medium ruins assault group queued", "faction", faction.Name, "points", points)
	}

	return p.emitter.Flush(ctx, p.sink)
}
