package scatter

import (
	"context"
	"fmt"
	"log/slog"
)

// Large-base fixed overrides. The policy never derives from proximity: a
// hostile base is placed deliberately, not scattered.
const (
	largeBaseRadius            = 200.0
	largeScavenging            = 0.1
	largeMinimumCost           = 5000.0
	largeMinimumDensity        = 0.2
	largeMinimumArea           = 4000
	friendlyRaidChance         = 0.1
	pawnPointsPerUncoveredCost = 10.0
)

// PlanLarge places one large hostile base. Fixed overrides replace the
// common derivation entirely: full radius, pristine defences and power, a
// guaranteed raid trigger, and a one-time hostile pawn group funded from
// the budget the structure itself left uncovered.
func (p *Planner) PlanLarge(ctx context.Context, m TargetMap) error {
	if p.skipTarget(m) {
		return nil
	}

	resume := p.pauseClock()
	defer resume()

	opts := p.defaults.Copy()
	opts.MinRadius = largeBaseRadius
	opts.MaxRadius = largeBaseRadius
	opts.ScavengingMultiplier = largeScavenging
	opts.DeteriorationMultiplier = 0
	opts.HostileChance = 1.0
	opts.MinimumCostRequired = largeMinimumCost
	opts.MinimumDensityRequired = largeMinimumDensity
	opts.MinimumAreaRequired = largeMinimumArea
	opts.DeleteLowQuality = false
	opts.ShouldKeepDefencesAndPower = true
	opts.ShouldAddRaidTriggers = true

	faction, err := p.factions.RandomHostileFaction()
	if err != nil {
		return fmt.Errorf("picking hostile faction: %w", err)
	}
	if opts.AllowFriendlyRaids && p.rng.Float64() < friendlyRaidChance {
		faction, err = p.factions.RandomNonHostileFaction()
		if err != nil {
			return fmt.Errorf("picking non-hostile faction: %w", err)
		}
	}

	center := SingleCellRect(m.Center())
	p.emitter.Push(Request{Symbol: SymbolScatterRuins, Rect: center, Faction: faction, Options: opts})
	p.emitter.Push(Request{Symbol: SymbolScatterRaidTriggers, Rect: center, Faction: faction, Options: opts})
	p.emitter.Push(Request{Symbol: SymbolChargeBatteries, Rect: center, Options: opts})
	p.emitter.Push(Request{Symbol: SymbolRefuel, Rect: center, Options: opts})
	p.emitter.Push(Request{
		Symbol:  SymbolPawnGroup,
		Rect:    center,
		Faction: faction,
		Points:  opts.UncoveredCost / pawnPointsPerUncoveredCost,
		Options: opts,
	})

	slog.Info("placing large ruined base",
		"faction", faction.Name,
		"hostile", faction.HostileToPlayer,
		"points", opts.UncoveredCost/pawnPointsPerUncoveredCost)

	return p.emitter.Flush(ctx, p.sink)
}
