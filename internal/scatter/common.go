package scatter

import (
	"context"
	"fmt"
	"log/slog"
	"math"
)

// commonDerivation is the outcome of the common-policy option derivation.
type commonDerivation struct {
	opts         Options
	totalDensity float64
	scale        float64
}

// PlanCommon scatters small common ruins over the target map. The pass is
// skipped when the snapshot store holds too few blueprints, the map is
// water covered, or the target tile already hosts a site. The host clock is
// paused for the duration and restored afterwards.
func (p *Planner) PlanCommon(ctx context.Context, m TargetMap) error {
	stored, err := p.snapshots.StoredSnapshotCount(ctx)
	if err != nil {
		return fmt.Errorf("counting stored snapshots: %w", err)
	}
	if stored < MinSnapshotsForScatter {
		slog.Info("skipping ruin scatter, not enough stored snapshots",
			"stored", stored, "required", MinSnapshotsForScatter)
		return nil
	}
	if p.skipTarget(m) {
		return nil
	}

	resume := p.pauseClock()
	defer resume()

	factor := p.proximity(m)
	d := p.deriveCommon(factor)
	if d.totalDensity <= 0 {
		slog.Info("target too close to civilization, no ruins", "factor", factor)
		return nil
	}

	count := int(float64(m.Area()/cellsPerClusterUnit) * (d.totalDensity + p.rng.Float64()*d.totalDensity))
	slog.Info("scattering common ruins",
		"factor", factor,
		"density", d.opts.DensityMultiplier,
		"minRadius", d.opts.MinRadius,
		"maxRadius", d.opts.MaxRadius,
		"count", count)

	for range count {
		p.emitter.Push(Request{
			Symbol:  SymbolScatterRuins,
			Rect:    SingleCellRect(m.Center()),
			Options: d.opts,
		})
	}
	if count > 0 && d.opts.HostileChance > 0 {
		p.emitter.Push(Request{
			Symbol:  SymbolScatterRuinsMobs,
			Rect:    SingleCellRect(m.Center()),
			Options: d.opts,
		})
	}

	return p.emitter.Flush(ctx, p.sink)
}

// deriveCommon turns the proximity factor into one pass's options. With the
// proximity feature disabled the defaults apply verbatim.
func (p *Planner) deriveCommon(factor float64) commonDerivation {
	opts := p.defaults.Copy()
	if !p.proximityEnabled {
		return commonDerivation{opts: opts, totalDensity: opts.DensityMultiplier, scale: 1}
	}

	total := opts.DensityMultiplier * factor
	if factor < nearCivilizationFactor && p.rng.Float64() < nearCivilizationSkipChance {
		total = 0
	}
	if total <= 0 {
		opts.DensityMultiplier = 0
		return commonDerivation{opts: opts, scale: 1}
	}

	// Density is drawn with a 0.1 floor so it stays positive; the scale is
	// then fixed by scale²·density == totalDensity, which holds expected
	// total ruin mass constant while trading count and size against density.
	opts.DensityMultiplier = 0.1 + p.rng.Float64()*(total-0.1)
	scale := math.Sqrt(total / opts.DensityMultiplier)

	opts.MinRadius = clamp(opts.MinRadius*scale, minScatterRadius, maxScatterRadius)
	opts.MaxRadius = clamp(opts.MaxRadius*scale, minScatterRadius, maxScatterRadius)

	// Scavenging follows how inhabited the surroundings are; deterioration
	// grows the farther from civilization the site is, capped at +0.2.
	opts.ScavengingMultiplier *= math.Sqrt(factor) * 3
	opts.DeteriorationMultiplier += math.Min(0.2, (1/factor)/40)

	if opts.DensityMultiplier > maxDensityMultiplier {
		opts.DensityMultiplier = maxDensityMultiplier
	}
	for opts.DensityMultiplier*opts.MaxRadius > maxDensityRadiusProduct {
		opts.DensityMultiplier *= 0.9
	}

	return commonDerivation{opts: opts, totalDensity: total, scale: scale}
}
