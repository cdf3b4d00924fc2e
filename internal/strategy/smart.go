package strategy

import "microgrid-sim/internal/model"

// Smart applies three mutually exclusive rules in fixed priority order:
//
//  1. Harvest: on a solar surplus with headroom left, charge the surplus.
//  2. Peak-shave: on a peak-hour deficit with charge above the reserve
//     floor, discharge against the deficit.
//  3. Grid fallback: otherwise request nothing; the deficit (if any) comes
//     from the grid.
//
// A surplus hour never reaches rule 2; a peak deficit at or below the floor
// falls through to rule 3 untouched.
type Smart struct{}

func (Smart) Name() string { return "smart" }

func (Smart) Decide(ctx Context) float64 {
	deficit := ctx.Hour.LoadKw - ctx.Hour.SolarKw
	switch {
	case deficit < 0 && ctx.SOC < model.CeilingPercent:
		// Negative request: charge the full surplus (battery clips it).
		return deficit
	case deficit > 0 && ctx.Hour.IsPeak && ctx.SOC > model.ReserveFloorPercent:
		return deficit
	default:
		return 0
	}
}
