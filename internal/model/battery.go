package model

import "math"

const (
	// ChargeEfficiency is the one-way charge loss factor: storing X kW of
	// surplus banks X * ChargeEfficiency, and the usable reserve discharges
	// at the same factor.
	ChargeEfficiency = 0.95

	// ReserveFloorPercent is the protected SoC floor; dispatch never draws
	// the battery below it.
	ReserveFloorPercent = 20.0

	// CeilingPercent is the SoC ceiling.
	CeilingPercent = 100.0
)

// Battery carries the only mutable state of a trace: the SoC accumulator.
// Each trace constructs its own Battery; nothing is shared between calls.
type Battery struct {
	CapacityKwh float64
	// SOC is the state of charge in percent, 0..100. Kept at full float
	// precision between hours; rounding happens only at record emission.
	SOC float64
}

// NewBattery starts a battery at the given SoC fraction.
func NewBattery(capacityKwh, initialSOCFraction float64) *Battery {
	return &Battery{
		CapacityKwh: capacityKwh,
		SOC:         initialSOCFraction * 100,
	}
}

// DispatchResult captures what the battery actually did in one hour.
// At most one of ChargeKw / DischargeKw is nonzero.
type DispatchResult struct {
	ChargeKw    float64 // energy banked this hour
	DischargeKw float64 // energy delivered to the load this hour
	SOCStart    float64
	SOCEnd      float64
}

// Apply executes a requested dispatch for a single hour, enforcing the
// charge efficiency, the SoC ceiling, and the reserve floor by clipping
// the request. Convention: negative kW = charge from surplus, positive kW =
// discharge to the load (zero is a no-op).
func (b *Battery) Apply(requestKw float64) DispatchResult {
	res := DispatchResult{SOCStart: b.SOC, SOCEnd: b.SOC}
	if b.CapacityKwh <= 0 {
		return res
	}

	if requestKw < 0 {
		// Charging: bank the surplus less the one-way loss, capped by the
		// remaining headroom below the ceiling.
		headroomKwh := (CeilingPercent - b.SOC) / 100 * b.CapacityKwh
		stored := math.Min(-requestKw*ChargeEfficiency, headroomKwh)
		if stored > 0 {
			b.SOC += stored / b.CapacityKwh * 100
			res.ChargeKw = stored
		}
	} else if requestKw > 0 {
		// Discharging: the usable reserve is everything above the floor,
		// derated by the efficiency factor.
		reserveKwh := (b.SOC - ReserveFloorPercent) / 100 * b.CapacityKwh
		if reserveKwh > 0 {
			delivered := math.Min(requestKw, reserveKwh*ChargeEfficiency)
			b.SOC -= delivered / b.CapacityKwh * 100
			res.DischargeKw = delivered
		}
	}

	// The min() terms keep SoC in bounds by construction; the clamp guards
	// against float drift only.
	b.SOC = clampPercent(b.SOC)
	res.SOCEnd = b.SOC
	return res
}

func clampPercent(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 100 {
		return 100
	}
	return x
}
