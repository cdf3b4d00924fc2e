package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBattery_StartsAtInitialFraction(t *testing.T) {
	b := NewBattery(10, 0.5)
	assert.InDelta(t, 50, b.SOC, 0.001)
}

func TestBattery_ChargeAppliesEfficiency(t *testing.T) {
	b := NewBattery(10, 0.5)
	// Request charging 2 kW of surplus: 2 * 0.95 = 1.9 kWh banked = +19%.
	res := b.Apply(-2)
	assert.InDelta(t, 1.9, res.ChargeKw, 0.001)
	assert.Zero(t, res.DischargeKw)
	assert.InDelta(t, 69, b.SOC, 0.001)
	assert.InDelta(t, 50, res.SOCStart, 0.001)
	assert.InDelta(t, 69, res.SOCEnd, 0.001)
}

func TestBattery_ChargeClipsAtCeiling(t *testing.T) {
	b := NewBattery(10, 0.99)
	// Headroom is 0.1 kWh; a 2 kW surplus only banks that much.
	res := b.Apply(-2)
	assert.InDelta(t, 0.1, res.ChargeKw, 0.001)
	assert.InDelta(t, 100, b.SOC, 0.001)
}

func TestBattery_ChargeNoopWhenFull(t *testing.T) {
	b := NewBattery(10, 1.0)
	res := b.Apply(-3)
	assert.Zero(t, res.ChargeKw)
	assert.InDelta(t, 100, b.SOC, 0.001)
}

func TestBattery_DischargeServesDeficit(t *testing.T) {
	b := NewBattery(10, 0.5)
	// Reserve above the floor: 3 kWh, derated to 2.85; a 2 kW deficit fits.
	res := b.Apply(2)
	assert.InDelta(t, 2, res.DischargeKw, 0.001)
	assert.Zero(t, res.ChargeKw)
	assert.InDelta(t, 30, b.SOC, 0.001)
}

func TestBattery_DischargeClipsAtReserveFloor(t *testing.T) {
	b := NewBattery(10, 0.5)
	// Usable reserve is (50-20)% * 10 kWh * 0.95 = 2.85 kWh.
	res := b.Apply(7)
	assert.InDelta(t, 2.85, res.DischargeKw, 0.001)
	assert.InDelta(t, 21.5, b.SOC, 0.001)
}

func TestBattery_NoDischargeAtOrBelowFloor(t *testing.T) {
	b := NewBattery(10, 0.2)
	res := b.Apply(5)
	assert.Zero(t, res.DischargeKw)
	assert.InDelta(t, 20, b.SOC, 0.001)

	b = NewBattery(10, 0.1)
	res = b.Apply(5)
	assert.Zero(t, res.DischargeKw)
	assert.InDelta(t, 10, b.SOC, 0.001)
}

func TestBattery_ZeroRequestIsInert(t *testing.T) {
	b := NewBattery(10, 0.37)
	res := b.Apply(0)
	assert.Zero(t, res.ChargeKw)
	assert.Zero(t, res.DischargeKw)
	assert.InDelta(t, 37, b.SOC, 0.001)
}

func TestBattery_ChargeAndDischargeAreExclusive(t *testing.T) {
	for _, req := range []float64{-5, -0.1, 0, 0.1, 5} {
		b := NewBattery(10, 0.5)
		res := b.Apply(req)
		assert.Zero(t, res.ChargeKw*res.DischargeKw, "request %g", req)
	}
}
