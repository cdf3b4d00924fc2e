package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"microgrid-sim/internal/profile"
)

func hour(solar, load float64, peak bool) profile.Hour {
	return profile.Hour{SolarKw: solar, LoadKw: load, IsPeak: peak, PriceKwh: 4}
}

func TestBaseline_AlwaysIdle(t *testing.T) {
	s := Baseline{}
	assert.Equal(t, "baseline", s.Name())
	assert.Zero(t, s.Decide(Context{Hour: hour(7, 2.5, false), SOC: 50}))
	assert.Zero(t, s.Decide(Context{Hour: hour(0, 7, true), SOC: 100}))
}

func TestSmart_HarvestsSurplus(t *testing.T) {
	s := Smart{}
	// 4.5 kW surplus with headroom: request charging the full surplus.
	req := s.Decide(Context{Hour: hour(7, 2.5, false), SOC: 50})
	assert.InDelta(t, -4.5, req, 0.001)
}

func TestSmart_NoHarvestWhenFull(t *testing.T) {
	s := Smart{}
	req := s.Decide(Context{Hour: hour(7, 2.5, false), SOC: 100})
	assert.Zero(t, req)
}

func TestSmart_ShavesPeakDeficit(t *testing.T) {
	s := Smart{}
	req := s.Decide(Context{Hour: hour(0, 7, true), SOC: 80})
	assert.InDelta(t, 7, req, 0.001)
}

func TestSmart_NoShaveOffPeak(t *testing.T) {
	s := Smart{}
	req := s.Decide(Context{Hour: hour(0, 7, false), SOC: 80})
	assert.Zero(t, req)
}

func TestSmart_NoShaveAtReserveFloor(t *testing.T) {
	s := Smart{}
	assert.Zero(t, s.Decide(Context{Hour: hour(0, 7, true), SOC: 20}))
	assert.Zero(t, s.Decide(Context{Hour: hour(0, 7, true), SOC: 15}))
}

func TestSmart_ExactBalanceIsIdle(t *testing.T) {
	s := Smart{}
	assert.Zero(t, s.Decide(Context{Hour: hour(3, 3, true), SOC: 50}))
}
