package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"microgrid-sim/internal/model"
)

func trace(costPerHour, gridPerHour float64) []model.HourRecord {
	out := make([]model.HourRecord, 24)
	for h := range out {
		out[h] = model.HourRecord{Hour: h, HourlyCost: costPerHour, GridUsage: gridPerHour}
	}
	return out
}

func TestSummarize_ComparesTraces(t *testing.T) {
	baseline := trace(4, 2) // 96 currency, 48 kWh
	smart := trace(3, 1.5)  // 72 currency, 36 kWh

	s := Summarize(baseline, smart, 10)
	assert.InDelta(t, 96, s.BaselineTotalCost, 0.001)
	assert.InDelta(t, 72, s.SmartTotalCost, 0.001)
	assert.InDelta(t, 24, s.CostSaved, 0.001)
	assert.InDelta(t, 25.0, s.CostSavedPercent, 0.001)
	assert.InDelta(t, 48, s.BaselineGridUsage, 0.001)
	assert.InDelta(t, 36, s.SmartGridUsage, 0.001)
	assert.InDelta(t, 12, s.GridReduced, 0.001)
	assert.InDelta(t, 25.0, s.GridReducedPercent, 0.001)
	assert.Equal(t, 10.0, s.BatteryCapacityKwh)
}

func TestSummarize_ZeroBaselineYieldsZeroPercents(t *testing.T) {
	// Degenerate all-solar day: nothing imported under either strategy.
	s := Summarize(trace(0, 0), trace(0, 0), 10)
	assert.Zero(t, s.CostSavedPercent)
	assert.Zero(t, s.GridReducedPercent)
	assert.False(t, math.IsNaN(s.CostSavedPercent))
	assert.False(t, math.IsInf(s.GridReducedPercent, 0))
}

func TestSummarize_PercentRounding(t *testing.T) {
	baseline := trace(3, 3) // 72
	smart := trace(2, 2)    // 48 -> 33.333...% saved
	s := Summarize(baseline, smart, 10)
	assert.InDelta(t, 33.3, s.CostSavedPercent, 0.001)
}
