package sim

import (
	"microgrid-sim/internal/convert"
	"microgrid-sim/internal/model"
)

// Summarize reduces the two traces into totals and comparison metrics.
// Totals are accumulated from the emitted hourly values, so summing a
// returned trace reproduces the reported totals exactly.
func Summarize(baseline, smart []model.HourRecord, batteryCapacityKwh float64) model.Summary {
	baseCost, baseGrid := totals(baseline)
	smartCost, smartGrid := totals(smart)

	costSaved := baseCost - smartCost
	gridReduced := baseGrid - smartGrid

	return model.Summary{
		BaselineTotalCost:  convert.Round2(baseCost),
		SmartTotalCost:     convert.Round2(smartCost),
		CostSaved:          convert.Round2(costSaved),
		CostSavedPercent:   convert.Round1(percentOf(costSaved, baseCost)),
		BaselineGridUsage:  convert.Round2(baseGrid),
		SmartGridUsage:     convert.Round2(smartGrid),
		GridReduced:        convert.Round2(gridReduced),
		GridReducedPercent: convert.Round1(percentOf(gridReduced, baseGrid)),
		BatteryCapacityKwh: batteryCapacityKwh,
	}
}

func totals(trace []model.HourRecord) (cost, grid float64) {
	for _, r := range trace {
		cost += r.HourlyCost
		grid += r.GridUsage
	}
	return cost, grid
}

// percentOf defines part/whole as 0% when the whole is 0 (degenerate
// all-solar or zero-usage baselines), never NaN or Inf.
func percentOf(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}
