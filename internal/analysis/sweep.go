package analysis

import (
	"fmt"
	"sort"

	"microgrid-sim/internal/model"
	"microgrid-sim/internal/sim"
)

// CapacityResult is a sizing summary for one candidate battery capacity.
type CapacityResult struct {
	CapacityKwh        float64
	SmartTotalCost     float64
	CostSaved          float64
	CostSavedPercent   float64
	GridReducedPercent float64
}

// SweepCapacities reruns the simulation for each candidate capacity and
// ranks the results by absolute cost saved, descending. All other config
// fields are held fixed.
func SweepCapacities(cfg model.SimulationConfig, capacitiesKwh []float64) ([]CapacityResult, error) {
	if len(capacitiesKwh) == 0 {
		return nil, fmt.Errorf("no capacities")
	}

	engine := sim.New()
	out := make([]CapacityResult, 0, len(capacitiesKwh))
	for _, capacity := range capacitiesKwh {
		c := cfg
		c.BatteryCapacityKwh = capacity
		res, err := engine.Run(c)
		if err != nil {
			return nil, fmt.Errorf("capacity %.1f kWh: %w", capacity, err)
		}
		out = append(out, CapacityResult{
			CapacityKwh:        capacity,
			SmartTotalCost:     res.Summary.SmartTotalCost,
			CostSaved:          res.Summary.CostSaved,
			CostSavedPercent:   res.Summary.CostSavedPercent,
			GridReducedPercent: res.Summary.GridReducedPercent,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CostSaved > out[j].CostSaved
	})
	return out, nil
}
