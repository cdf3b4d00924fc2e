package sim

import (
	"fmt"
	"math"
	"sync"

	"microgrid-sim/internal/convert"
	"microgrid-sim/internal/model"
	"microgrid-sim/internal/profile"
	"microgrid-sim/internal/strategy"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run executes one 24-hour simulation: validate, generate the exogenous
// profile once, compute the baseline and smart traces against it, and
// reduce the pair into the savings summary.
//
// The two traces share only the read-only profile and carry independent
// SoC accumulators, so they are computed concurrently.
func (e *Engine) Run(cfg model.SimulationConfig) (*model.Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	rates, err := cfg.EffectiveRates()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	day := profile.Generate(cfg.SolarCapacityKw, cfg.Weather.Efficiency(), cfg.PeakLoadDemandKw, rates)

	var baseline, smart []model.HourRecord
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		baseline = runTrace(day, cfg, strategy.Baseline{})
	}()
	go func() {
		defer wg.Done()
		smart = runTrace(day, cfg, strategy.Smart{})
	}()
	wg.Wait()

	return &model.Result{
		BaselineData: baseline,
		SmartData:    smart,
		Summary:      Summarize(baseline, smart, cfg.BatteryCapacityKwh),
	}, nil
}

// runTrace folds the strategy over the day, threading a fresh SoC
// accumulator hour to hour. Whatever deficit the battery does not cover is
// imported from the grid; export is not modeled, so grid usage is never
// negative.
func runTrace(day []profile.Hour, cfg model.SimulationConfig, strat strategy.Strategy) []model.HourRecord {
	batt := model.NewBattery(cfg.BatteryCapacityKwh, cfg.InitialSOCFraction)
	trace := make([]model.HourRecord, 0, len(day))

	for _, h := range day {
		req := strat.Decide(strategy.Context{Hour: h, SOC: batt.SOC})
		res := batt.Apply(req)

		deficit := h.LoadKw - h.SolarKw
		grid := math.Max(0, deficit-res.DischargeKw)

		trace = append(trace, model.HourRecord{
			Hour:             h.Hour,
			SolarGeneration:  h.SolarKw,
			LoadDemand:       h.LoadKw,
			BatterySOC:       convert.Round2(res.SOCEnd),
			GridUsage:        convert.Round2(grid),
			BatteryCharge:    convert.Round2(res.ChargeKw),
			BatteryDischarge: convert.Round2(res.DischargeKw),
			HourlyCost:       convert.Round2(grid * h.PriceKwh),
			IsPeakHour:       h.IsPeak,
		})
	}
	return trace
}
