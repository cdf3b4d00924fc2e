package model

// HourRecord is one row of a strategy trace. Field names match the JSON
// shape the lab frontend consumes; all kW/cost values are rounded to 2
// decimals at emission.
type HourRecord struct {
	Hour             int     `json:"hour"`
	SolarGeneration  float64 `json:"solar_generation"`
	LoadDemand       float64 `json:"load_demand"`
	BatterySOC       float64 `json:"battery_soc"`
	GridUsage        float64 `json:"grid_usage"`
	BatteryCharge    float64 `json:"battery_charge"`
	BatteryDischarge float64 `json:"battery_discharge"`
	HourlyCost       float64 `json:"hourly_cost"`
	IsPeakHour       bool    `json:"is_peak_hour"`
}

// Summary compares the two strategy traces. Costs are rounded to 2
// decimals, percentages to 1.
type Summary struct {
	BaselineTotalCost  float64 `json:"baseline_total_cost"`
	SmartTotalCost     float64 `json:"smart_total_cost"`
	CostSaved          float64 `json:"cost_saved"`
	CostSavedPercent   float64 `json:"cost_saved_percent"`
	BaselineGridUsage  float64 `json:"baseline_grid_usage"`
	SmartGridUsage     float64 `json:"smart_grid_usage"`
	GridReduced        float64 `json:"grid_reduced"`
	GridReducedPercent float64 `json:"grid_reduced_percent"`
	BatteryCapacityKwh float64 `json:"battery_capacity_kwh"`
}

// Result is the complete output of one simulation call.
type Result struct {
	BaselineData []HourRecord `json:"baseline_data"`
	SmartData    []HourRecord `json:"smart_data"`
	Summary      Summary      `json:"summary"`
}
