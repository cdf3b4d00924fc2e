package models

// The simulation result itself is serialized straight from model.Result,
// whose JSON tags are the frontend's wire schema.

// DefaultsResponse echoes the reference configuration plus the fixed engine
// constants the frontend displays.
type DefaultsResponse struct {
	BatteryCapacityKwh float64 `json:"battery_capacity_kwh"`
	SolarCapacityKw    float64 `json:"solar_capacity_kw"`
	WeatherMode        string  `json:"weather_mode"`
	PeakLoadDemand     float64 `json:"peak_load_demand"`
	OffPeakPrice       float64 `json:"off_peak_price"`
	StandardPrice      float64 `json:"standard_price"`
	PeakPrice          float64 `json:"peak_price"`
	InitialSOC         float64 `json:"initial_soc"`
	BatteryEfficiency  float64 `json:"battery_efficiency"`
	MinSOC             float64 `json:"min_soc"`
	MaxSOC             float64 `json:"max_soc"`
	PeakHours          []int   `json:"peak_hours"`
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
