package models

import (
	"microgrid-sim/internal/model"
	"microgrid-sim/internal/tariff"
)

// SimulationRequest mirrors the lab frontend's request body. Every field is
// optional; missing fields take the reference defaults, so an empty body
// runs the default scenario. Pointers distinguish "absent" from an explicit
// zero (which validation then rejects where zero is invalid).
type SimulationRequest struct {
	BatteryCapacityKwh *float64 `json:"battery_capacity_kwh"`
	SolarCapacityKw    *float64 `json:"solar_capacity_kw"`
	WeatherMode        *string  `json:"weather_mode"`
	PeakLoadDemand     *float64 `json:"peak_load_demand"`
	OffPeakPrice       *float64 `json:"off_peak_price"`
	StandardPrice      *float64 `json:"standard_price"`
	PeakPrice          *float64 `json:"peak_price"`
	InitialSOC         *float64 `json:"initial_soc"`
	TariffMode         *string  `json:"tariff_mode"`
	DERCSeason         *string  `json:"derc_season"`
	DERCDiscom         *string  `json:"derc_discom"`
}

// ToConfig overlays the provided fields onto the reference defaults.
func (r SimulationRequest) ToConfig() model.SimulationConfig {
	cfg := model.Default()
	if r.BatteryCapacityKwh != nil {
		cfg.BatteryCapacityKwh = *r.BatteryCapacityKwh
	}
	if r.SolarCapacityKw != nil {
		cfg.SolarCapacityKw = *r.SolarCapacityKw
	}
	if r.WeatherMode != nil {
		cfg.Weather = model.WeatherMode(*r.WeatherMode)
	}
	if r.PeakLoadDemand != nil {
		cfg.PeakLoadDemandKw = *r.PeakLoadDemand
	}
	if r.OffPeakPrice != nil {
		cfg.Rates.OffPeak = *r.OffPeakPrice
	}
	if r.StandardPrice != nil {
		cfg.Rates.Standard = *r.StandardPrice
	}
	if r.PeakPrice != nil {
		cfg.Rates.Peak = *r.PeakPrice
	}
	if r.InitialSOC != nil {
		cfg.InitialSOCFraction = *r.InitialSOC
	}
	if r.TariffMode != nil {
		cfg.TariffMode = tariff.Mode(*r.TariffMode)
	}
	if r.DERCSeason != nil {
		cfg.DERCSeason = tariff.Season(*r.DERCSeason)
	}
	if r.DERCDiscom != nil {
		cfg.DERCDiscom = tariff.Discom(*r.DERCDiscom)
	}
	return cfg
}
