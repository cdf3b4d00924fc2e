package config

import (
	"fmt"
	"os"

	"microgrid-sim/internal/model"
	"microgrid-sim/internal/tariff"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk scenario shape (YAML). All fields are optional;
// anything left zero takes the reference default.
type Config struct {
	Scenario ScenarioConfig `yaml:"scenario"`
}

type ScenarioConfig struct {
	BatteryCapacityKwh float64 `yaml:"battery_capacity_kwh"`
	SolarCapacityKw    float64 `yaml:"solar_capacity_kw"`
	PeakLoadDemandKw   float64 `yaml:"peak_load_demand_kw"`
	WeatherMode        string  `yaml:"weather_mode"`
	// Note: a literal 0 cannot be expressed here because 0 means "use the
	// default" under the merge; the API accepts an explicit 0 if needed.
	InitialSOC    float64 `yaml:"initial_soc"`
	OffPeakPrice  float64 `yaml:"off_peak_price"`
	StandardPrice float64 `yaml:"standard_price"`
	PeakPrice     float64 `yaml:"peak_price"`
	TariffMode    string  `yaml:"tariff_mode"`
	DERCSeason    string  `yaml:"derc_season"`
	DERCDiscom    string  `yaml:"derc_discom"`
}

// Load reads a scenario file, overlays it onto the reference defaults, and
// validates the result.
func Load(path string) (model.SimulationConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.SimulationConfig{}, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return model.SimulationConfig{}, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	cfg := Merge(model.Default(), c.Scenario)
	if err := cfg.Validate(); err != nil {
		return model.SimulationConfig{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	return cfg, nil
}

// Merge overlays non-zero scenario fields onto base.
func Merge(base model.SimulationConfig, override ScenarioConfig) model.SimulationConfig {
	out := base
	if override.BatteryCapacityKwh != 0 {
		out.BatteryCapacityKwh = override.BatteryCapacityKwh
	}
	if override.SolarCapacityKw != 0 {
		out.SolarCapacityKw = override.SolarCapacityKw
	}
	if override.PeakLoadDemandKw != 0 {
		out.PeakLoadDemandKw = override.PeakLoadDemandKw
	}
	if override.WeatherMode != "" {
		out.Weather = model.WeatherMode(override.WeatherMode)
	}
	if override.InitialSOC != 0 {
		out.InitialSOCFraction = override.InitialSOC
	}
	if override.OffPeakPrice != 0 {
		out.Rates.OffPeak = override.OffPeakPrice
	}
	if override.StandardPrice != 0 {
		out.Rates.Standard = override.StandardPrice
	}
	if override.PeakPrice != 0 {
		out.Rates.Peak = override.PeakPrice
	}
	if override.TariffMode != "" {
		out.TariffMode = tariff.Mode(override.TariffMode)
	}
	if override.DERCSeason != "" {
		out.DERCSeason = tariff.Season(override.DERCSeason)
	}
	if override.DERCDiscom != "" {
		out.DERCDiscom = tariff.Discom(override.DERCDiscom)
	}
	return out
}
