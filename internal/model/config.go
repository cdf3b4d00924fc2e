package model

import (
	"errors"
	"fmt"

	"microgrid-sim/internal/tariff"
)

// WeatherMode scales the solar profile for the whole day.
type WeatherMode string

const (
	WeatherSunny  WeatherMode = "sunny"
	WeatherCloudy WeatherMode = "cloudy"
)

// Efficiency returns the solar output multiplier for the mode.
// Callers must validate the mode first; unknown modes yield 0.
func (m WeatherMode) Efficiency() float64 {
	switch m {
	case WeatherSunny:
		return 1.0
	case WeatherCloudy:
		return 0.5
	default:
		return 0
	}
}

// SimulationConfig holds the parameters for one 24-hour run.
// Units:
// - BatteryCapacityKwh: kWh
// - SolarCapacityKw, PeakLoadDemandKw: kW
// - InitialSOCFraction: 0..1
// - Rates: currency/kWh
type SimulationConfig struct {
	BatteryCapacityKwh float64
	SolarCapacityKw    float64
	PeakLoadDemandKw   float64
	Weather            WeatherMode
	InitialSOCFraction float64
	Rates              tariff.Rates

	// DERC preset selection; only consulted when TariffMode is ModeDERC.
	TariffMode tariff.Mode
	DERCSeason tariff.Season
	DERCDiscom tariff.Discom
}

// Default returns the reference lab configuration (10 kWh battery, 5 kW
// solar, 7 kW peak load, sunny, half-charged, manual 4/6.5/8.5 rates).
func Default() SimulationConfig {
	return SimulationConfig{
		BatteryCapacityKwh: 10,
		SolarCapacityKw:    5,
		PeakLoadDemandKw:   7,
		Weather:            WeatherSunny,
		InitialSOCFraction: 0.5,
		Rates: tariff.Rates{
			OffPeak:  4.00,
			Standard: 6.50,
			Peak:     8.50,
		},
		TariffMode: tariff.ModeManual,
	}
}

// Validate rejects a config before any hour is computed. Invalid inputs are
// never clamped; the caller gets a descriptive error instead.
func (c SimulationConfig) Validate() error {
	if c.BatteryCapacityKwh <= 0 {
		return errors.New("battery_capacity_kwh must be > 0")
	}
	if c.SolarCapacityKw <= 0 {
		return errors.New("solar_capacity_kw must be > 0")
	}
	if c.PeakLoadDemandKw <= 0 {
		return errors.New("peak_load_demand must be > 0")
	}
	if c.Weather != WeatherSunny && c.Weather != WeatherCloudy {
		return fmt.Errorf("weather_mode must be %q or %q, got %q", WeatherSunny, WeatherCloudy, c.Weather)
	}
	if c.InitialSOCFraction < 0 || c.InitialSOCFraction > 1 {
		return fmt.Errorf("initial_soc must be in [0, 1], got %g", c.InitialSOCFraction)
	}
	rates, err := c.EffectiveRates()
	if err != nil {
		return err
	}
	if rates.OffPeak <= 0 || rates.Standard <= 0 || rates.Peak <= 0 {
		return errors.New("all tariff rates must be > 0")
	}
	return nil
}

// EffectiveRates resolves the rates the dispatch engine will bill against:
// the manual rates, or the DERC preset when the config selects one.
func (c SimulationConfig) EffectiveRates() (tariff.Rates, error) {
	switch c.TariffMode {
	case "", tariff.ModeManual:
		return c.Rates, nil
	case tariff.ModeDERC:
		return tariff.Preset(c.DERCSeason, c.DERCDiscom)
	default:
		return tariff.Rates{}, fmt.Errorf("tariff_mode must be %q or %q, got %q", tariff.ModeManual, tariff.ModeDERC, c.TariffMode)
	}
}
