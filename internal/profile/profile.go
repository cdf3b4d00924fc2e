package profile

import (
	"math"

	"microgrid-sim/internal/convert"
	"microgrid-sim/internal/tariff"
)

// Reference installation the built-in shapes were measured against.
// Solar scales linearly off a 5 kW-class system peaking at 7 kW; the load
// shape is normalized to a 7 kW evening peak at hour 19.
const (
	ReferenceSolarCapacityKw = 5.0
	ReferenceLoadPeakKw      = 7.0

	solarPeakKw     = 7.0
	solarNoonHour   = 12.0
	solarSigmaHours = 3.0

	// Generation window; solar is zero outside [sunriseHour, sunsetHour].
	sunriseHour = 6
	sunsetHour  = 18
)

// referenceLoad is the typical residential daily curve in kW: morning rise,
// midday plateau, evening peak at hour 19.
var referenceLoad = [24]float64{
	1.5, 1.5, 1.5, 1.5, 2.0, 2.5, 3.5, 4.0, 4.5, 3.5, 3.0, 2.5,
	2.5, 2.5, 3.0, 3.5, 4.0, 5.0, 6.5, 7.0, 6.5, 5.5, 4.0, 2.5,
}

// Hour is the exogenous state for one hour: what the sun and the household
// do regardless of dispatch strategy.
type Hour struct {
	Hour     int
	SolarKw  float64
	LoadKw   float64
	IsPeak   bool
	PriceKwh float64
}

// Generate produces the deterministic 24-hour profile for a run.
// weatherEfficiency scales solar output (1.0 sunny, 0.5 cloudy). Values are
// rounded to 2 decimals here, at emission, so downstream accumulators never
// compound rounding error.
func Generate(solarCapacityKw, weatherEfficiency, peakLoadKw float64, rates tariff.Rates) []Hour {
	day := make([]Hour, 24)
	for h := 0; h < 24; h++ {
		day[h] = Hour{
			Hour:     h,
			SolarKw:  convert.Round2(solarAt(h) * (solarCapacityKw / ReferenceSolarCapacityKw) * weatherEfficiency),
			LoadKw:   convert.Round2(referenceLoad[h] * (peakLoadKw / ReferenceLoadPeakKw)),
			IsPeak:   tariff.IsPeakHour(h),
			PriceKwh: rates.PriceAt(h),
		}
	}
	return day
}

// solarAt is the reference bell curve: a Gaussian centered at noon with a
// 7 kW peak, truncated to the generation window.
func solarAt(hour int) float64 {
	if hour < sunriseHour || hour > sunsetHour {
		return 0
	}
	x := (float64(hour) - solarNoonHour) / solarSigmaHours
	return solarPeakKw * math.Exp(-0.5*x*x)
}
