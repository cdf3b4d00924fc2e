package tariff

import (
	"fmt"

	"microgrid-sim/internal/convert"
)

// Season selects the DERC time-of-day surcharge schedule.
type Season string

const (
	SeasonSummer Season = "summer"
	SeasonWinter Season = "winter"
)

// Discom identifies a Delhi distribution company.
type Discom string

const (
	DiscomTPDDL Discom = "TPDDL"
	DiscomBRPL  Discom = "BRPL"
	DiscomBYPL  Discom = "BYPL"
	DiscomNDMC  Discom = "NDMC"
)

// Base energy charge per DISCOM in Rs/kWh (domestic ToD slab).
var dercBaseRate = map[Discom]float64{
	DiscomTPDDL: 7.00,
	DiscomBRPL:  7.25,
	DiscomBYPL:  7.25,
	DiscomNDMC:  6.75,
}

// ToD swing around the base rate: peak pays base*(1+swing), off-peak gets
// base*(1-swing). The DERC schedule widens the swing in summer.
var dercSeasonSwing = map[Season]float64{
	SeasonSummer: 0.20,
	SeasonWinter: 0.10,
}

// Preset resolves the three-tier rates for a DERC season/DISCOM pair.
func Preset(season Season, discom Discom) (Rates, error) {
	base, ok := dercBaseRate[discom]
	if !ok {
		return Rates{}, fmt.Errorf("unknown DERC discom %q", discom)
	}
	swing, ok := dercSeasonSwing[season]
	if !ok {
		return Rates{}, fmt.Errorf("unknown DERC season %q", season)
	}
	return Rates{
		OffPeak:  convert.Round2(base * (1 - swing)),
		Standard: base,
		Peak:     convert.Round2(base * (1 + swing)),
	}, nil
}
