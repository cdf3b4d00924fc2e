package tariff

// Mode selects how the three-tier rates are sourced.
type Mode string

const (
	// ModeManual uses the rates supplied in the request/scenario as-is.
	ModeManual Mode = "manual"
	// ModeDERC resolves the rates from a seasonal DERC preset (see derc.go).
	ModeDERC Mode = "derc"
)

// Peak window on a 24h clock: [PeakStartHour, PeakEndHour).
const (
	PeakStartHour = 14
	PeakEndHour   = 22
)

// Rates is the three-tier time-of-day tariff in currency/kWh.
//
// Standard is accepted and echoed for compatibility with the lab UI, but
// dispatch pricing is two-tier: peak hours bill at Peak, all other hours
// at OffPeak. Standard never participates in rule evaluation.
type Rates struct {
	OffPeak  float64
	Standard float64
	Peak     float64
}

// IsPeakHour reports whether hour (0..23) falls in the peak window.
func (r Rates) IsPeakHour(hour int) bool {
	return IsPeakHour(hour)
}

// PriceAt returns the applicable price for an hour of day.
func (r Rates) PriceAt(hour int) float64 {
	if IsPeakHour(hour) {
		return r.Peak
	}
	return r.OffPeak
}

func IsPeakHour(hour int) bool {
	return hour >= PeakStartHour && hour < PeakEndHour
}

// PeakHours lists the peak hours of the day, for the defaults endpoint.
func PeakHours() []int {
	hours := make([]int, 0, PeakEndHour-PeakStartHour)
	for h := PeakStartHour; h < PeakEndHour; h++ {
		hours = append(hours, h)
	}
	return hours
}
