package tariff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPeakHour_WindowBounds(t *testing.T) {
	assert.False(t, IsPeakHour(0))
	assert.False(t, IsPeakHour(13))
	assert.True(t, IsPeakHour(14))
	assert.True(t, IsPeakHour(21))
	assert.False(t, IsPeakHour(22))
	assert.False(t, IsPeakHour(23))
}

func TestRates_PriceAt(t *testing.T) {
	r := Rates{OffPeak: 4, Standard: 6.5, Peak: 8.5}
	assert.Equal(t, 4.0, r.PriceAt(3))
	assert.Equal(t, 8.5, r.PriceAt(19))
	// Standard never participates in hourly pricing.
	for h := 0; h < 24; h++ {
		assert.NotEqual(t, r.Standard, r.PriceAt(h))
	}
}

func TestPeakHours_ListsWindow(t *testing.T) {
	hours := PeakHours()
	require.Len(t, hours, PeakEndHour-PeakStartHour)
	assert.Equal(t, PeakStartHour, hours[0])
	assert.Equal(t, PeakEndHour-1, hours[len(hours)-1])
}

func TestPreset_KnownPair(t *testing.T) {
	r, err := Preset(SeasonSummer, DiscomTPDDL)
	require.NoError(t, err)
	assert.InDelta(t, 5.60, r.OffPeak, 0.001)
	assert.InDelta(t, 7.00, r.Standard, 0.001)
	assert.InDelta(t, 8.40, r.Peak, 0.001)
	assert.Less(t, r.OffPeak, r.Standard)
	assert.Less(t, r.Standard, r.Peak)
}

func TestPreset_WinterNarrowsSwing(t *testing.T) {
	summer, err := Preset(SeasonSummer, DiscomBRPL)
	require.NoError(t, err)
	winter, err := Preset(SeasonWinter, DiscomBRPL)
	require.NoError(t, err)
	assert.Less(t, winter.Peak-winter.OffPeak, summer.Peak-summer.OffPeak)
}

func TestPreset_UnknownInputs(t *testing.T) {
	_, err := Preset(SeasonSummer, Discom("ACME"))
	assert.Error(t, err)
	_, err = Preset(Season("monsoon"), DiscomTPDDL)
	assert.Error(t, err)
}
