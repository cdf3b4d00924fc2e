package convert

import "math"

// Round2 rounds to 2 decimal places (kW / currency presentation).
func Round2(number float64) float64 {
	return RoundFloat64(number, 2)
}

// Round1 rounds to 1 decimal place (percentages).
func Round1(number float64) float64 {
	return RoundFloat64(number, 1)
}

func RoundFloat64(number float64, decimals int) float64 {
	return math.Round(number*math.Pow10(decimals)) / math.Pow10(decimals)
}
