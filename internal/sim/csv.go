package sim

import (
	"encoding/csv"
	"os"
	"strconv"

	"microgrid-sim/internal/model"
)

// WriteTraceCSV writes one strategy trace as a 24-row CSV, one row per hour.
func WriteTraceCSV(path string, trace []model.HourRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"hour",
		"solar_generation_kw",
		"load_demand_kw",
		"battery_soc_percent",
		"grid_usage_kw",
		"battery_charge_kw",
		"battery_discharge_kw",
		"hourly_cost",
		"is_peak_hour",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range trace {
		row := []string{
			strconv.Itoa(r.Hour),
			fmtFloat(r.SolarGeneration),
			fmtFloat(r.LoadDemand),
			fmtFloat(r.BatterySOC),
			fmtFloat(r.GridUsage),
			fmtFloat(r.BatteryCharge),
			fmtFloat(r.BatteryDischarge),
			fmtFloat(r.HourlyCost),
			strconv.FormatBool(r.IsPeakHour),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
