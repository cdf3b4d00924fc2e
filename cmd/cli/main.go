package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"microgrid-sim/internal/analysis"
	"microgrid-sim/internal/config"
	"microgrid-sim/internal/model"
	"microgrid-sim/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		cmdRun(os.Args[2:])
	case "sweep":
		cmdSweep(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli run [--scenario scenario.yaml] [--out results]")
	fmt.Println("  cli sweep [--scenario scenario.yaml] [--capacities 5,10,15,20]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - run writes baseline.csv and smart.csv traces plus a summary to stdout")
	fmt.Println("  - sweep ranks candidate battery capacities by smart-vs-baseline savings")
}

func cmdRun(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	scenarioPath := fs.String("scenario", "", "Path to YAML scenario (optional; defaults otherwise)")
	outDir := fs.String("out", "results", "Output directory for trace CSVs")
	_ = fs.Parse(args)

	cfg := loadScenario(*scenarioPath)

	engine := sim.New()
	res, err := engine.Run(cfg)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		panic(err)
	}
	basePath := filepath.Join(*outDir, "baseline.csv")
	smartPath := filepath.Join(*outDir, "smart.csv")
	if err := sim.WriteTraceCSV(basePath, res.BaselineData); err != nil {
		panic(err)
	}
	if err := sim.WriteTraceCSV(smartPath, res.SmartData); err != nil {
		panic(err)
	}

	s := res.Summary
	fmt.Printf("Wrote traces to %s and %s\n", basePath, smartPath)
	fmt.Printf("Baseline cost=%.2f grid=%.2f kWh\n", s.BaselineTotalCost, s.BaselineGridUsage)
	fmt.Printf("Smart    cost=%.2f grid=%.2f kWh\n", s.SmartTotalCost, s.SmartGridUsage)
	fmt.Printf("Saved    cost=%.2f (%.1f%%) grid=%.2f kWh (%.1f%%)\n",
		s.CostSaved, s.CostSavedPercent, s.GridReduced, s.GridReducedPercent)
}

func cmdSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	scenarioPath := fs.String("scenario", "", "Path to YAML scenario (optional; defaults otherwise)")
	capList := fs.String("capacities", "5,10,15,20", "Comma-separated battery capacities in kWh")
	_ = fs.Parse(args)

	cfg := loadScenario(*scenarioPath)

	capacities := parseCapacities(*capList)
	ranked, err := analysis.SweepCapacities(cfg, capacities)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-4s %-14s %-12s %-12s %-10s %-10s\n",
		"rank", "capacity_kwh", "smart_cost", "cost_saved", "saved_%", "grid_red_%")
	for i, r := range ranked {
		fmt.Printf("%-4d %-14.1f %-12.2f %-12.2f %-10.1f %-10.1f\n",
			i+1,
			r.CapacityKwh,
			r.SmartTotalCost,
			r.CostSaved,
			r.CostSavedPercent,
			r.GridReducedPercent,
		)
	}
}

func loadScenario(path string) model.SimulationConfig {
	if path == "" {
		return model.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func parseCapacities(s string) []float64 {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			panic(fmt.Errorf("invalid capacity %q", p))
		}
		out = append(out, v)
	}
	return out
}
