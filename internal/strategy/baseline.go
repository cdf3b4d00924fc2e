package strategy

// Baseline is the reference policy: the battery never participates, so the
// SoC stays at its initial value and every deficit is served by the grid.
type Baseline struct{}

func (Baseline) Name() string { return "baseline" }

func (Baseline) Decide(Context) float64 { return 0 }
