package strategy

import "microgrid-sim/internal/profile"

// Context is the per-hour information a strategy may inspect.
type Context struct {
	Hour profile.Hour
	// SOC is the battery state of charge in percent before this hour's
	// dispatch.
	SOC float64
}

// Strategy decides a requested battery power for one hour.
// Convention: positive kW = discharge to the load, negative kW = charge
// from solar surplus, 0 = leave the battery alone. The battery clips the
// request against its capacity, efficiency, and reserve limits.
type Strategy interface {
	Name() string
	Decide(ctx Context) float64
}
