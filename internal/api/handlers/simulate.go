package handlers

import (
	"net/http"

	"microgrid-sim/internal/api/models"
	"microgrid-sim/internal/model"
	"microgrid-sim/internal/sim"
	"microgrid-sim/internal/tariff"

	"github.com/gin-gonic/gin"
)

// SimulateHandler handles simulation requests.
type SimulateHandler struct {
	engine *sim.Engine
}

func NewSimulateHandler() *SimulateHandler {
	return &SimulateHandler{engine: sim.New()}
}

// Run handles POST /api/v1/simulate. An empty body runs the defaults.
func (h *SimulateHandler) Run(c *gin.Context) {
	var req models.SimulationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_REQUEST",
					Message: err.Error(),
				},
			})
			return
		}
	}

	result, err := h.engine.Run(req.ToConfig())
	if err != nil {
		// The engine has no I/O; the only failure mode is a rejected config.
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// RunDefault handles GET /api/v1/simulate/default, a convenience endpoint
// for quick testing without a request body.
func (h *SimulateHandler) RunDefault(c *gin.Context) {
	result, err := h.engine.Run(model.Default())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Defaults handles GET /api/v1/config/defaults.
func (h *SimulateHandler) Defaults(c *gin.Context) {
	cfg := model.Default()
	c.JSON(http.StatusOK, models.DefaultsResponse{
		BatteryCapacityKwh: cfg.BatteryCapacityKwh,
		SolarCapacityKw:    cfg.SolarCapacityKw,
		WeatherMode:        string(cfg.Weather),
		PeakLoadDemand:     cfg.PeakLoadDemandKw,
		OffPeakPrice:       cfg.Rates.OffPeak,
		StandardPrice:      cfg.Rates.Standard,
		PeakPrice:          cfg.Rates.Peak,
		InitialSOC:         cfg.InitialSOCFraction,
		BatteryEfficiency:  model.ChargeEfficiency,
		MinSOC:             model.ReserveFloorPercent / 100,
		MaxSOC:             model.CeilingPercent / 100,
		PeakHours:          tariff.PeakHours(),
	})
}
