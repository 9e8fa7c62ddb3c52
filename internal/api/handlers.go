package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/san-kum/shotsim/internal/config"
	"github.com/san-kum/shotsim/internal/dynamo"
	"github.com/san-kum/shotsim/internal/engine"
	"github.com/san-kum/shotsim/internal/ground"
	"github.com/san-kum/shotsim/internal/metrics"
	"github.com/san-kum/shotsim/internal/shot"
)

var startTime = time.Now()

const (
	version      = "1.0.0"
	maxBatchSize = 256
)

// ShotRequest is one shot plus optional per-request overrides. Omitted
// conditions and surface fall back to the server defaults.
type ShotRequest struct {
	Shot       shot.LaunchData  `json:"shot"`
	Conditions *shot.Conditions `json:"conditions,omitempty"`
	Surface    string           `json:"surface,omitempty"`
}

type BatchRequest struct {
	Shots      []shot.LaunchData `json:"shots" binding:"required"`
	Conditions *shot.Conditions  `json:"conditions,omitempty"`
	Surface    string            `json:"surface,omitempty"`
}

type BatchResponse struct {
	Results []shot.ShotResult  `json:"results"`
	Stats   map[string]float64 `json:"stats"`
}

// HealthCheck returns server health status
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "shotsim-api",
		"version": version,
		"uptime":  time.Since(startTime).String(),
	})
}

// engineFor applies request overrides to the server engine.
func (s *Server) engineFor(conditions *shot.Conditions, surface string) (*engine.Engine, error) {
	e := s.engine
	if surface != "" {
		var err error
		if e, err = e.WithSurface(surface); err != nil {
			return nil, err
		}
	}
	if conditions != nil {
		e = e.WithConditions(*conditions)
	}
	return e, nil
}

func (s *Server) simulate(e *engine.Engine, ld shot.LaunchData, source string) shot.ShotResult {
	start := time.Now()
	r := e.Simulate(ld)
	s.metrics.ObserveShot(r, source, time.Since(start))
	return r
}

func badRequest(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, dynamo.ErrUnknownSurface) {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// SimulateShot runs a single shot: POST /api/v1/shots
func (s *Server) SimulateShot(c *gin.Context) {
	var req ShotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Expected {\"shot\": {...}}."})
		return
	}

	e, err := s.engineFor(req.Conditions, req.Surface)
	if err != nil {
		badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, s.simulate(e, req.Shot, "http"))
}

// SimulateBatch runs many shots concurrently and reports session stats.
func (s *Server) SimulateBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Expected {\"shots\": [...]}."})
		return
	}
	if len(req.Shots) > maxBatchSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "too many shots in one batch", "max": maxBatchSize})
		return
	}

	e, err := s.engineFor(req.Conditions, req.Surface)
	if err != nil {
		badRequest(c, err)
		return
	}

	start := time.Now()
	results := e.SimulateBatch(req.Shots)
	per := time.Since(start)
	if len(results) > 0 {
		per /= time.Duration(len(results))
	}
	for _, r := range results {
		s.metrics.ObserveShot(r, "batch", per)
	}

	c.JSON(http.StatusOK, BatchResponse{
		Results: results,
		Stats:   metrics.Collect(metrics.Standard(), results),
	})
}

// SimulatePreset runs a named preset shot on the server engine.
func (s *Server) SimulatePreset(c *gin.Context) {
	name := c.Param("name")
	preset := config.GetPreset(name)
	if preset == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown preset", "preset": name})
		return
	}

	e, err := s.engineFor(&preset.Conditions, c.DefaultQuery("surface", preset.Surface))
	if err != nil {
		badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, s.simulate(e, preset.Shot, "preset"))
}

func ListSurfaces(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"surfaces": ground.All()})
}

func ListPresets(c *gin.Context) {
	presets := make(map[string]shot.LaunchData, len(config.Presets))
	for _, name := range config.ListPresets() {
		presets[name] = config.GetPreset(name).Shot
	}
	c.JSON(http.StatusOK, gin.H{"names": config.ListPresets(), "presets": presets})
}
