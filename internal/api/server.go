package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/san-kum/shotsim/internal/config"
	"github.com/san-kum/shotsim/internal/engine"
	"github.com/san-kum/shotsim/internal/metrics"
)

// Server exposes an engine over HTTP. The engine is immutable, so handlers
// share it without locking and derive per-request engines when a request
// overrides conditions or surface.
type Server struct {
	cfg      *config.ServerConfig
	engine   *engine.Engine
	registry *prometheus.Registry
	metrics  *metrics.Collector
}

func NewServer(cfg *config.ServerConfig, e *engine.Engine) *Server {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return &Server{
		cfg:      cfg,
		engine:   e,
		registry: reg,
		metrics:  metrics.NewCollector(reg),
	}
}

// Router builds the gin engine with every route attached.
func (s *Server) Router() *gin.Engine {
	if s.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	if !s.cfg.IsProduction() {
		router.Use(gin.Logger())
	}
	SetupRoutes(router, s)
	return router
}

func (s *Server) metricsHandler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}

func (s *Server) Run() error {
	addr := ":" + s.cfg.Port
	log.Printf("[API] listening on %s (env=%s, surface=%s)", addr, s.cfg.Environment, s.engine.Surface().Name)
	return s.Router().Run(addr)
}
