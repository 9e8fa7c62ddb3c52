package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/san-kum/shotsim/internal/shot"
)

// Collector holds the Prometheus series exported by the HTTP server.
type Collector struct {
	shotsTotal  *prometheus.CounterVec
	carryYards  *prometheus.HistogramVec
	bounces     prometheus.Histogram
	simDuration prometheus.Histogram
	wsClients   prometheus.Gauge
	airDensity  prometheus.Gauge
}

// NewCollector creates the series and registers them with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		shotsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shotsim_shots_total",
				Help: "Simulated shots by surface and source.",
			},
			[]string{"surface", "source"},
		),
		carryYards: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shotsim_carry_yards",
				Help:    "Carry distance of simulated shots.",
				Buckets: prometheus.LinearBuckets(25, 25, 14),
			},
			[]string{"surface"},
		),
		bounces: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "shotsim_bounces",
			Help:    "Bounces per simulated shot.",
			Buckets: prometheus.LinearBuckets(0, 1, 6),
		}),
		simDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "shotsim_simulation_seconds",
			Help:    "Wall time spent in one simulation.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
		wsClients:  prometheus.NewGauge(prometheus.GaugeOpts{Name: "shotsim_ws_clients", Help: "Open websocket connections."}),
		airDensity: prometheus.NewGauge(prometheus.GaugeOpts{Name: "shotsim_air_density_kg_per_m3", Help: "Air density of the last simulated shot."}),
	}

	reg.MustRegister(c.shotsTotal, c.carryYards, c.bounces, c.simDuration, c.wsClients, c.airDensity)
	return c
}

// ObserveShot records one completed simulation.
func (c *Collector) ObserveShot(r shot.ShotResult, source string, took time.Duration) {
	c.shotsTotal.WithLabelValues(r.Surface, source).Inc()
	c.carryYards.WithLabelValues(r.Surface).Observe(r.Summary.CarryDistance)
	c.bounces.Observe(float64(r.Summary.BounceCount))
	c.simDuration.Observe(took.Seconds())
	c.airDensity.Set(r.Conditions.AirDensity())
}

func (c *Collector) ClientConnected()    { c.wsClients.Inc() }
func (c *Collector) ClientDisconnected() { c.wsClients.Dec() }
