package metrics

import (
	"math"

	"github.com/san-kum/shotsim/internal/shot"
)

// Metric aggregates a value over a sequence of shot results.
type Metric interface {
	Name() string
	Observe(r shot.ShotResult)
	Value() float64
	Reset()
}

// Standard returns the metrics reported for a session of shots.
func Standard() []Metric {
	return []Metric{NewMeanCarry(), NewDispersion(), NewFairwayHit(DefaultFairwayWidth)}
}

// Collect feeds every result to every metric and returns the values by name.
func Collect(ms []Metric, results []shot.ShotResult) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		for _, r := range results {
			m.Observe(r)
		}
		out[m.Name()] = m.Value()
	}
	return out
}

type MeanCarry struct {
	name    string
	sum     float64
	samples int
}

func NewMeanCarry() *MeanCarry {
	return &MeanCarry{name: "mean_carry"}
}

func (m *MeanCarry) Name() string { return m.name }

func (m *MeanCarry) Observe(r shot.ShotResult) {
	m.sum += r.Summary.CarryDistance
	m.samples++
}

func (m *MeanCarry) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanCarry) Reset() {
	m.sum = 0
	m.samples = 0
}

// Dispersion is the population standard deviation of offline distance.
type Dispersion struct {
	name    string
	sum     float64
	sumSq   float64
	samples int
}

func NewDispersion() *Dispersion {
	return &Dispersion{name: "dispersion"}
}

func (d *Dispersion) Name() string { return d.name }

func (d *Dispersion) Observe(r shot.ShotResult) {
	x := r.Summary.OfflineDistance
	d.sum += x
	d.sumSq += x * x
	d.samples++
}

func (d *Dispersion) Value() float64 {
	if d.samples == 0 {
		return 0
	}
	n := float64(d.samples)
	mean := d.sum / n
	return math.Sqrt(math.Max(0, d.sumSq/n-mean*mean))
}

func (d *Dispersion) Reset() {
	d.sum = 0
	d.sumSq = 0
	d.samples = 0
}

// DefaultFairwayWidth is a typical fairway width in yards.
const DefaultFairwayWidth = 35.0

// FairwayHit is the fraction of shots whose final resting point lies within
// half the fairway width of the target line.
type FairwayHit struct {
	name    string
	width   float64
	hits    int
	samples int
}

func NewFairwayHit(width float64) *FairwayHit {
	return &FairwayHit{
		name:  "fairway_hit",
		width: width,
	}
}

func (f *FairwayHit) Name() string { return f.name }

func (f *FairwayHit) Observe(r shot.ShotResult) {
	f.samples++
	if math.Abs(r.Final().Z) <= f.width/2 {
		f.hits++
	}
}

func (f *FairwayHit) Value() float64 {
	if f.samples == 0 {
		return 0
	}
	return float64(f.hits) / float64(f.samples)
}

func (f *FairwayHit) Reset() {
	f.hits = 0
	f.samples = 0
}
