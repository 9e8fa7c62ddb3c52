package engine_test

import (
	"encoding/json"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/shotsim/internal/dynamo"
	"github.com/san-kum/shotsim/internal/engine"
	"github.com/san-kum/shotsim/internal/shot"
)

var (
	driver    = shot.LaunchData{BallSpeed: 167, VLA: 10.9, BackSpin: 2686}
	driver160 = shot.LaunchData{BallSpeed: 160, VLA: 11.0, BackSpin: 3000}
	sevenIron = shot.LaunchData{BallSpeed: 120, VLA: 16.3, BackSpin: 7097}
	wedge     = shot.LaunchData{BallSpeed: 102, VLA: 24.2, BackSpin: 9304}
)

func mustEngine(c shot.Conditions, surface string, cfg engine.Config) *engine.Engine {
	e, err := engine.New(c, surface, cfg)
	Expect(err).NotTo(HaveOccurred())
	return e
}

func standardEngine() *engine.Engine {
	return mustEngine(shot.StandardConditions(), "Fairway", engine.DefaultConfig())
}

func countPhase(r shot.ShotResult, p shot.Phase) int {
	n := 0
	for _, pt := range r.Trajectory {
		if pt.Phase == p {
			n++
		}
	}
	return n
}

func expectWellFormed(r shot.ShotResult, cfg engine.Config) {
	Expect(r.Trajectory).NotTo(BeEmpty())
	Expect(len(r.Trajectory)).To(BeNumerically("<=", cfg.MaxTrajectoryPoints))
	Expect(r.Final().Phase).To(Equal(shot.PhaseStopped))
	Expect(r.Final().Y).To(BeZero())
	Expect(countPhase(r, shot.PhaseStopped)).To(Equal(1))

	for i := 1; i < len(r.Trajectory); i++ {
		Expect(r.Trajectory[i].T).To(BeNumerically(">=", r.Trajectory[i-1].T), "time went backwards at %d", i)
	}

	s := r.Summary
	Expect(s.CarryDistance).To(BeNumerically(">=", 0))
	Expect(s.TotalDistance).To(BeNumerically(">=", s.CarryDistance))
	Expect(s.RollDistance).To(BeNumerically("~", s.TotalDistance-s.CarryDistance, 1e-9))
	Expect(s.BounceCount).To(BeNumerically("<=", cfg.MaxBounces))
	Expect(s.TotalTime).To(BeNumerically(">=", s.FlightTime))
}

var _ = Describe("Engine", func() {
	Describe("construction", func() {
		It("accepts every surface in the table regardless of case", func() {
			for _, name := range []string{"Fairway", "green", "ROUGH"} {
				_, err := engine.New(shot.StandardConditions(), name, engine.DefaultConfig())
				Expect(err).NotTo(HaveOccurred(), name)
			}
		})

		It("fails fast on an unknown surface", func() {
			_, err := engine.New(shot.StandardConditions(), "bunker", engine.DefaultConfig())
			Expect(err).To(MatchError(dynamo.ErrUnknownSurface))
			Expect(err.Error()).To(ContainSubstring("bunker"))
		})

		DescribeTable("rejects invalid configs",
			func(mutate func(*engine.Config), field string) {
				cfg := engine.DefaultConfig()
				mutate(&cfg)
				_, err := engine.New(shot.StandardConditions(), "Fairway", cfg)
				Expect(err).To(MatchError(dynamo.ErrInvalidConfig))

				var ce *dynamo.ConfigError
				Expect(errors.As(err, &ce)).To(BeTrue())
				Expect(ce.Field).To(Equal(field))
			},
			Entry("zero dt", func(c *engine.Config) { c.Dt = 0 }, "dt"),
			Entry("negative max time", func(c *engine.Config) { c.MaxTime = -1 }, "max_time"),
			Entry("zero iterations", func(c *engine.Config) { c.MaxIterations = 0 }, "max_iterations"),
			Entry("negative bounces", func(c *engine.Config) { c.MaxBounces = -1 }, "max_bounces"),
			Entry("tiny point cap", func(c *engine.Config) { c.MaxTrajectoryPoints = 1 }, "max_trajectory_points"),
			Entry("zero flight sampling", func(c *engine.Config) { c.FlightSampleEvery = 0 }, "flight_sample_every"),
			Entry("zero roll sampling", func(c *engine.Config) { c.RollSampleInterval = 0 }, "roll_sample_interval"),
			Entry("negative spin decay", func(c *engine.Config) { c.SpinDecayRate = -0.1 }, "spin_decay_rate"),
		)

		It("rejects an unknown integrator", func() {
			cfg := engine.DefaultConfig()
			cfg.Integrator = "midpoint"
			_, err := engine.New(shot.StandardConditions(), "Fairway", cfg)
			Expect(err).To(MatchError(dynamo.ErrInvalidConfig))
			Expect(err).To(MatchError(dynamo.ErrUnknownIntegrator))
		})

		It("replaces rather than mutates on reconfiguration", func() {
			e := standardEngine()
			windy := shot.StandardConditions()
			windy.WindSpeedMph = 20

			e2 := e.WithConditions(windy)
			Expect(e2).NotTo(BeIdenticalTo(e))
			Expect(e.Conditions().WindSpeedMph).To(BeZero())
			Expect(e2.Conditions().WindSpeedMph).To(Equal(20.0))

			e3, err := e.WithSurface("green")
			Expect(err).NotTo(HaveOccurred())
			Expect(e3.Surface().Name).To(Equal("Green"))
			Expect(e.Surface().Name).To(Equal("Fairway"))

			_, err = e.WithSurface("sand")
			Expect(err).To(MatchError(dynamo.ErrUnknownSurface))
		})
	})

	Describe("degenerate launches", func() {
		DescribeTable("return a single STOPPED point at the origin",
			func(speed float64) {
				r := standardEngine().Simulate(shot.LaunchData{BallSpeed: speed, VLA: 12, BackSpin: 3000})
				Expect(r.Trajectory).To(HaveLen(1))
				Expect(r.Trajectory[0]).To(Equal(shot.TrajectoryPoint{Phase: shot.PhaseStopped}))
				Expect(r.Summary).To(Equal(shot.ShotSummary{}))
				Expect(r.LaunchData.BallSpeed).To(Equal(speed))
			},
			Entry("zero", 0.0),
			Entry("negative", -25.0),
		)
	})

	Describe("extreme launches", func() {
		DescribeTable("stay finite and serialize",
			func(ld shot.LaunchData) {
				r := standardEngine().Simulate(ld)
				expectWellFormed(r, engine.DefaultConfig())

				_, err := json.Marshal(r)
				Expect(err).NotTo(HaveOccurred())

				for _, p := range r.Trajectory {
					Expect(math.IsNaN(p.X) || math.IsInf(p.X, 0)).To(BeFalse())
					Expect(math.IsNaN(p.Z) || math.IsInf(p.Z, 0)).To(BeFalse())
				}
				Expect(r.Final().X).To(BeNumerically(">=", 0))
			},
			Entry("overflowing ball speed", shot.LaunchData{BallSpeed: 1e200, VLA: 12, BackSpin: 3000}),
			Entry("absurd backspin", shot.LaunchData{BallSpeed: 150, VLA: 12, BackSpin: 1e9}),
			Entry("absurd sidespin", shot.LaunchData{BallSpeed: 150, VLA: 12, BackSpin: 3000, SideSpin: 1e9}),
		)

		It("reports no landing figures when the first arc never lands", func() {
			r := standardEngine().Simulate(shot.LaunchData{BallSpeed: 1e200, VLA: 12, BackSpin: 3000})
			Expect(r.Summary.LandingSpeed).To(BeZero())
			Expect(r.Summary.DescentAngle).To(BeZero())
		})
	})

	Describe("reference scenarios on Fairway", func() {
		DescribeTable("carry within tolerance",
			func(ld shot.LaunchData, carry, tol float64) {
				r := standardEngine().Simulate(ld)
				Expect(r.Summary.CarryDistance).To(BeNumerically("~", carry, carry*tol))
				expectWellFormed(r, engine.DefaultConfig())
			},
			Entry("driver 167 mph", driver, 275.0, 0.05),
			Entry("driver 160 mph", driver160, 259.0, 0.03),
			Entry("7 iron", sevenIron, 172.0, 0.05),
			Entry("wedge", wedge, 136.0, 0.05),
		)

		It("records the first landing as the carry, before any bounce", func() {
			r := standardEngine().Simulate(driver)
			firstBounce := -1
			for i, p := range r.Trajectory {
				if p.Phase == shot.PhaseBounce {
					firstBounce = i
					break
				}
			}
			Expect(firstBounce).To(BeNumerically(">", 0))
			Expect(r.Trajectory[firstBounce].X).To(BeNumerically("~", r.Summary.CarryDistance, 1e-9))
			Expect(r.Trajectory[firstBounce].T).To(BeNumerically("~", r.Summary.FlightTime, 1e-9))
		})

		It("fills in descent angle and landing speed", func() {
			s := standardEngine().Simulate(driver).Summary
			Expect(s.DescentAngle).To(BeNumerically(">", 0))
			Expect(s.DescentAngle).To(BeNumerically("<", 90))
			Expect(s.LandingSpeed).To(BeNumerically(">", 0))
			Expect(s.LandingSpeed).To(BeNumerically("<", driver.BallSpeed))
		})

		It("reports apex above the ground and before landing", func() {
			s := standardEngine().Simulate(sevenIron).Summary
			Expect(s.MaxHeight).To(BeNumerically(">", 50))
			Expect(s.MaxHeightTime).To(BeNumerically(">", 0))
			Expect(s.MaxHeightTime).To(BeNumerically("<", s.FlightTime))
		})
	})

	Describe("phase machine", func() {
		It("bounces then rolls to a stop", func() {
			r := standardEngine().Simulate(driver)
			Expect(r.Summary.BounceCount).To(BeNumerically(">=", 1))
			Expect(countPhase(r, shot.PhaseBounce)).To(Equal(r.Summary.BounceCount))
			Expect(countPhase(r, shot.PhaseRolling)).To(BeNumerically(">", 0))
			Expect(r.Summary.RollDistance).To(BeNumerically(">", 0))
		})

		It("goes straight to rolling when bouncing is disabled", func() {
			cfg := engine.DefaultConfig()
			cfg.MaxBounces = 0
			r := mustEngine(shot.StandardConditions(), "Fairway", cfg).Simulate(driver)
			Expect(r.Summary.BounceCount).To(BeZero())
			Expect(countPhase(r, shot.PhaseBounce)).To(BeZero())
			expectWellFormed(r, cfg)
		})

		It("never exceeds the bounce cap", func() {
			cfg := engine.DefaultConfig()
			cfg.MaxBounces = 1
			r := mustEngine(shot.StandardConditions(), "Green", cfg).Simulate(driver)
			Expect(r.Summary.BounceCount).To(BeNumerically("<=", 1))
			expectWellFormed(r, cfg)
		})

		It("rolls further on green than in the rough", func() {
			green := mustEngine(shot.StandardConditions(), "Green", engine.DefaultConfig()).Simulate(sevenIron)
			rough := mustEngine(shot.StandardConditions(), "Rough", engine.DefaultConfig()).Simulate(sevenIron)
			Expect(green.Summary.RollDistance).To(BeNumerically(">", rough.Summary.RollDistance))
			Expect(green.Surface).To(Equal("Green"))
		})

		It("keeps the terminal STOPPED point when the point cap is hit", func() {
			cfg := engine.DefaultConfig()
			cfg.MaxTrajectoryPoints = 20
			r := mustEngine(shot.StandardConditions(), "Fairway", cfg).Simulate(driver)
			Expect(r.Trajectory).To(HaveLen(20))
			expectWellFormed(r, cfg)
		})

		It("truncates instead of failing when the clock runs out", func() {
			cfg := engine.DefaultConfig()
			cfg.MaxTime = 1
			r := mustEngine(shot.StandardConditions(), "Fairway", cfg).Simulate(driver)
			expectWellFormed(r, cfg)
			Expect(r.Final().T).To(BeNumerically("<=", 1+cfg.Dt+1e-9))
		})

		It("terminates on pathological spin", func() {
			r := standardEngine().Simulate(shot.LaunchData{BallSpeed: 200, VLA: 45, BackSpin: 1e6, SideSpin: -1e6})
			expectWellFormed(r, engine.DefaultConfig())
		})

		It("handles a ball driven straight into the ground", func() {
			r := standardEngine().Simulate(shot.LaunchData{BallSpeed: 60, VLA: -20, BackSpin: 0})
			expectWellFormed(r, engine.DefaultConfig())
			Expect(r.Summary.FlightTime).To(BeNumerically("<=", 0.02))
		})

		It("runs with the euler integrator", func() {
			cfg := engine.DefaultConfig()
			cfg.Integrator = "euler"
			r := mustEngine(shot.StandardConditions(), "Fairway", cfg).Simulate(wedge)
			expectWellFormed(r, cfg)
		})
	})

	Describe("conditions", func() {
		withWind := func(mph, dir float64) shot.Conditions {
			c := shot.StandardConditions()
			c.WindSpeedMph, c.WindDirDeg = mph, dir
			return c
		}

		It("loses carry into a headwind and gains it downwind", func() {
			e := standardEngine()
			calm := e.Simulate(driver).Summary.CarryDistance
			head := e.WithConditions(withWind(10, 0)).Simulate(driver).Summary.CarryDistance
			tail := e.WithConditions(withWind(10, 180)).Simulate(driver).Summary.CarryDistance

			Expect(head).To(BeNumerically("<", calm))
			Expect(tail).To(BeNumerically(">", calm))
		})

		It("curves slices right and hooks left by similar amounts", func() {
			e := standardEngine()
			slice := driver
			slice.SideSpin = 800
			hook := driver
			hook.SideSpin = -800

			right := e.Simulate(slice).Summary.OfflineDistance
			left := e.Simulate(hook).Summary.OfflineDistance
			Expect(right).To(BeNumerically(">", 0))
			Expect(left).To(BeNumerically("<", 0))
			Expect(math.Abs(right + left)).To(BeNumerically("<", 0.05*right))
		})

		It("carries 5-10% further at altitude", func() {
			e := standardEngine()
			denver := shot.StandardConditions()
			denver.ElevationFt = 5280

			sea := e.Simulate(driver).Summary.CarryDistance
			high := e.WithConditions(denver).Simulate(driver).Summary.CarryDistance
			Expect(high / sea).To(BeNumerically(">", 1.05))
			Expect(high / sea).To(BeNumerically("<", 1.10))
		})

		It("echoes its inputs into the result", func() {
			c := withWind(5, 45)
			r := standardEngine().WithConditions(c).Simulate(wedge)
			Expect(r.Conditions).To(Equal(c))
			Expect(r.LaunchData).To(Equal(wedge))
			Expect(r.Surface).To(Equal("Fairway"))
		})
	})

	Describe("batch", func() {
		It("matches sequential simulation index for index", func() {
			e := standardEngine()
			shots := []shot.LaunchData{driver, driver160, sevenIron, wedge, {}, driver}

			got := e.SimulateBatch(shots)
			Expect(got).To(HaveLen(len(shots)))
			for i, ld := range shots {
				Expect(got[i]).To(Equal(e.Simulate(ld)), "shot %d", i)
			}
		})

		It("handles an empty batch", func() {
			Expect(standardEngine().SimulateBatch(nil)).To(BeEmpty())
		})
	})
})
