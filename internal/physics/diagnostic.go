package physics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Verdict classifies the final visual gap of the probed bond.
type Verdict string

const (
	// VerdictPass means clearly separated: the bond line is visible
	// between the two atoms.
	VerdictPass Verdict = "PASS"

	// VerdictWarn means non-overlapping but tight.
	VerdictWarn Verdict = "WARN"

	// VerdictFail means the atoms clip into each other on screen.
	VerdictFail Verdict = "FAIL"
)

// Gap thresholds in pixels. These are the engine team's acceptance limits,
// not caller-tunable knobs.
const (
	passGap = 5.0
)

// ClassifyGap maps a visual gap to a verdict: above 5 px is a clear pass,
// anything positive is tight but legal, zero or negative is overlap.
func ClassifyGap(gap float64) Verdict {
	switch {
	case gap > passGap:
		return VerdictPass
	case gap > 0:
		return VerdictWarn
	default:
		return VerdictFail
	}
}

// Fixture is a fixed particle layout with a fixed bond set. Diagnostics
// run over small hand-built fixtures rather than a general particle system;
// each scenario constructs the layout it wants to interrogate.
type Fixture struct {
	Name      string
	Particles []*Particle
	Bonds     []Bond

	// Probe selects the bond whose separation is measured and classified.
	Probe Bond
}

// SquareFixture builds the standard diagnostic layout: four particles on
// the corners of a square with side IdealLength, bonded in a cycle, at
// rest. Probing bond 0-1 measures one side of the ring.
func SquareFixture(c Constants) Fixture {
	l := c.IdealLength
	return Fixture{
		Name: "C4 ring",
		Particles: []*Particle{
			{ID: 0, Pos: r2.Vec{X: 0, Y: 0}},
			{ID: 1, Pos: r2.Vec{X: l, Y: 0}},
			{ID: 2, Pos: r2.Vec{X: l, Y: l}},
			{ID: 3, Pos: r2.Vec{X: 0, Y: l}},
		},
		Bonds: []Bond{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
		Probe: Bond{0, 1},
	}
}

// PairFixture builds two bonded particles separated by dist along the x
// axis. Useful for interrogating convergence from compressed or stretched
// starts.
func PairFixture(dist float64) Fixture {
	return Fixture{
		Name: "bonded pair",
		Particles: []*Particle{
			{ID: 0, Pos: r2.Vec{X: 0, Y: 0}},
			{ID: 1, Pos: r2.Vec{X: dist, Y: 0}},
		},
		Bonds: []Bond{{0, 1}},
		Probe: Bond{0, 1},
	}
}

// Distance is the current separation of the fixture's probed bond.
func (f Fixture) Distance() float64 {
	a := f.Particles[f.Probe.A]
	b := f.Particles[f.Probe.B]
	return r2.Norm(r2.Sub(b.Pos, a.Pos))
}

// Report is the structured outcome of a physics diagnostic run. Rendering
// is the caller's concern; nothing in this package prints.
type Report struct {
	Fixture          string  `json:"fixture"`
	Steps            int     `json:"steps"`
	TargetDistance   float64 `json:"target_distance"`
	ParticleRadius   float64 `json:"particle_radius"`
	ParticleDiameter float64 `json:"particle_diameter"`
	FinalDistance    float64 `json:"final_distance"`
	FinalGap         float64 `json:"final_gap"`
	MinGap           float64 `json:"min_gap"`
	SkippedPairs     int     `json:"skipped_pairs,omitempty"`
	Verdict          Verdict `json:"verdict"`
}

// RunDiagnostic advances the fixture for the given number of steps and
// measures the probed bond against the rendered particle diameter.
//
// Within each step, every bond's force pair is accumulated before any
// particle is advanced. MinGap tracks the smallest gap observed after any
// step, since transient overshoot during convergence is a distinct failure
// mode from steady-state overlap.
func RunDiagnostic(c Constants, f Fixture, steps int) (*Report, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("physics: step count must be positive, got %d", steps)
	}
	if f.Probe.A < 0 || f.Probe.A >= len(f.Particles) || f.Probe.B < 0 || f.Probe.B >= len(f.Particles) {
		return nil, fmt.Errorf("physics: probe bond %d-%d outside fixture of %d particles", f.Probe.A, f.Probe.B, len(f.Particles))
	}

	diameter := c.ParticleDiameter()
	minGap := math.Inf(1)
	skipped := 0

	for step := 0; step < steps; step++ {
		for _, b := range f.Bonds {
			if !SolveBond(f.Particles[b.A], f.Particles[b.B], c) {
				skipped++
			}
		}
		for _, p := range f.Particles {
			p.Step(c)
		}
		if gap := f.Distance() - diameter; gap < minGap {
			minGap = gap
		}
	}

	finalDist := f.Distance()
	finalGap := finalDist - diameter
	return &Report{
		Fixture:          f.Name,
		Steps:            steps,
		TargetDistance:   c.IdealLength,
		ParticleRadius:   c.ParticleRadius(),
		ParticleDiameter: diameter,
		FinalDistance:    finalDist,
		FinalGap:         finalGap,
		MinGap:           minGap,
		SkippedPairs:     skipped,
		Verdict:          ClassifyGap(finalGap),
	}, nil
}
