// Package physics re-implements the bonding engine's spring-damper force
// model in isolation so its published constants can be checked for a
// convergence property: bonded particles must settle at a separation that
// leaves them visually non-overlapping at render scale.
//
// The model is deliberately minimal. Forces for every bond of a step are
// accumulated first, then every particle is advanced; that ordering keeps
// pairwise forces symmetric within a step and is part of what is under test.
package physics

import "gonum.org/v1/gonum/spatial/r2"

// Particle is a single simulated point mass. Position and velocity are in
// render-space pixels; Force accumulates over one step and is cleared by
// the integrator.
type Particle struct {
	ID    int
	Pos   r2.Vec
	Vel   r2.Vec
	Force r2.Vec
}

// ApplyForce adds f to the particle's accumulator for the current step.
func (p *Particle) ApplyForce(f r2.Vec) {
	p.Force = r2.Add(p.Force, f)
}

// Bond connects two particles by index into the fixture's particle slice.
// The bond set is fixed at setup; this diagnostic models no bonding or
// breaking at runtime.
type Bond struct {
	A int
	B int
}

// Constants is the engine's published bond physics and render configuration.
// It is passed explicitly wherever needed so scenarios with different
// constants can run side by side.
type Constants struct {
	// SpringStiffness is the Hookean spring constant of a bond.
	SpringStiffness float64

	// Damping scales the component of relative velocity along the bond
	// axis. Transverse motion is not damped here (ambient drag is the
	// integrator's velocity decay).
	Damping float64

	// BreakStress is the engine's bond-break threshold. The force model
	// never reads it, but it is part of the published contract and is
	// carried so reports can echo the full configuration.
	BreakStress float64

	// IdealLength is the spring rest length in pixels.
	IdealLength float64

	// Dt is the fixed integration timestep in seconds.
	Dt float64

	// Mass is the per-particle mass.
	Mass float64

	// VelocityDecay is the ambient drag factor applied to velocity every
	// step, independent of bond damping.
	VelocityDecay float64

	// VdWRadius is the simulated element's van der Waals radius.
	VdWRadius float64

	// BaseRenderRadius is the renderer's base atom radius in pixels.
	BaseRenderRadius float64

	// RenderScale is the renderer's depth scale at the creation plane.
	RenderScale float64
}

// DefaultConstants returns the engine's current build configuration for a
// carbon atom at the creation plane.
func DefaultConstants() Constants {
	return Constants{
		SpringStiffness:  8.0,
		Damping:          0.92,
		BreakStress:      180.0,
		IdealLength:      42.0,
		Dt:               1.0 / 60.0,
		Mass:             12.0,
		VelocityDecay:    0.95,
		VdWRadius:        1.7,
		BaseRenderRadius: 7.0,
		RenderScale:      1.0,
	}
}

// ParticleRadius is the rendered atom radius in pixels.
func (c Constants) ParticleRadius() float64 {
	return c.VdWRadius * c.BaseRenderRadius * c.RenderScale
}

// ParticleDiameter is the rendered atom diameter in pixels; two bonded
// particles closer than this overlap on screen.
func (c Constants) ParticleDiameter() float64 {
	return c.ParticleRadius() * 2
}
