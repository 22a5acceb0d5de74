package physics

import "gonum.org/v1/gonum/spatial/r2"

// Step advances one particle by one fixed timestep using semi-implicit
// Euler: velocity is updated from the accumulated force, decayed by the
// ambient drag factor, and only then used to advance position. The force
// accumulator is cleared for the next step.
//
// The order matters. Decaying after the velocity update and advancing
// position from the new velocity is what sets the system's equilibrium
// distance, which is the quantity under test; do not reorder.
func (p *Particle) Step(c Constants) {
	acc := r2.Scale(1/c.Mass, p.Force)
	p.Vel = r2.Add(p.Vel, r2.Scale(c.Dt, acc))
	p.Vel = r2.Scale(c.VelocityDecay, p.Vel)
	p.Pos = r2.Add(p.Pos, r2.Scale(c.Dt, p.Vel))
	p.Force = r2.Vec{}
}
