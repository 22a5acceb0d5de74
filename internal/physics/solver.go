package physics

import "gonum.org/v1/gonum/spatial/r2"

// SolveBond computes the spring-damper force pair for one bonded particle
// pair and accumulates it into both particles, equal and opposite.
//
// The spring term is linear in the stretch (d - IdealLength); the damping
// term is the relative velocity projected onto the bond axis, scaled by the
// damping coefficient. Both act along the bond axis only.
//
// applied is false when the particles coincide exactly: with no defined
// axis there is no force to compute, so the pair is skipped and both
// accumulators are left untouched.
func SolveBond(a, b *Particle, c Constants) (applied bool) {
	delta := r2.Sub(b.Pos, a.Pos)
	d := r2.Norm(delta)
	if d == 0 {
		return false
	}
	axis := r2.Scale(1/d, delta)

	spring := (d - c.IdealLength) * c.SpringStiffness

	rel := r2.Sub(b.Vel, a.Vel)
	damp := r2.Dot(rel, axis) * c.Damping

	f := r2.Scale(spring+damp, axis)
	a.ApplyForce(f)
	b.ApplyForce(r2.Scale(-1, f))
	return true
}
