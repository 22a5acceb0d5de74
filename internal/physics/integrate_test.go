package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestStepSemiImplicitEulerOrder(t *testing.T) {
	c := DefaultConstants()
	p := &Particle{ID: 0, Force: r2.Vec{X: c.Mass, Y: 0}}

	p.Step(c)

	// acceleration 1 px/s^2 for one timestep, decayed, then position
	// advanced from the new velocity.
	wantVel := 1.0 * c.Dt * c.VelocityDecay
	assert.InDelta(t, wantVel, p.Vel.X, 1e-15)
	assert.InDelta(t, wantVel*c.Dt, p.Pos.X, 1e-15)
	assert.Zero(t, p.Vel.Y)
	assert.Zero(t, p.Pos.Y)
}

func TestStepClearsForceAccumulator(t *testing.T) {
	c := DefaultConstants()
	p := &Particle{ID: 0, Force: r2.Vec{X: 5, Y: -3}}

	p.Step(c)
	assert.Equal(t, r2.Vec{}, p.Force)

	// A second step with no new force only coasts on decayed velocity.
	vel := p.Vel
	p.Step(c)
	assert.InDelta(t, vel.X*c.VelocityDecay, p.Vel.X, 1e-15)
	assert.InDelta(t, vel.Y*c.VelocityDecay, p.Vel.Y, 1e-15)
}

func TestStepDecaysVelocityWithoutForce(t *testing.T) {
	c := DefaultConstants()
	p := &Particle{ID: 0, Vel: r2.Vec{X: 1, Y: 2}}

	p.Step(c)

	assert.InDelta(t, 1*c.VelocityDecay, p.Vel.X, 1e-15)
	assert.InDelta(t, 2*c.VelocityDecay, p.Vel.Y, 1e-15)
	assert.InDelta(t, p.Vel.X*c.Dt, p.Pos.X, 1e-15)
	assert.InDelta(t, p.Vel.Y*c.Dt, p.Pos.Y, 1e-15)
}

func TestStepAtRestStaysAtRest(t *testing.T) {
	c := DefaultConstants()
	p := &Particle{ID: 0, Pos: r2.Vec{X: 10, Y: 20}}

	for i := 0; i < 100; i++ {
		p.Step(c)
	}
	assert.Equal(t, r2.Vec{X: 10, Y: 20}, p.Pos)
	assert.Equal(t, r2.Vec{}, p.Vel)
}
