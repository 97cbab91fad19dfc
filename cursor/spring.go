package cursor

import "gonum.org/v1/gonum/spatial/r2"

// Spring is a unit-mass damped spring.
type Spring struct {
	Stiffness float64
	Damping   float64
}

// accel returns the spring acceleration for displacement d and velocity v.
func (s Spring) accel(d, v float64) float64 {
	return s.Stiffness*d - s.Damping*v
}

// Follower chases a 2D target on a spring.
type Follower struct {
	Spring
	Pos r2.Vec
	Vel r2.Vec
}

// Snap moves the follower onto p and stops it.
func (f *Follower) Snap(p r2.Vec) {
	f.Pos = p
	f.Vel = r2.Vec{}
}

// Step integrates dt seconds toward target using semi-implicit Euler in
// substeps equal steps.
func (f *Follower) Step(target r2.Vec, dt float64, substeps int) {
	if substeps < 1 {
		substeps = 1
	}
	h := dt / float64(substeps)
	for i := 0; i < substeps; i++ {
		f.Vel.X += f.accel(target.X-f.Pos.X, f.Vel.X) * h
		f.Vel.Y += f.accel(target.Y-f.Pos.Y, f.Vel.Y) * h
		f.Pos = r2.Add(f.Pos, r2.Scale(h, f.Vel))
	}
}

// Spring1D chases a scalar target on a spring.
type Spring1D struct {
	Spring
	X float64
	V float64
}

// Step integrates dt seconds toward target.
func (s *Spring1D) Step(target, dt float64, substeps int) {
	if substeps < 1 {
		substeps = 1
	}
	h := dt / float64(substeps)
	for i := 0; i < substeps; i++ {
		s.V += s.accel(target-s.X, s.V) * h
		s.X += s.V * h
	}
}
