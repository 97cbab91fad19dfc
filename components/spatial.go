package components

import "gonum.org/v1/gonum/spatial/r2"

// Position represents a particle's current surface position.
type Position struct {
	X, Y float64
}

// Vec returns the position as a vector.
func (p Position) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Set assigns the position from a vector.
func (p *Position) Set(v r2.Vec) {
	p.X, p.Y = v.X, v.Y
}

// Target is the position a snippet eases toward.
type Target struct {
	X, Y float64
}

// Vec returns the target as a vector.
func (t Target) Vec() r2.Vec {
	return r2.Vec{X: t.X, Y: t.Y}
}

// Set assigns the target from a vector.
func (t *Target) Set(v r2.Vec) {
	t.X, t.Y = v.X, v.Y
}
