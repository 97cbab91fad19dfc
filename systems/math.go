package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// clampFloat clamps v between minVal and maxVal.
func clampFloat(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// Proximity maps a distance to [0, 1]: 1 at the origin, falling linearly to 0
// at radius and beyond.
func Proximity(d, radius float64) float64 {
	if d >= radius || radius <= 0 {
		return 0
	}
	return 1 - d/radius
}

// Repel returns the target a point at pos is pushed to by a pointer at
// pointer. The push is along the pointer->pos direction with magnitude
// push*(radius-d)/radius. ok is false when d is zero or not below radius;
// zero distance has no direction and is never pushed.
func Repel(pos, pointer r2.Vec, radius, push float64) (target r2.Vec, ok bool) {
	away := r2.Sub(pos, pointer)
	d := r2.Norm(away)
	if d <= 0 || d >= radius {
		return pos, false
	}
	force := (radius - d) / radius
	return r2.Add(pos, r2.Scale(force*push/d, away)), true
}

// Ease moves cur toward target by fraction k of the remaining gap on each
// axis independently.
func Ease(cur, target r2.Vec, k float64) r2.Vec {
	return r2.Vec{
		X: cur.X + (target.X-cur.X)*k,
		Y: cur.Y + (target.Y-cur.Y)*k,
	}
}

// LinkAlpha returns the connecting-line alpha for two points d apart.
// Zero at maxDist and beyond, never negative.
func LinkAlpha(d, maxDist, maxAlpha float64) float64 {
	return Proximity(d, maxDist) * maxAlpha
}

// Bob returns the vertical offset of a floating symbol at time t.
func Bob(t, frequency, phase, amplitude float64) float64 {
	return math.Sin(t*frequency+phase) * amplitude
}
