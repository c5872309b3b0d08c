// Package attitude converts Euler-angle orientations to unit quaternions.
package attitude

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Quaternion is a unit rotation in scalar-first (w, x, y, z) order. The
// component order is fixed here so downstream statistics and plots never
// depend on the rotation library's native layout.
type Quaternion struct {
	W float64
	X float64
	Y float64
	Z float64
}

// FromEuler builds the rotation described by roll, pitch and yaw in
// degrees, composed extrinsically about the fixed x, y and z axes in that
// order (roll first, then pitch, then yaw).
func FromEuler(rollDeg, pitchDeg, yawDeg float64) Quaternion {
	qx := r3.NewRotation(radians(rollDeg), r3.Vec{X: 1})
	qy := r3.NewRotation(radians(pitchDeg), r3.Vec{Y: 1})
	qz := r3.NewRotation(radians(yawDeg), r3.Vec{Z: 1})

	// Extrinsic x-y-z composition: later rotations multiply on the left.
	q := quat.Mul(quat.Number(qz), quat.Mul(quat.Number(qy), quat.Number(qx)))

	return Quaternion{W: q.Real, X: q.Imag, Y: q.Jmag, Z: q.Kmag}
}

// Norm returns the Euclidean norm of the quaternion. A rotation built by
// FromEuler has norm 1 up to floating-point error.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
