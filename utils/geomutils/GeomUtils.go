// Package geomutils provides utilities for working with orientations
// of rigid bodies in 3D space. Orientations are represented as unit
// quaternions (w, x, y, z) using gonum's quat.Number.
package geomutils

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// FromEuler converts intrinsic roll-pitch-yaw Euler angles (rotations
// about the x, y, and z axes respectively, in radians) to a unit
// quaternion.
func FromEuler(roll, pitch, yaw float64) quat.Number {
	qRoll := AxisAngle(r3.Vector{X: 1}, roll)
	qPitch := AxisAngle(r3.Vector{Y: 1}, pitch)
	qYaw := AxisAngle(r3.Vector{Z: 1}, yaw)

	return quat.Mul(qYaw, quat.Mul(qPitch, qRoll))
}

// Transform returns the 4×4 homogeneous transformation matrix encoding
// the rotation of q. The translation components are zero.
func Transform(q quat.Number) *mat.Dense {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag

	return mat.NewDense(4, 4, []float64{
		1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y), 0,
		2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x), 0,
		2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y), 0,
		0, 0, 0, 1,
	})
}

// ZAxis returns the direction of the local z axis of a body with
// orientation q, expressed in the world frame. This is the product
// Transform(q) · [0, 0, 1, 0]ᵀ.
func ZAxis(q quat.Number) r3.Vector {
	tf := Transform(q)

	return r3.Vector{
		X: tf.At(0, 2),
		Y: tf.At(1, 2),
		Z: tf.At(2, 2),
	}
}

// AxisAngle returns the quaternion rotating by angle radians about the
// unit axis
func AxisAngle(axis r3.Vector, angle float64) quat.Number {
	sin, cos := math.Sincos(angle / 2)

	return quat.Number{
		Real: cos,
		Imag: axis.X * sin,
		Jmag: axis.Y * sin,
		Kmag: axis.Z * sin,
	}
}

// Rotate applies the rotation q to the vector v, returning q·v·q*
// expressed as a vector
func Rotate(q quat.Number, v r3.Vector) r3.Vector {
	r := quat.Mul(q, quat.Mul(quat.Number{
		Imag: v.X,
		Jmag: v.Y,
		Kmag: v.Z,
	}, quat.Conj(q)))

	return r3.Vector{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}
