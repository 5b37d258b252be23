package geomutils

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

const tolerance = 1e-12

func vecEquals(a, b r3.Vector) bool {
	return math.Abs(a.X-b.X) < tolerance &&
		math.Abs(a.Y-b.Y) < tolerance &&
		math.Abs(a.Z-b.Z) < tolerance
}

func TestFromEulerIdentity(t *testing.T) {
	q := FromEuler(0, 0, 0)

	if math.Abs(q.Real-1) > tolerance || math.Abs(q.Imag) > tolerance ||
		math.Abs(q.Jmag) > tolerance || math.Abs(q.Kmag) > tolerance {
		t.Errorf("zero Euler angles should give the identity quaternion, "+
			"got %v", q)
	}
}

func TestFromEulerIsUnit(t *testing.T) {
	angles := [][3]float64{
		{0.1, -0.2, 0.3},
		{math.Pi, -math.Pi / 2, math.Pi / 4},
		{-3, 3, -1.5},
	}

	for _, a := range angles {
		q := FromEuler(a[0], a[1], a[2])
		norm := math.Sqrt(q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag +
			q.Kmag*q.Kmag)
		if math.Abs(norm-1) > tolerance {
			t.Errorf("FromEuler(%v) has norm %v, expected 1", a, norm)
		}
	}
}

func TestZAxisIdentity(t *testing.T) {
	z := ZAxis(quat.Number{Real: 1})

	if !vecEquals(z, r3.Vector{Z: 1}) {
		t.Errorf("identity orientation should have z axis (0, 0, 1), "+
			"got %v", z)
	}
}

func TestZAxisRoll(t *testing.T) {
	// Rotating by θ about x maps the z axis to (0, -sin θ, cos θ)
	theta := 2.0
	z := ZAxis(FromEuler(theta, 0, 0))

	want := r3.Vector{Y: -math.Sin(theta), Z: math.Cos(theta)}
	if !vecEquals(z, want) {
		t.Errorf("roll %v: got z axis %v, want %v", theta, z, want)
	}
}

func TestZAxisMatchesRotate(t *testing.T) {
	q := FromEuler(0.7, -1.1, 2.3)

	got := ZAxis(q)
	want := Rotate(q, r3.Vector{Z: 1})

	if !vecEquals(got, want) {
		t.Errorf("ZAxis %v does not match quaternion rotation %v", got,
			want)
	}
}

func TestTransformRotationIsOrthonormal(t *testing.T) {
	q := FromEuler(0.4, 1.2, -0.9)
	tf := Transform(q)

	// Columns of the rotation block must be unit length and mutually
	// orthogonal
	for i := 0; i < 3; i++ {
		norm := 0.0
		for j := 0; j < 3; j++ {
			norm += tf.At(j, i) * tf.At(j, i)
		}
		if math.Abs(norm-1) > 1e-10 {
			t.Errorf("column %v has squared norm %v, expected 1", i, norm)
		}
	}
	for i := 0; i < 3; i++ {
		k := (i + 1) % 3
		dot := 0.0
		for j := 0; j < 3; j++ {
			dot += tf.At(j, i) * tf.At(j, k)
		}
		if math.Abs(dot) > 1e-10 {
			t.Errorf("columns %v and %v have dot product %v, expected 0",
				i, k, dot)
		}
	}

	// Homogeneous row and column
	for i := 0; i < 3; i++ {
		if tf.At(3, i) != 0 || tf.At(i, 3) != 0 {
			t.Errorf("translation components should be zero")
		}
	}
	if tf.At(3, 3) != 1 {
		t.Errorf("homogeneous corner should be 1, got %v", tf.At(3, 3))
	}
}

func TestRotateYaw(t *testing.T) {
	// Rotating by π/2 about z maps x to y
	q := AxisAngle(r3.Vector{Z: 1}, math.Pi/2)
	got := Rotate(q, r3.Vector{X: 1})

	if !vecEquals(got, r3.Vector{Y: 1}) {
		t.Errorf("yaw π/2 should map (1, 0, 0) to (0, 1, 0), got %v", got)
	}
}
