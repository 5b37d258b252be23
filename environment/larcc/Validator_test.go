package larcc

import (
	"math"
	"testing"

	"github.com/samuelfneumann/golarcc/utils/geomutils"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// goodQuat returns an orientation inside the acceptance cone: a roll
// of 130° maps the z axis to (0, -sin 130°, cos 130°), which points
// forward and downward.
func goodQuat() quat.Number {
	return geomutils.FromEuler(130*math.Pi/180, 0, 0)
}

// upQuat returns the identity orientation, whose z axis points
// straight up and is rejected by the cone
func upQuat() quat.Number {
	return quat.Number{Real: 1}
}

func newPose(x, y, z float64, q quat.Number) *mat.VecDense {
	return mat.NewVecDense(poseDims, []float64{
		x, y, z, q.Real, q.Imag, q.Jmag, q.Kmag,
	})
}

func TestValidatorAcceptsPoseInRegion(t *testing.T) {
	v := NewValidator(DefaultTablePos, DefaultTableSize)

	valid, err := v.IsValid(newPose(0.1, 0.1, 1.0, goodQuat()))
	if err != nil {
		t.Fatalf("could not validate pose: %v", err)
	}
	if !valid {
		t.Error("pose in the workspace region pointing forward and " +
			"downward should be valid")
	}
}

func TestValidatorPositionBounds(t *testing.T) {
	// With the default table (centre [0.1, 0.16, 0.38], extents
	// [1.2, 0.68, 0.76]) the acceptable region is x in [-0.5, 0.7],
	// y in [-0.18, 0.38], z in [0.86, 1.36]
	v := NewValidator(DefaultTablePos, DefaultTableSize)

	tests := []struct {
		name    string
		x, y, z float64
		want    bool
	}{
		{"centre", 0.1, 0.1, 1.0, true},
		{"x low corner", -0.49, -0.17, 0.87, true},
		{"x high corner", 0.69, 0.37, 1.35, true},
		{"x below", -0.51, 0.1, 1.0, false},
		{"x above", 0.71, 0.1, 1.0, false},
		{"y below", 0.1, -0.19, 1.0, false},
		{"y above", 0.1, 0.39, 1.0, false},
		{"z below", 0.1, 0.1, 0.85, false},
		{"z above", 0.1, 0.1, 1.37, false},
	}

	for _, test := range tests {
		valid, err := v.IsValid(newPose(test.x, test.y, test.z, goodQuat()))
		if err != nil {
			t.Fatalf("%v: could not validate pose: %v", test.name, err)
		}
		if valid != test.want {
			t.Errorf("%v: IsValid = %v, want %v", test.name, valid,
				test.want)
		}
	}
}

func TestValidatorRejectsUpwardOrientation(t *testing.T) {
	v := NewValidator(DefaultTablePos, DefaultTableSize)

	valid, err := v.IsValid(newPose(0.1, 0.1, 1.0, upQuat()))
	if err != nil {
		t.Fatalf("could not validate pose: %v", err)
	}
	if valid {
		t.Error("pose pointing straight up should be invalid")
	}
}

func TestValidatorRejectsBadShape(t *testing.T) {
	v := NewValidator(DefaultTablePos, DefaultTableSize)

	_, err := v.IsValid(mat.NewVecDense(6, nil))
	if err == nil {
		t.Fatal("expected an error for a 6-element pose")
	}
	if !IsInvalidPoseShape(err) {
		t.Errorf("expected an invalid pose shape error, got %v", err)
	}
}

func TestFacingForwardAndDownCone(t *testing.T) {
	tests := []struct {
		name string
		q    quat.Number
		want bool
	}{
		{"forward and down", goodQuat(), true},
		{"straight up", upQuat(), false},
		// Straight down: z axis (0, 0, -1) passes the z threshold but
		// not the forward (y) threshold
		{"straight down", geomutils.FromEuler(math.Pi, 0, 0), false},
		// Forward only: z axis (0, -1, 0) passes the y threshold but
		// not the downward (z) threshold
		{"forward only", geomutils.FromEuler(math.Pi/2, 0, 0), false},
	}

	for _, test := range tests {
		if got := facingForwardAndDown(test.q); got != test.want {
			t.Errorf("%v: facingForwardAndDown = %v, want %v", test.name,
				got, test.want)
		}
	}
}
