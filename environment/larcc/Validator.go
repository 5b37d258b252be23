package larcc

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/samuelfneumann/golarcc/utils/geomutils"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// poseDims is the number of elements in a pose: 3 position + 4
// quaternion (w, x, y, z)
const poseDims = 7

// Insets of the acceptable pose region relative to the table surface.
// Poses must stay horizontalMargin away from the x edges and the far y
// edge of the table, and between minAboveTable and maxAboveTable over
// the tabletop.
const (
	horizontalMargin = 0.1
	minAboveTable    = 0.1
	maxAboveTable    = 0.6
)

// Orientation cone thresholds on the world-frame direction of the
// end effector's z axis
var (
	coneZ = math.Sin(-math.Pi / 6)
	coneY = -math.Sin(math.Pi / 4)
)

// Validator decides whether an end-effector pose is acceptable as a
// starting pose: the position must lie in a bounded region over the
// work table and the orientation must point forward and downward.
type Validator struct {
	tablePos  r3.Vector
	tableSize r3.Vector
}

// NewValidator returns a new Validator for the table with centre
// tablePos and extents tableSize
func NewValidator(tablePos, tableSize r3.Vector) *Validator {
	return &Validator{tablePos: tablePos, tableSize: tableSize}
}

// IsValid returns whether pose is an acceptable pose over the table.
// The pose must have exactly 7 elements [x, y, z, qw, qx, qy, qz] with
// a unit quaternion; IsValid does not normalize for the caller.
func (v *Validator) IsValid(pose mat.Vector) (bool, error) {
	if pose.Len() != poseDims {
		return false, &TaskError{Op: "isValid", Err: errInvalidPoseShape}
	}

	x, y, z := pose.AtVec(0), pose.AtVec(1), pose.AtVec(2)
	if x < v.tablePos.X-v.tableSize.X/2+horizontalMargin ||
		x > v.tablePos.X+v.tableSize.X/2-horizontalMargin {
		return false, nil
	}
	if y < v.tablePos.Y-v.tableSize.Y/2 ||
		y > v.tablePos.Y+v.tableSize.Y/2-horizontalMargin {
		return false, nil
	}
	if z < v.tablePos.Z+v.tableSize.Z/2+minAboveTable ||
		z > v.tablePos.Z+v.tableSize.Z/2+maxAboveTable {
		return false, nil
	}

	return facingForwardAndDown(poseQuat(pose)), nil
}

// facingForwardAndDown is the canonical orientation acceptance test:
// the world-frame z axis of the oriented body must point forward
// (negative y) and downward. Both the Validator and the GoalSampler
// use this single predicate.
func facingForwardAndDown(q quat.Number) bool {
	zAxis := geomutils.ZAxis(q)
	return zAxis.Z < coneZ && zAxis.Y < coneY
}

// poseQuat extracts the orientation quaternion (w, x, y, z) from a
// 7-element pose
func poseQuat(pose mat.Vector) quat.Number {
	return quat.Number{
		Real: pose.AtVec(3),
		Imag: pose.AtVec(4),
		Jmag: pose.AtVec(5),
		Kmag: pose.AtVec(6),
	}
}
