package larcc

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Simulator provides access to the physics engine backing a Larcc
// environment. The environment never reaches into a global simulation
// object; everything it needs from the simulation goes through this
// interface, so the task logic can be tested against a scripted
// implementation.
//
// After mutating joint positions, callers must trigger Forward() to
// recompute derived poses before querying them.
type Simulator interface {
	// EndEffectorPose returns the 7-element world pose of the
	// end-effector body: [x, y, z, qw, qx, qy, qz]. The quaternion is
	// a unit quaternion.
	EndEffectorPose() *mat.VecDense

	// JointPosition returns the position of a named joint in radians
	JointPosition(name string) (float64, error)

	// SetJointPosition sets the position of a named joint in radians
	SetJointPosition(name string, value float64) error

	// BodyWorldPosition returns the world-frame position of a named
	// body
	BodyWorldPosition(name string) (r3.Vector, error)

	// Forward recomputes all derived poses from the current joint
	// positions
	Forward()
}
