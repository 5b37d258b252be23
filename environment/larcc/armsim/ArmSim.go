// Package armsim implements a pure-kinematics model of a UR10e-style
// 6-DOF arm satisfying the larcc.Simulator interface. It computes
// forward kinematics only: there are no dynamics, actuators, or
// contacts. The package exists so the larcc environment can be run and
// tested in-process without an external physics engine.
package armsim

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/samuelfneumann/golarcc/environment/larcc"
	"github.com/samuelfneumann/golarcc/utils/geomutils"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// link is one segment of the serial chain. Each link first translates
// by offset in its parent's frame, then rotates about axis by its
// joint angle. The link's body origin sits at the translated point.
type link struct {
	joint  string
	body   string
	offset r3.Vector
	axis   r3.Vector
}

// ur10eChain approximates the UR10e kinematic chain. Link offsets are
// taken from the nominal UR10e link lengths; with all joints at zero
// the forearm and wrist extend along the world x axis.
var ur10eChain = []link{
	{"shoulder_pan_joint", "shoulder_link",
		r3.Vector{Z: 0.181}, r3.Vector{Z: 1}},
	{"shoulder_lift_joint", "upper_arm_link",
		r3.Vector{Y: 0.176}, r3.Vector{Y: 1}},
	{"elbow_joint", "forearm_link",
		r3.Vector{X: 0.613}, r3.Vector{Y: 1}},
	{"wrist_1_joint", "wrist_1_link",
		r3.Vector{X: 0.571}, r3.Vector{Y: 1}},
	{"wrist_2_joint", "wrist_2_link",
		r3.Vector{Y: 0.135}, r3.Vector{Z: 1}},
	{"wrist_3_joint", "wrist_3_link",
		r3.Vector{Z: 0.120}, r3.Vector{Y: 1}},
}

// eefOffset is the tool-centre offset from the wrist_3 body
var eefOffset = r3.Vector{Y: 0.117}

// Arm is a kinematic 6-DOF arm fixed at a base position in the world
// frame. Arm satisfies the larcc.Simulator interface.
type Arm struct {
	base   r3.Vector
	links  []link
	joints map[string]int
	angles []float64

	// Derived state, recomputed by Forward
	bodyPos map[string]r3.Vector
	eefPose *mat.VecDense
}

var _ larcc.Simulator = (*Arm)(nil)

// NewUR10e returns a new kinematic UR10e arm with its base fixed at
// the argument world position. The arm starts with all joints at zero
// and its derived poses already computed.
func NewUR10e(base r3.Vector) *Arm {
	joints := make(map[string]int, len(ur10eChain))
	for i, l := range ur10eChain {
		joints[l.joint] = i
	}

	a := &Arm{
		base:    base,
		links:   ur10eChain,
		joints:  joints,
		angles:  make([]float64, len(ur10eChain)),
		bodyPos: make(map[string]r3.Vector, len(ur10eChain)),
	}
	a.Forward()

	return a
}

// JointPosition returns the position of a named joint in radians
func (a *Arm) JointPosition(name string) (float64, error) {
	i, ok := a.joints[name]
	if !ok {
		return 0, fmt.Errorf("jointPosition: no such joint '%v'", name)
	}
	return a.angles[i], nil
}

// SetJointPosition sets the position of a named joint in radians. The
// change does not affect derived poses until Forward is called.
func (a *Arm) SetJointPosition(name string, value float64) error {
	i, ok := a.joints[name]
	if !ok {
		return fmt.Errorf("setJointPosition: no such joint '%v'", name)
	}
	a.angles[i] = value
	return nil
}

// BodyWorldPosition returns the world-frame position of a named link
// body
func (a *Arm) BodyWorldPosition(name string) (r3.Vector, error) {
	pos, ok := a.bodyPos[name]
	if !ok {
		return r3.Vector{}, fmt.Errorf("bodyWorldPosition: no such body "+
			"'%v'", name)
	}
	return pos, nil
}

// EndEffectorPose returns the 7-element world pose of the tool centre:
// [x, y, z, qw, qx, qy, qz]
func (a *Arm) EndEffectorPose() *mat.VecDense {
	return mat.VecDenseCopyOf(a.eefPose)
}

// Forward recomputes the world poses of every link body and the end
// effector from the current joint angles
func (a *Arm) Forward() {
	pos := a.base
	rot := quat.Number{Real: 1}

	for i, l := range a.links {
		pos = pos.Add(geomutils.Rotate(rot, l.offset))
		rot = quat.Mul(rot, geomutils.AxisAngle(l.axis, a.angles[i]))
		a.bodyPos[l.body] = pos
	}

	eef := pos.Add(geomutils.Rotate(rot, eefOffset))
	a.eefPose = mat.NewVecDense(7, []float64{
		eef.X, eef.Y, eef.Z,
		rot.Real, rot.Imag, rot.Jmag, rot.Kmag,
	})
}
