// Package larcc implements a goal-directed reaching environment for a
// 6-DOF robotic arm in a collaborative cell. The arm must bring its
// end effector to a goal pose sampled over a work table, with the goal
// orientation constrained to point forward and downward.
//
// The physics simulation backing the environment is injected through
// the Simulator interface; the package contains the task logic only:
// workspace pose validation, bounded rejection sampling of goals,
// shaped reward computation, and validity-checked episode resets.
package larcc

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/golarcc/environment"
	ts "github.com/samuelfneumann/golarcc/timestep"
	"github.com/samuelfneumann/golarcc/utils/floatutils"
	"gonum.org/v1/gonum/mat"
)

// Per-joint action scaling: actions are relative joint movements, with
// the two shoulder joints moving less per step than the distal joints
const (
	shoulderActionScale = 0.08
	distalActionScale   = 0.12
)

// Joint position limits in radians
const (
	minJointPos = -math.Pi
	maxJointPos = math.Pi
)

// Larcc implements the reaching environment. Observations are vectors
// of [q⃗ᵀ, p⃗ᵀ, g⃗ᵀ] where q⃗ holds the six joint positions, p⃗ is the
// 7-element achieved end-effector pose, and g⃗ is the 7-element goal
// pose. Actions are 6-dimensional continuous vectors of relative
// joint movements, clipped to [-1, 1] element-wise before scaling.
//
// The Larcc struct satisfies the environment.Environment interface.
type Larcc struct {
	environment.Task
	reach *Reach // non-nil when the registered Task is a *Reach

	sim       Simulator
	validator *Validator
	cfg       Config
	discount  float64

	obsLen          int
	currentTimeStep ts.TimeStep
}

// New returns a new Larcc environment backed by the argument
// Simulator. If the Task is a *Reach, goal sampling and reward history
// bookkeeping are wired into episode resets.
func New(sim Simulator, t environment.Task, cfg Config,
	discount float64) (environment.Environment, ts.TimeStep, error) {
	if err := cfg.Validate(); err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newLarcc: %v", err)
	}

	l := &Larcc{
		Task:      t,
		sim:       sim,
		validator: NewValidator(cfg.TablePos, cfg.TableSize),
		cfg:       cfg,
		discount:  discount,
		obsLen:    len(cfg.JointNames) + 2*poseDims,
	}

	// Register task if needed
	reach, ok := t.(*Reach)
	if ok {
		l.reach = reach
	}

	firstStep, err := l.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newLarcc: %v", err)
	}
	return l, firstStep, nil
}

// Reset resets the environment to begin a new episode. A fresh goal is
// sampled and the arm is returned to its starting configuration:
// either the fixed initial joint values, or, with random starts
// enabled, a random joint configuration whose end-effector pose passes
// the workspace Validator and whose link bodies all stay above the
// table. Both the goal-sampling and the reset loops are bounded and
// fail with typed timeout errors instead of blocking.
func (l *Larcc) Reset() (ts.TimeStep, error) {
	if l.reach != nil {
		if err := l.reach.Reset(); err != nil {
			return ts.TimeStep{}, err
		}
	}

	if l.cfg.RandomStart {
		if err := l.randomStart(); err != nil {
			return ts.TimeStep{}, err
		}
	} else {
		for i, name := range l.cfg.JointNames {
			err := l.sim.SetJointPosition(name, l.cfg.InitialJointValues[i])
			if err != nil {
				return ts.TimeStep{}, fmt.Errorf("reset: %v", err)
			}
		}
		l.sim.Forward()
	}

	obs, err := l.getObs()
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: could not get starting "+
			"state observation: %v", err)
	}
	firstStep := ts.New(ts.First, 0, l.discount, obs, 0)
	l.currentTimeStep = firstStep

	return firstStep, nil
}

// randomStart repeatedly draws joint configurations from the Task's
// Starter until one produces an acceptable end-effector pose, up to
// the configured attempt limit
func (l *Larcc) randomStart() error {
	for attempt := 0; attempt < l.cfg.MaxResetAttempts; attempt++ {
		joints := l.Start()
		if joints.Len() != len(l.cfg.JointNames) {
			return fmt.Errorf("randomStart: starter returned %v joint "+
				"positions \n\twant(%v)", joints.Len(), len(l.cfg.JointNames))
		}

		for i, name := range l.cfg.JointNames {
			if err := l.sim.SetJointPosition(name, joints.AtVec(i)); err != nil {
				return fmt.Errorf("randomStart: %v", err)
			}
		}
		l.sim.Forward()

		valid, err := l.validator.IsValid(l.sim.EndEffectorPose())
		if err != nil {
			return err
		}
		if !valid {
			continue
		}

		inTable, err := l.robotInTable()
		if err != nil {
			return fmt.Errorf("randomStart: %v", err)
		}
		if !inTable {
			return nil
		}
	}

	return &TaskError{Op: "reset", Err: errResetTimeout}
}

// robotInTable reports whether any named link body sits below the
// table height, a proxy for arm-table collision
func (l *Larcc) robotInTable() (bool, error) {
	for _, name := range l.cfg.LinkNames {
		pos, err := l.sim.BodyWorldPosition(name)
		if err != nil {
			return false, err
		}
		if pos.Z < l.cfg.TableSize.Z {
			return true, nil
		}
	}
	return false, nil
}

// Step takes one environmental step given some action
func (l *Larcc) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	if action.Len() != len(l.cfg.JointNames) {
		return ts.TimeStep{}, true, fmt.Errorf("step: invalid action "+
			"dimensions \n\thave(%v) \n\twant(%v)", action.Len(),
			len(l.cfg.JointNames))
	}

	state := l.sim.EndEffectorPose()

	delta := l.scaleAction(action)
	for i, name := range l.cfg.JointNames {
		current, err := l.sim.JointPosition(name)
		if err != nil {
			return ts.TimeStep{}, true, fmt.Errorf("step: %v", err)
		}

		next := floatutils.Clip(current+delta.AtVec(i), minJointPos,
			maxJointPos)
		if err := l.sim.SetJointPosition(name, next); err != nil {
			return ts.TimeStep{}, true, fmt.Errorf("step: %v", err)
		}
	}
	l.sim.Forward()

	nextState := l.sim.EndEffectorPose()
	reward := l.GetReward(state, action, nextState)

	obs, err := l.getObs()
	if err != nil {
		return ts.TimeStep{}, true, fmt.Errorf("step: could not get next "+
			"state observation: %v", err)
	}

	t := ts.New(ts.Mid, reward, l.discount, obs,
		l.currentTimeStep.Number+1)
	done := l.End(&t)
	l.currentTimeStep = t

	return t, done, nil
}

// scaleAction returns the relative joint movements for an action. The
// action is clipped to [-1, 1] element-wise, then scaled so the
// shoulder joints move at most shoulderActionScale radians per step
// and the distal joints at most distalActionScale.
func (l *Larcc) scaleAction(action *mat.VecDense) *mat.VecDense {
	delta := mat.VecDenseCopyOf(action)

	for i := 0; i < delta.Len(); i++ {
		a := floatutils.Clip(delta.AtVec(i), -1, 1)
		if i < 2 {
			a *= shoulderActionScale
		} else {
			a *= distalActionScale
		}
		delta.SetVec(i, a)
	}

	return delta
}

// CurrentTimeStep returns the current time step
func (l *Larcc) CurrentTimeStep() ts.TimeStep {
	return l.currentTimeStep
}

// Goal returns the current goal pose, or nil when the registered Task
// does not track goals
func (l *Larcc) Goal() mat.Vector {
	if l.reach == nil {
		return nil
	}
	return l.reach.Goal()
}

// IsSuccess returns whether the most recent reward computation in the
// episode reached the goal pose
func (l *Larcc) IsSuccess() bool {
	return l.reach != nil && l.reach.IsSuccess()
}

// ValidatePose reports whether a 7-element pose is acceptable over the
// work table
func (l *Larcc) ValidatePose(pose mat.Vector) (bool, error) {
	return l.validator.IsValid(pose)
}

// getObs returns a state observation: the joint positions followed by
// the achieved end-effector pose and the goal pose. Before a goal has
// been sampled the goal components are zero.
func (l *Larcc) getObs() (*mat.VecDense, error) {
	obs := make([]float64, 0, l.obsLen)

	for _, name := range l.cfg.JointNames {
		pos, err := l.sim.JointPosition(name)
		if err != nil {
			return nil, fmt.Errorf("getObs: %v", err)
		}
		obs = append(obs, pos)
	}

	achieved := l.sim.EndEffectorPose()
	obs = append(obs, achieved.RawVector().Data...)

	goal := l.Goal()
	if goal != nil {
		obs = append(obs, poseData(goal)...)
	} else {
		obs = append(obs, make([]float64, poseDims)...)
	}

	return mat.NewVecDense(l.obsLen, obs), nil
}

// ObservationSpec returns the observation specification of the
// environment
func (l *Larcc) ObservationSpec() environment.Spec {
	shape := mat.NewVecDense(l.obsLen, nil)

	low := mat.NewVecDense(l.obsLen, nil)
	high := mat.NewVecDense(l.obsLen, nil)
	for i := 0; i < low.Len(); i++ {
		low.SetVec(i, math.Inf(-1))
		high.SetVec(i, math.Inf(1))
	}

	return environment.NewSpec(shape, environment.Observation, low, high,
		environment.Continuous)
}

// ActionSpec returns the action specification of the environment
func (l *Larcc) ActionSpec() environment.Spec {
	numActions := len(l.cfg.JointNames)
	shape := mat.NewVecDense(numActions, nil)

	low := mat.NewVecDense(numActions, nil)
	high := mat.NewVecDense(numActions, nil)
	for i := 0; i < low.Len(); i++ {
		low.SetVec(i, -1)
		high.SetVec(i, 1)
	}

	return environment.NewSpec(shape, environment.Action, low, high,
		environment.Continuous)
}

// DiscountSpec returns the discount specification of the environment
func (l *Larcc) DiscountSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	bound := mat.NewVecDense(1, []float64{l.discount})

	return environment.NewSpec(shape, environment.Discount, bound, bound,
		environment.Continuous)
}
