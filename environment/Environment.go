// Package environment outlines the interfaces and structs needed to implement
// concrete environments
package environment

import (
	"github.com/samuelfneumann/golarcc/timestep"
	"gonum.org/v1/gonum/mat"
)

// Starter implements a distribution of starting states and samples starting
// states for environments
type Starter interface {
	Start() *mat.VecDense
}

// Ender determines whether a timestep is the last in an episode. An
// Ender that ends an episode modifies the timestep so that its
// StepType field is timestep.Last and sets the appropriate end type.
type Ender interface {
	End(*timestep.TimeStep) bool
}

// Task implements the reward scheme for taking actions in some
// environment. A Task determines the starting states of its
// environment, when episodes end, and the rewards given for each
// environmental transition.
type Task interface {
	Starter
	Ender

	// GetReward returns the reward for moving from state to nextState
	// by taking some action
	GetReward(state, action, nextState mat.Vector) float64

	// AtGoal returns whether the argument state is a goal state
	AtGoal(state mat.Matrix) bool

	// Min and Max return the minimum and maximum attainable rewards
	Min() float64
	Max() float64

	RewardSpec() Spec
}

// Environment implements a simulated environment, which includes a Task to
// complete
type Environment interface {
	Task

	// Reset resets the environment between episodes
	Reset() (timestep.TimeStep, error)

	// Step takes one environmental step given some action, returning
	// the next timestep and whether that timestep is the last in the
	// episode
	Step(action *mat.VecDense) (timestep.TimeStep, bool, error)

	// CurrentTimeStep returns the last timestep of the environment
	CurrentTimeStep() timestep.TimeStep

	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}
