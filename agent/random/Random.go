// Package random implements an agent that selects actions uniformly at
// random from a continuous action space. It learns nothing and serves
// as a baseline policy for exercising environments.
package random

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/golarcc/agent"
	"github.com/samuelfneumann/golarcc/environment"
	"github.com/samuelfneumann/golarcc/timestep"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
)

// Uniform selects actions uniformly at random within the bounds of an
// environment's action specification
type Uniform struct {
	actionDims int
	rng        *distmv.Uniform
	eval       bool
}

// New returns a new Uniform agent acting in the argument environment
func New(env environment.Environment, seed uint64) (agent.Agent, error) {
	spec := env.ActionSpec()
	if spec.Cardinality != environment.Continuous {
		return nil, fmt.Errorf("new: random agent requires a continuous " +
			"action space")
	}

	bounds := make([]r1.Interval, spec.Shape.Len())
	for i := range bounds {
		bounds[i] = r1.Interval{
			Min: spec.LowerBound.AtVec(i),
			Max: spec.UpperBound.AtVec(i),
		}
	}

	source := rand.NewSource(seed)
	return &Uniform{
		actionDims: len(bounds),
		rng:        distmv.NewUniform(bounds, source),
	}, nil
}

// SelectAction samples and returns a random action
func (u *Uniform) SelectAction(t timestep.TimeStep) *mat.VecDense {
	return mat.NewVecDense(u.actionDims, u.rng.Rand(nil))
}

// Step performs a single update to the learner. Uniform agents do not
// learn, so Step is a no-op.
func (u *Uniform) Step() error {
	return nil
}

// Observe records that an action lead to some timestep
func (u *Uniform) Observe(action mat.Vector,
	nextObs timestep.TimeStep) error {
	return nil
}

// ObserveFirst records the first timestep in an episode
func (u *Uniform) ObserveFirst(t timestep.TimeStep) error {
	return nil
}

// EndEpisode performs cleanup at the end of an episode
func (u *Uniform) EndEpisode() {}

// Eval sets the policy to evaluation mode
func (u *Uniform) Eval() {
	u.eval = true
}

// Train sets the policy to training mode
func (u *Uniform) Train() {
	u.eval = false
}

// IsEval indicates if the policy is in evaluation mode
func (u *Uniform) IsEval() bool {
	return u.eval
}
