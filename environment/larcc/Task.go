package larcc

import (
	"fmt"

	"github.com/samuelfneumann/golarcc/environment"
	"github.com/samuelfneumann/golarcc/utils/floatutils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// quatRewardThreshold is the orientation-reward level above which the
// bonus reward can be given
const quatRewardThreshold = 0.98

// Reach implements the reaching task for the Larcc environment. The
// arm must place its end effector at a goal pose sampled over the work
// table. Rewards are dense and composed of three terms: a clipped
// position reward, an orientation reward that respects the quaternion
// double cover (q and -q represent the same rotation), and a binary
// bonus given when both are near their maxima. Episodes are ended
// after a time limit.
//
// The Reach Task owns the goal and a per-episode history of the three
// reward terms; the history drives success detection and is cleared at
// every episode reset.
type Reach struct {
	// Starter samples joint configurations for random starts
	environment.Starter
	environment.Ender

	distanceThreshold float64
	kp                float64
	ko                float64

	sampler *GoalSampler
	goal    *mat.VecDense

	// Per-episode reward term history. The three slices grow in
	// lockstep, one triple per reward computation.
	posRewards   []float64
	quatRewards  []float64
	bonusRewards []float64
}

// NewReach returns a new Reach Task. The jointStarter samples starting
// joint configurations, the sampler draws goal poses, and
// distanceThreshold, kp, and ko parameterize the reward (the bonus
// weight is 1 - kp - ko). Weights outside [0, 1] or summing above 1
// are rejected.
func NewReach(jointStarter environment.Starter, sampler *GoalSampler,
	distanceThreshold, kp, ko float64, cutoff int) (*Reach, error) {
	if kp < 0 || ko < 0 || kp > 1 || ko > 1 || kp+ko > 1 {
		return nil, fmt.Errorf("newReach: illegal reward weights "+
			"kp=%v ko=%v", kp, ko)
	}
	if distanceThreshold <= 0 {
		return nil, fmt.Errorf("newReach: distance threshold must be "+
			"positive \n\thave(%v)", distanceThreshold)
	}

	return &Reach{
		Starter:           jointStarter,
		Ender:             environment.NewStepLimit(cutoff),
		distanceThreshold: distanceThreshold,
		kp:                kp,
		ko:                ko,
		sampler:           sampler,
	}, nil
}

// Reset begins a new episode: the reward history is cleared and a new
// goal pose is sampled. Reset returns a sampling timeout error when
// the goal sampler exhausts its attempt limit.
func (r *Reach) Reset() error {
	r.posRewards = nil
	r.quatRewards = nil
	r.bonusRewards = nil

	goal, err := r.sampler.Sample()
	if err != nil {
		return err
	}
	r.goal = goal

	return nil
}

// Goal returns the current goal pose, or nil before the first Reset
func (r *Reach) Goal() mat.Vector {
	if r.goal == nil {
		return nil
	}
	return r.goal
}

// ComputeReward computes the shaped reward for an achieved end-effector
// pose against a desired pose, recording the three reward terms in the
// episode history:
//
//	posReward   = clip(1 - ‖desired.pos - achieved.pos‖, -1, 1)
//	quatReward  = max(<desired.q, achieved.q>, <desired.q, -achieved.q>)
//	bonusReward = 1 iff posReward > 1 - distanceThreshold and
//	              quatReward > 0.98
//
// The total reward is kp·posReward + ko·quatReward +
// (1-kp-ko)·bonusReward.
func (r *Reach) ComputeReward(achieved, desired mat.Vector) (float64,
	error) {
	if achieved.Len() != poseDims || desired.Len() != poseDims {
		return 0, &TaskError{Op: "computeReward", Err: errInvalidPoseShape}
	}

	achievedData := poseData(achieved)
	desiredData := poseData(desired)

	posError := floats.Distance(desiredData[:3], achievedData[:3], 2)
	posReward := floatutils.Clip(1-posError, -1, 1)
	r.posRewards = append(r.posRewards, posReward)

	// The negated dot product covers the antipodal quaternion, which
	// represents the same rotation
	dot := floats.Dot(desiredData[3:], achievedData[3:])
	quatReward := floatutils.Max(dot, -dot)
	r.quatRewards = append(r.quatRewards, quatReward)

	bonusReward := 0.0
	if posReward > 1-r.distanceThreshold && quatReward > quatRewardThreshold {
		bonusReward = 1.0
	}
	r.bonusRewards = append(r.bonusRewards, bonusReward)

	return r.kp*posReward + r.ko*quatReward +
		(1-r.kp-r.ko)*bonusReward, nil
}

// GetReward returns the reward for some transition. The nextState
// argument must be the achieved 7-element end-effector pose; the
// desired pose is the Task's current goal.
func (r *Reach) GetReward(state, action, nextState mat.Vector) float64 {
	if r.goal == nil {
		panic("getReward: no goal set, Reset the task first")
	}

	reward, err := r.ComputeReward(nextState, r.goal)
	if err != nil {
		panic(fmt.Sprintf("getReward: %v", err))
	}
	return reward
}

// IsSuccess returns whether the most recent reward computation earned
// the bonus reward. Success is a derived read of the episode history,
// not a recomputation: it is false before any reward computation and
// equals (last bonus term == 1) afterwards.
func (r *Reach) IsSuccess() bool {
	return len(r.bonusRewards) > 0 &&
		r.bonusRewards[len(r.bonusRewards)-1] == 1
}

// AtGoal returns whether the pose determined by the argument state
// would earn the bonus reward against the current goal. Unlike
// ComputeReward, AtGoal records nothing in the episode history.
func (r *Reach) AtGoal(state mat.Matrix) bool {
	rows, c := state.Dims()
	if c != 1 || rows != poseDims {
		panic("atGoal: argument state should be a 7-element pose")
	}
	if r.goal == nil {
		return false
	}

	achieved := make([]float64, poseDims)
	for i := range achieved {
		achieved[i] = state.At(i, 0)
	}
	desired := r.goal.RawVector().Data

	posReward := floatutils.Clip(1-floats.Distance(desired[:3],
		achieved[:3], 2), -1, 1)
	dot := floats.Dot(desired[3:], achieved[3:])
	quatReward := floatutils.Max(dot, -dot)

	return posReward > 1-r.distanceThreshold &&
		quatReward > quatRewardThreshold
}

// Min returns the minimum attainable reward
func (r *Reach) Min() float64 {
	return -(r.kp + r.ko)
}

// Max returns the maximum attainable reward
func (r *Reach) Max() float64 {
	return 1.0
}

// RewardSpec returns the reward specification of the Task
func (r *Reach) RewardSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{r.Min()})
	upperBound := mat.NewVecDense(1, []float64{r.Max()})

	return environment.NewSpec(shape, environment.Reward, lowerBound,
		upperBound, environment.Continuous)
}

// poseData copies a pose vector into a plain slice
func poseData(pose mat.Vector) []float64 {
	data := make([]float64, pose.Len())
	for i := range data {
		data[i] = pose.AtVec(i)
	}
	return data
}
