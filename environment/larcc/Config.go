package larcc

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Default physical and task parameters. The table geometry, joint
// names, and initial joint values describe the UR10e collaborative
// cell the environment models.
const (
	DefaultDistanceThreshold = 0.02
	DefaultKp                = 0.5
	DefaultKo                = 0.25
	DefaultEpisodeCutoff     = 50
	DefaultMaxSampleAttempts = 10_000
	DefaultMaxResetAttempts  = 10_000
)

// DefaultTablePos and DefaultTableSize give the centre position and
// extents of the work table in the world frame.
var (
	DefaultTablePos  = r3.Vector{X: 0.1, Y: 0.16, Z: 0.38}
	DefaultTableSize = r3.Vector{X: 1.2, Y: 0.68, Z: 0.76}
)

// DefaultJointNames lists the six controllable joints, in order from
// the base of the arm to the wrist.
var DefaultJointNames = []string{
	"shoulder_pan_joint",
	"shoulder_lift_joint",
	"elbow_joint",
	"wrist_1_joint",
	"wrist_2_joint",
	"wrist_3_joint",
}

// DefaultLinkNames lists the link bodies checked against the table
// height during validity-checked resets.
var DefaultLinkNames = []string{
	"shoulder_link",
	"upper_arm_link",
	"forearm_link",
	"wrist_1_link",
	"wrist_2_link",
	"wrist_3_link",
}

// DefaultInitialJointValues is the fixed starting joint configuration
// used when random starts are disabled.
var DefaultInitialJointValues = []float64{
	-0.004053417836324513,
	-1.7941252193846644,
	1.5798662344561976,
	-1.4848967355540772,
	-1.63149339357485,
	-0.07133704820741826,
}

// Config describes a Larcc environment: the workspace geometry, the
// reward weighting, and the reset behaviour. A Config is set once at
// construction and never mutated afterwards.
type Config struct {
	// TablePos and TableSize are the centre and extents of the work
	// table, which define the reachable goal region
	TablePos  r3.Vector
	TableSize r3.Vector

	// DistanceThreshold is the bonus-reward threshold. The bonus is
	// given when the position reward exceeds 1 - DistanceThreshold,
	// not when the raw distance falls below it.
	DistanceThreshold float64

	// Kp and Ko weight the position and orientation reward terms. The
	// bonus term is weighted by 1 - Kp - Ko.
	Kp float64
	Ko float64

	// RandomStart selects between random validity-checked starting
	// joint configurations and the fixed InitialJointValues
	RandomStart bool

	// EpisodeCutoff is the timestep limit per episode
	EpisodeCutoff int

	JointNames         []string
	InitialJointValues []float64
	LinkNames          []string

	// MaxSampleAttempts bounds the goal-sampling rejection loop;
	// MaxResetAttempts bounds the validity-checked reset loop
	MaxSampleAttempts int
	MaxResetAttempts  int
}

// NewConfig returns a Config with the default cell parameters
func NewConfig(randomStart bool) Config {
	return Config{
		TablePos:           DefaultTablePos,
		TableSize:          DefaultTableSize,
		DistanceThreshold:  DefaultDistanceThreshold,
		Kp:                 DefaultKp,
		Ko:                 DefaultKo,
		RandomStart:        randomStart,
		EpisodeCutoff:      DefaultEpisodeCutoff,
		JointNames:         DefaultJointNames,
		InitialJointValues: DefaultInitialJointValues,
		LinkNames:          DefaultLinkNames,
		MaxSampleAttempts:  DefaultMaxSampleAttempts,
		MaxResetAttempts:   DefaultMaxResetAttempts,
	}
}

// Validate checks that the Config describes a legal environment
func (c Config) Validate() error {
	if c.Kp < 0 || c.Kp > 1 {
		return fmt.Errorf("validate: position reward weight must be in "+
			"[0, 1] \n\thave(%v)", c.Kp)
	}
	if c.Ko < 0 || c.Ko > 1 {
		return fmt.Errorf("validate: orientation reward weight must be in "+
			"[0, 1] \n\thave(%v)", c.Ko)
	}
	if c.Kp+c.Ko > 1 {
		return fmt.Errorf("validate: reward weights must sum to at most 1 "+
			"\n\thave(%v)", c.Kp+c.Ko)
	}
	if c.DistanceThreshold <= 0 {
		return fmt.Errorf("validate: distance threshold must be positive "+
			"\n\thave(%v)", c.DistanceThreshold)
	}
	if c.TableSize.X <= 0 || c.TableSize.Y <= 0 || c.TableSize.Z <= 0 {
		return fmt.Errorf("validate: table extents must be positive "+
			"\n\thave(%v)", c.TableSize)
	}
	if c.EpisodeCutoff <= 0 {
		return fmt.Errorf("validate: episode cutoff must be positive "+
			"\n\thave(%v)", c.EpisodeCutoff)
	}
	if len(c.JointNames) == 0 {
		return fmt.Errorf("validate: no joint names given")
	}
	if len(c.InitialJointValues) != len(c.JointNames) {
		return fmt.Errorf("validate: initial joint values do not match "+
			"joints \n\thave(%v) \n\twant(%v)", len(c.InitialJointValues),
			len(c.JointNames))
	}
	if c.MaxSampleAttempts <= 0 || c.MaxResetAttempts <= 0 {
		return fmt.Errorf("validate: attempt limits must be positive "+
			"\n\thave(%v, %v)", c.MaxSampleAttempts, c.MaxResetAttempts)
	}
	return nil
}
