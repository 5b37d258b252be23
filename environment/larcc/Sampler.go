package larcc

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/golang/geo/r3"
	"github.com/samuelfneumann/golarcc/utils/geomutils"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
)

// GoalSampler rejection-samples goal poses over the work table. The
// goal position is drawn uniformly from the same bounded region the
// Validator accepts; the goal orientation is the first randomly drawn
// orientation that points forward and downward.
type GoalSampler struct {
	posRng   *distmv.Uniform
	eulerRng *distmv.Uniform

	// maxAttempts bounds the orientation rejection loop
	maxAttempts int
}

// NewGoalSampler returns a new GoalSampler for the table with centre
// tablePos and extents tableSize. At most maxAttempts orientations are
// drawn per Sample call before giving up with a sampling timeout.
func NewGoalSampler(tablePos, tableSize r3.Vector, maxAttempts int,
	seed uint64) *GoalSampler {
	posSrc := rand.NewSource(seed)
	posBounds := []r1.Interval{
		{
			Min: tablePos.X - tableSize.X/2 + horizontalMargin,
			Max: tablePos.X + tableSize.X/2 - horizontalMargin,
		},
		{
			Min: tablePos.Y - tableSize.Y/2,
			Max: tablePos.Y + tableSize.Y/2 - horizontalMargin,
		},
		{
			Min: tablePos.Z + tableSize.Z/2 + minAboveTable,
			Max: tablePos.Z + tableSize.Z/2 + maxAboveTable,
		},
	}

	eulerSrc := rand.NewSource(seed)
	eulerBounds := make([]r1.Interval, 3)
	for i := range eulerBounds {
		eulerBounds[i] = r1.Interval{Min: -math.Pi, Max: math.Pi}
	}

	return &GoalSampler{
		posRng:      distmv.NewUniform(posBounds, posSrc),
		eulerRng:    distmv.NewUniform(eulerBounds, eulerSrc),
		maxAttempts: maxAttempts,
	}
}

// Sample draws and returns a goal pose [x, y, z, qw, qx, qy, qz]. The
// position is drawn once; orientations are drawn until one satisfies
// the orientation cone, so returned poses always point forward and
// downward. If no acceptable orientation is found within the attempt
// limit, Sample returns a sampling timeout error.
func (g *GoalSampler) Sample() (*mat.VecDense, error) {
	pos := g.posRng.Rand(nil)

	for i := 0; i < g.maxAttempts; i++ {
		angles := g.eulerRng.Rand(nil)
		q := geomutils.FromEuler(angles[0], angles[1], angles[2])
		if !facingForwardAndDown(q) {
			continue
		}

		return mat.NewVecDense(poseDims, []float64{
			pos[0], pos[1], pos[2],
			q.Real, q.Imag, q.Jmag, q.Kmag,
		}), nil
	}

	return nil, &TaskError{Op: "sample", Err: errSamplingTimeout}
}
