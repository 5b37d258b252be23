package environment

import (
	"math"
	"testing"

	"github.com/samuelfneumann/golarcc/timestep"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

func TestStepLimitEndsEpisode(t *testing.T) {
	ender := NewStepLimit(3)
	obs := mat.NewVecDense(1, nil)

	for n := 1; n < 3; n++ {
		step := timestep.New(timestep.Mid, 0, 1, obs, n)
		if ender.End(&step) {
			t.Errorf("step %v should not end the episode", n)
		}
		if !step.Mid() || step.End() != timestep.Nil {
			t.Errorf("step %v should be left unmodified", n)
		}
	}

	step := timestep.New(timestep.Mid, 0, 1, obs, 3)
	if !ender.End(&step) {
		t.Error("step 3 should end the episode")
	}
	if !step.Last() {
		t.Error("the final step should have step type Last")
	}
	if step.End() != timestep.Timeout {
		t.Errorf("the final step should end with a timeout, got %v",
			step.End())
	}
}

func TestUniformStarterWithinBounds(t *testing.T) {
	bounds := []r1.Interval{
		{Min: -math.Pi, Max: math.Pi},
		{Min: 0, Max: 1},
		{Min: -2, Max: -1},
	}
	starter := NewUniformStarter(bounds, 13)

	for i := 0; i < 100; i++ {
		start := starter.Start()
		if start.Len() != len(bounds) {
			t.Fatalf("start vector should have %v elements, got %v",
				len(bounds), start.Len())
		}
		for j, bound := range bounds {
			if start.AtVec(j) < bound.Min || start.AtVec(j) > bound.Max {
				t.Fatalf("start element %v = %v outside [%v, %v]", j,
					start.AtVec(j), bound.Min, bound.Max)
			}
		}
	}
}

func TestUniformStarterDeterministicWithSeed(t *testing.T) {
	bounds := []r1.Interval{{Min: -1, Max: 1}, {Min: -1, Max: 1}}

	first := NewUniformStarter(bounds, 7).Start()
	second := NewUniformStarter(bounds, 7).Start()

	if !mat.EqualApprox(first, second, 1e-15) {
		t.Error("equal seeds should give equal starting vectors")
	}
}
