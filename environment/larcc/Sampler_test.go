package larcc

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

// TestSamplerGoalsAreValid samples many goals with the default cell
// parameters and checks that every one lies in the workspace region
// and points forward and downward, with no sampling timeouts.
func TestSamplerGoalsAreValid(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long goal-sampling scenario")
	}

	sampler := NewGoalSampler(DefaultTablePos, DefaultTableSize,
		DefaultMaxSampleAttempts, 192382)
	v := NewValidator(DefaultTablePos, DefaultTableSize)

	for i := 0; i < 10_000; i++ {
		goal, err := sampler.Sample()
		if err != nil {
			t.Fatalf("sample %v timed out: %v", i, err)
		}
		if goal.Len() != poseDims {
			t.Fatalf("sample %v: goal has %v elements, want %v", i,
				goal.Len(), poseDims)
		}

		x, y, z := goal.AtVec(0), goal.AtVec(1), goal.AtVec(2)
		if x < -0.5 || x > 0.7 {
			t.Fatalf("sample %v: x = %v outside [-0.5, 0.7]", i, x)
		}
		if y < -0.18 || y > 0.38 {
			t.Fatalf("sample %v: y = %v outside [-0.18, 0.38]", i, y)
		}
		if z < 0.86 || z > 1.36 {
			t.Fatalf("sample %v: z = %v outside [0.86, 1.36]", i, z)
		}

		if !facingForwardAndDown(poseQuat(goal)) {
			t.Fatalf("sample %v: goal orientation does not point forward "+
				"and downward", i)
		}

		// Sampled goals must also pass the workspace Validator, which
		// uses the same region and the same orientation predicate
		valid, err := v.IsValid(goal)
		if err != nil {
			t.Fatalf("sample %v: could not validate goal: %v", i, err)
		}
		if !valid {
			t.Fatalf("sample %v: goal rejected by the validator", i)
		}
	}
}

func TestSamplerDeterministicWithSeed(t *testing.T) {
	a := NewGoalSampler(DefaultTablePos, DefaultTableSize,
		DefaultMaxSampleAttempts, 42)
	b := NewGoalSampler(DefaultTablePos, DefaultTableSize,
		DefaultMaxSampleAttempts, 42)

	goalA, err := a.Sample()
	if err != nil {
		t.Fatalf("could not sample goal: %v", err)
	}
	goalB, err := b.Sample()
	if err != nil {
		t.Fatalf("could not sample goal: %v", err)
	}

	if !mat.EqualApprox(goalA, goalB, 1e-15) {
		t.Errorf("same seed produced different goals: %v and %v", goalA,
			goalB)
	}
}

func TestSamplerTimeout(t *testing.T) {
	// With no attempts allowed, sampling must fail with a typed
	// timeout instead of blocking
	sampler := NewGoalSampler(DefaultTablePos, DefaultTableSize, 0, 42)

	_, err := sampler.Sample()
	if err == nil {
		t.Fatal("expected a sampling timeout")
	}
	if !IsSamplingTimeout(err) {
		t.Errorf("expected a sampling timeout error, got %v", err)
	}
}
