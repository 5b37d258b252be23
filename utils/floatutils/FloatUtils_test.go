package floatutils

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r1"
)

func TestClip(t *testing.T) {
	tests := []struct {
		value, min, max, want float64
	}{
		{0.5, -1, 1, 0.5},
		{-3, -1, 1, -1},
		{3, -1, 1, 1},
		{-1, -1, 1, -1},
		{1, -1, 1, 1},
	}

	for _, test := range tests {
		if got := Clip(test.value, test.min, test.max); got != test.want {
			t.Errorf("Clip(%v, %v, %v) = %v, want %v", test.value,
				test.min, test.max, got, test.want)
		}
	}
}

func TestClipInterval(t *testing.T) {
	interval := r1.Interval{Min: 0, Max: 2}

	if got := ClipInterval(-1, interval); got != 0 {
		t.Errorf("ClipInterval(-1, [0, 2]) = %v, want 0", got)
	}
	if got := ClipInterval(3, interval); got != 2 {
		t.Errorf("ClipInterval(3, [0, 2]) = %v, want 2", got)
	}
}

func TestMinMax(t *testing.T) {
	values := []float64{3, -2, 7, 0}

	if got := Min(values...); got != -2 {
		t.Errorf("Min = %v, want -2", got)
	}
	if got := Max(values...); got != 7 {
		t.Errorf("Max = %v, want 7", got)
	}
}
