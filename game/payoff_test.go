package game

import (
	"math"
	"testing"
)

func TestPayoffs(t *testing.T) {
	tests := []struct {
		name          string
		c, d          int
		r             float64
		wantCooperate float64
		wantDefect    float64
	}{
		{"isolated node", 0, 0, 0.5, 0, 0},
		{"triangle tie", 1, 1, 0.5, 1.5, 1.5},
		{"all cooperating neighbors", 2, 0, 0.25, 2, 2.5},
		{"all defecting neighbors", 0, 2, 0.25, 1.5, 0},
		{"mixed", 2, 3, 0.25, 4.25, 2.5},
		{"zero cost", 3, 2, 0, 5, 3},
		{"negative cost", 1, 1, -0.5, 2.5, 0.5},
		{"cost above one", 1, 1, 1.5, 0.5, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cooperate, defect := Payoffs(tt.c, tt.d, tt.r)
			if math.Abs(cooperate-tt.wantCooperate) > 1e-12 {
				t.Errorf("cooperate payoff = %v, want %v", cooperate, tt.wantCooperate)
			}
			if math.Abs(defect-tt.wantDefect) > 1e-12 {
				t.Errorf("defect payoff = %v, want %v", defect, tt.wantDefect)
			}
		})
	}
}

// With r = 0 a defector earns exactly the number of cooperating neighbors
// and a cooperator earns its full degree.
func TestPayoffsZeroCost(t *testing.T) {
	for c := 0; c <= 4; c++ {
		for d := 0; d <= 4; d++ {
			cooperate, defect := Payoffs(c, d, 0)
			if cooperate != float64(c+d) {
				t.Errorf("Payoffs(%d, %d, 0) cooperate = %v, want %d", c, d, cooperate, c+d)
			}
			if defect != float64(c) {
				t.Errorf("Payoffs(%d, %d, 0) defect = %v, want %d", c, d, defect, c)
			}
		}
	}
}
