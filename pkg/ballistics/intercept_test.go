package ballistics

import (
	"math"
	"testing"
)

func TestInterceptTime(t *testing.T) {
	tests := []struct {
		name              string
		dx, dy, vx, vy, s float64
		want              float64
	}{
		{"stationary", 100, 0, 0, 0, 200, 0.5},
		{"crossing", 100, 0, 0, 50, 200, 0.5164},
		{"approaching", 100, 0, -100, 0, 100, 0.5},
		{"equal speed receding", 100, 0, 100, 0, 100, 0},
		{"outrunning", 100, 0, 300, 0, 100, 0},
		{"on top", 0, 0, 10, 0, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InterceptTime(tt.dx, tt.dy, tt.vx, tt.vy, tt.s)
			if math.Abs(got-tt.want) > 1e-3 {
				t.Errorf("InterceptTime = %.4f, want %.4f", got, tt.want)
			}
		})
	}
}

func TestLeadPointClampsLead(t *testing.T) {
	x, y := LeadPoint(0, 0, 100, 0, 0, 50, 200, 0.25)
	if x != 100 || math.Abs(y-12.5) > 1e-9 {
		t.Fatalf("LeadPoint = (%v, %v), want (100, 12.5)", x, y)
	}
}

func TestLeadPointNonFiniteFallsBack(t *testing.T) {
	x, y := LeadPoint(0, 0, 10, 20, math.Inf(1), 0, 100, 1)
	if x != 10 || y != 20 {
		t.Fatalf("LeadPoint = (%v, %v), want target position", x, y)
	}
}
