package game

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		p, q     Vec2
		expected float64
	}{
		{
			name:     "same point",
			p:        Vec2{X: 400, Y: 300},
			q:        Vec2{X: 400, Y: 300},
			expected: 0,
		},
		{
			name:     "3-4-5 triangle",
			p:        Vec2{X: 0, Y: 0},
			q:        Vec2{X: 3, Y: 4},
			expected: 5,
		},
		{
			name:     "negative coordinates",
			p:        Vec2{X: -3, Y: 0},
			q:        Vec2{X: 0, Y: -4},
			expected: 5,
		},
		{
			name:     "horizontal",
			p:        Vec2{X: 50, Y: 10},
			q:        Vec2{X: 250, Y: 10},
			expected: 200,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if d := Distance(tc.p, tc.q); math.Abs(d-tc.expected) > 1e-12 {
				t.Errorf("Distance() = %v, expected %v", d, tc.expected)
			}
		})
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"zero", 0, 0},
		{"already in range", 1.5, 1.5},
		{"above pi", 3 * math.Pi / 2, -math.Pi / 2},
		{"below minus pi", -3 * math.Pi / 2, math.Pi / 2},
		{"full turn", 2 * math.Pi, 0},
		{"many turns", 7 * math.Pi, math.Pi},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeAngle(tc.in); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("normalizeAngle(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestClampTurn(t *testing.T) {
	limit := 5 * math.Pi / 75
	tests := []struct {
		name     string
		turn     float64
		expected float64
	}{
		{"within limit", 0.1, 0.1},
		{"clamped positive", math.Pi / 2, limit},
		{"clamped negative", -math.Pi / 2, -limit},
		{"exactly at limit", limit, limit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := clampTurn(tc.turn, limit); got != tc.expected {
				t.Errorf("clampTurn(%v) = %v, expected %v", tc.turn, got, tc.expected)
			}
		})
	}
}
