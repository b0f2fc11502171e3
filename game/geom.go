package game

import "math"

// Vec2 is a point or displacement on the board.
type Vec2 struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Vec2) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// normalizeAngle wraps a into [-π, π].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// clampTurn limits a signed turn to [-limit, limit].
func clampTurn(turn, limit float64) float64 {
	if turn > limit {
		return limit
	}
	if turn < -limit {
		return -limit
	}
	return turn
}
