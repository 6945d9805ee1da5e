// Package ballistics solves pursuit intercepts for leading moving targets.
package ballistics

import "math"

const epsilon = 1e-6

// InterceptTime returns the earliest time t >= 0 at which a projectile fired
// from the origin at speed reaches a target at offset (dx, dy) moving with
// velocity (vx, vy). It solves
//
//	(|v|² - s²)t² + 2(v·Δp)t + |Δp|² = 0
//
// and returns 0 when no positive finite root exists.
func InterceptTime(dx, dy, vx, vy, speed float64) float64 {
	a := vx*vx + vy*vy - speed*speed
	b := 2 * (vx*dx + vy*dy)
	c := dx*dx + dy*dy

	if math.Abs(a) < epsilon {
		if math.Abs(b) > epsilon {
			return math.Max(0, -c/b)
		}
		return 0
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)

	best := math.Inf(1)
	for _, t := range []float64{t1, t2} {
		if t > 0 && !math.IsInf(t, 0) && !math.IsNaN(t) && t < best {
			best = t
		}
	}
	if math.IsInf(best, 1) {
		return 0
	}
	return best
}

// LeadPoint returns where to aim at a target at (tx, ty) moving with (vx, vy)
// from a shooter at (sx, sy) firing at speed. The intercept time is clamped to
// [0, maxLead]. A non-finite result falls back to the target's position.
func LeadPoint(sx, sy, tx, ty, vx, vy, speed, maxLead float64) (float64, float64) {
	t := InterceptTime(tx-sx, ty-sy, vx, vy, speed)
	t = math.Max(0, math.Min(maxLead, t))
	ax, ay := tx+vx*t, ty+vy*t
	if math.IsNaN(ax) || math.IsNaN(ay) || math.IsInf(ax, 0) || math.IsInf(ay, 0) {
		return tx, ty
	}
	return ax, ay
}
