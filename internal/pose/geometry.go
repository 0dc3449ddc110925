package pose

import "math"

// degenerateEpsilon is the minimum ray length for a well-defined angle, in
// image-normalized units.
const degenerateEpsilon = 1e-5

// Midpoint returns the point halfway between a and b, or nil if either is
// missing.
func Midpoint(a, b *Point) *Point {
	if a == nil || b == nil {
		return nil
	}
	return &Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Distance returns the Euclidean distance between two points. The second
// return value is false if either point is missing.
func Distance(a, b *Point) (float64, bool) {
	if a == nil || b == nil {
		return 0, false
	}
	return math.Hypot(b.X-a.X, b.Y-a.Y), true
}

// Angle returns the interior angle in degrees at vertex b formed by the rays
// b->a and b->c, in the range [0, 180]. The second return value is false if
// any point is missing or either ray is degenerate (shorter than epsilon),
// which would make the angle undefined.
func Angle(a, b, c *Point) (float64, bool) {
	if a == nil || b == nil || c == nil {
		return 0, false
	}

	v1x, v1y := a.X-b.X, a.Y-b.Y
	v2x, v2y := c.X-b.X, c.Y-b.Y

	mag1 := math.Hypot(v1x, v1y)
	mag2 := math.Hypot(v2x, v2y)
	if mag1 < degenerateEpsilon || mag2 < degenerateEpsilon {
		return 0, false
	}

	// Clamp to [-1, 1] to tolerate floating-point overshoot before acos.
	cos := (v1x*v2x + v1y*v2y) / (mag1 * mag2)
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos) * 180 / math.Pi, true
}

// Orientation returns the signed angle in degrees, range (-180, 180], of the
// vector from a to b relative to the horizontal axis. Used for shoulder and
// body facing direction. The second return value is false if either point is
// missing.
func Orientation(a, b *Point) (float64, bool) {
	if a == nil || b == nil {
		return 0, false
	}
	return math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi, true
}

// Speed returns the displacement between the current and previous centers
// across one frame step, or 0 when there is no previous center.
func Speed(curr, prev *Point) float64 {
	if curr == nil || prev == nil {
		return 0
	}
	return math.Hypot(curr.X-prev.X, curr.Y-prev.Y)
}
