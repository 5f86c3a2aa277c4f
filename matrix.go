package zrender

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// composeTransform builds the local affine matrix from transform properties.
// Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-Origin) -> Scale -> Rotate -> Translate(Position + Origin)
//
// so that rotation and scale pivot around the origin point.
func composeTransform(position Vec2, rotation float64, scale, origin Vec2) [6]float64 {
	sin, cos := math.Sincos(rotation)

	a := cos * scale.X
	b := sin * scale.X
	c := -sin * scale.Y
	d := cos * scale.Y

	// R * S applied to -origin, then shifted by position + origin.
	tx := -(a*origin.X + c*origin.Y) + position.X + origin.X
	ty := -(b*origin.X + d*origin.Y) + position.Y + origin.Y

	return [6]float64{a, b, c, d, tx, ty}
}

// decomposeTransform recovers position, rotation, and scale from an affine
// matrix, given the origin the matrix was composed with. It is the inverse
// of composeTransform for matrices without skew; skewed matrices lose the
// skew component.
func decomposeTransform(m [6]float64, origin Vec2) (position Vec2, rotation float64, scale Vec2) {
	sx := math.Hypot(m[0], m[1])
	if sx == 0 {
		return Vec2{m[4], m[5]}, 0, Vec2{}
	}
	rotation = math.Atan2(m[1], m[0])
	// Signed Y scale from the determinant keeps mirrored transforms intact.
	sy := (m[0]*m[3] - m[2]*m[1]) / sx
	scale = Vec2{sx, sy}

	// composeTransform stores tx = position + origin - (R*S)*origin.
	rsx := m[0]*origin.X + m[2]*origin.Y
	rsy := m[1]*origin.X + m[3]*origin.Y
	position = Vec2{m[4] - origin.X + rsx, m[5] - origin.Y + rsy}
	return position, rotation, scale
}

// rectApplyTransform transforms a rectangle and returns the axis-aligned
// bounding box of the result.
func rectApplyTransform(r Rect, m [6]float64) Rect {
	x0, y0 := transformPoint(m, r.X, r.Y)
	x1, y1 := transformPoint(m, r.X+r.Width, r.Y)
	x2, y2 := transformPoint(m, r.X, r.Y+r.Height)
	x3, y3 := transformPoint(m, r.X+r.Width, r.Y+r.Height)

	minX := min(min(x0, x1), min(x2, x3))
	maxX := max(max(x0, x1), max(x2, x3))
	minY := min(min(y0, y1), min(y2, y3))
	maxY := max(max(y0, y1), max(y2, y3))
	return Rect{minX, minY, maxX - minX, maxY - minY}
}
