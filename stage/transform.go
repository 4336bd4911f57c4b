package stage

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeTransform computes the node's affine matrix. Returns
// [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-origin) -> Scale -> Rotate -> Translate(X, Y)
func computeTransform(n *Node) [6]float64 {
	w, h := n.Dimensions()
	px := n.OriginX * w
	py := n.OriginY * h
	sx, sy := n.ScaleX, n.ScaleY

	sin, cos := math.Sincos(n.Rotation)

	// After Scale * Translate(-pivot):
	//   a=sx, b=0, c=0, d=sy, tx=-px*sx, ty=-py*sy
	preTx := -px * sx
	preTy := -py * sy

	return [6]float64{
		cos * sx, sin * sx,
		-sin * sy, cos * sy,
		cos*preTx - sin*preTy + n.X,
		sin*preTx + cos*preTy + n.Y,
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
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

// updateTransform recomputes the node's transform when dirty. Text nodes
// are always recomputed since their size follows their content.
func updateTransform(n *Node) {
	if n.transformDirty || n.Type == NodeTypeText {
		n.worldTransform = computeTransform(n)
		n.transformDirty = false
	}
}

// --- Transform property setters ---

// SetPosition sets the node's X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// SetScale sets the node's ScaleX and ScaleY and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	n.transformDirty = true
}

// SetRotation sets the node's rotation (in radians) and marks it dirty.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// SetOrigin sets the node's normalized anchor and marks it dirty.
func (n *Node) SetOrigin(ox, oy float64) {
	n.OriginX = ox
	n.OriginY = oy
	n.transformDirty = true
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next frame. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	updateTransform(n)
	return transformPoint(invertAffine(n.worldTransform), wx, wy)
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	updateTransform(n)
	return transformPoint(n.worldTransform, lx, ly)
}
