package ledcanvas

// Translate moves the origin by (x, y) user units.
func (c *Context) Translate(x, y float64) {
	if c.closed || !finite(x, y) {
		return
	}
	c.concat(Translate(x, y))
}

// Rotate turns the axes clockwise by angle radians.
func (c *Context) Rotate(angle float64) {
	if c.closed || !finite(angle) {
		return
	}
	c.concat(Rotate(angle))
}

// Scale scales the axes. Zero factors are accepted and make later drawing
// invisible until the transform is restored.
func (c *Context) Scale(x, y float64) {
	if c.closed || !finite(x, y) {
		return
	}
	c.concat(Scale(x, y))
}

// Transform multiplies the current transform by the canvas matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
func (c *Context) Transform(a, b, cc, d, e, f float64) {
	if c.closed || !finite(a, b, cc, d, e, f) {
		return
	}
	c.concat(FromCanvas(a, b, cc, d, e, f))
}

// SetTransform replaces the current transform with the canvas matrix
// (a, b, c, d, e, f).
func (c *Context) SetTransform(a, b, cc, d, e, f float64) {
	if c.closed || !finite(a, b, cc, d, e, f) {
		return
	}
	c.SetMatrix(FromCanvas(a, b, cc, d, e, f))
}

// SetMatrix replaces the current transform.
func (c *Context) SetMatrix(m Matrix) {
	if c.closed || !finite(m.A, m.B, m.C, m.D, m.E, m.F) {
		return
	}
	if !m.IsInvertible() {
		Logger().Debug("ledcanvas: singular transform", "matrix", m)
	}
	c.state.transform = m
	c.syncPath()
}

// ResetTransform sets the current transform to the identity.
func (c *Context) ResetTransform() {
	if c.closed {
		return
	}
	c.state.transform = Identity()
	c.syncPath()
}

// GetTransform returns the current transform.
func (c *Context) GetTransform() Matrix {
	return c.state.transform
}

// concat applies m before the current transform.
func (c *Context) concat(m Matrix) {
	c.state.transform = c.state.transform.Multiply(m)
	c.syncPath()
}
