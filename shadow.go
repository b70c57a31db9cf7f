package ledcanvas

// hasShadow reports whether draws currently get a shadow pass.
func (c *Context) hasShadow() bool {
	return c.state.shadowBlur > 0 && c.state.shadowColor.A > 0
}

// drawWithShadow runs draw once for the shadow, when one is active, and
// once for the shape itself. The shadow pass paints the same geometry in
// the shadow colour, blurred and offset in device space. It works on a
// copy of p, so nothing leaks into the real pass or the live state.
func (c *Context) drawWithShadow(p paint, draw func(paint)) {
	if c.hasShadow() {
		st := &c.state
		sp := p
		sp.shader = nil
		sp.color = applyAlpha(st.shadowColor, st.globalAlpha)
		sp.blur = st.shadowBlur * c.opts.shadowBlurScale

		c.surface.Save()
		c.surface.Translate(st.shadowOffsetX, st.shadowOffsetY)
		draw(sp)
		c.surface.Restore()
	}
	draw(p)
}
