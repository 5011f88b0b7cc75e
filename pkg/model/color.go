package model

// Color is an eight-component color definition: a base (r,g,b) in
// [-1000,1000], per-channel random amplitudes, and a shared random
// draw. Baking a Color into a displayable [0,100] range is a renderer
// concern (spec §1) and is out of scope for the core.
type Color struct {
	R, G, B    int
	RRand      int
	GRand      int
	BRand      int
	Rand       int
	ColorDances bool
}

// Bake resolves a Color to concrete (r,g,b) values in [0,100] given a
// 0..100 random draw for the shared amplitude and one per channel.
// This is provided for collaborators that need it (the display layer)
// but is never consulted by the simulation core itself.
func (c Color) Bake(rRand, gRand, bRand, shared int) (r, g, b int) {
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > 100 {
			return 100
		}
		return v
	}
	scale := func(base, amp, roll int) int {
		return clamp((base + amp*roll/100) / 10)
	}
	r = scale(c.R, c.RRand, rRand+shared)
	g = scale(c.G, c.GRand, gRand+shared)
	b = scale(c.B, c.BRand, bRand+shared)
	return
}
