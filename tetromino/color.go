package tetromino

// Color is a straight-alpha RGBA color with components in [0,1]. It satisfies
// image/color.Color so renderers can pass it through unchanged.
type Color struct {
	R, G, B, A float32
}

var colors = [KindCount]Color{
	O: {0.94, 0.94, 0.0, 1.0},
	J: {0.94, 0.63, 0.0, 1.0},
	L: {0.0, 0.0, 0.94, 1.0},
	I: {0.0, 0.94, 0.94, 1.0},
	S: {0.0, 0.94, 0.0, 1.0},
	Z: {0.94, 0.0, 0.0, 1.0},
	T: {0.64, 0.0, 0.94, 1.0},
}

// Color returns the display color of the kind.
func (k Kind) Color() Color {
	return colors[k]
}

// RGBA returns alpha-premultiplied 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = channel(c.A)
	r = channel(c.R*c.A)
	g = channel(c.G*c.A)
	b = channel(c.B*c.A)
	return
}

func channel(v float32) uint32 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xffff
	}
	return uint32(v*0xffff + 0.5)
}
