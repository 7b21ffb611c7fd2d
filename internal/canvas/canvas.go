// Package canvas provides a depth-ordered character/color grid that the
// renderer paints into and the UI converts to terminal output.
package canvas

// RGB stores explicit 8-bit color channels, decoupled from any terminal library.
type RGB struct {
	R, G, B uint8
}

// Clamp8 converts a float channel value to uint8, clamping to [0, 255].
func Clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Lerp linearly interpolates between c and o by t in [0, 1].
func (c RGB) Lerp(o RGB, t float64) RGB {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return o
	}
	return RGB{
		R: Clamp8(float64(c.R) + t*(float64(o.R)-float64(c.R))),
		G: Clamp8(float64(c.G) + t*(float64(o.G)-float64(c.G))),
		B: Clamp8(float64(c.B) + t*(float64(o.B)-float64(c.B))),
	}
}

// Scale multiplies all channels by f with clamping.
func (c RGB) Scale(f float64) RGB {
	return RGB{
		R: Clamp8(float64(c.R) * f),
		G: Clamp8(float64(c.G) * f),
		B: Clamp8(float64(c.B) * f),
	}
}

// Add performs additive blend with clamping (light accumulation).
func (c RGB) Add(o RGB) RGB {
	return RGB{
		R: Clamp8(float64(c.R) + float64(o.R)),
		G: Clamp8(float64(c.G) + float64(o.G)),
		B: Clamp8(float64(c.B) + float64(o.B)),
	}
}

// Cell is a single painted grid position.
type Cell struct {
	Glyph   rune
	Fg, Bg  RGB
	Depth   float64
	Painted bool
}

// Buffer is a fixed-size cell grid with per-cell depth resolution.
// Writes farther than an already painted cell are discarded; ties go to
// the later writer so peer passes (rings, halos) can refine a body's cells.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// New creates a buffer with the given dimensions.
func New(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
}

// Width returns the buffer width in cells.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in cells.
func (b *Buffer) Height() int { return b.height }

// Resize adjusts dimensions, reallocating only when capacity is insufficient.
// Contents are cleared.
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets every cell to unpainted.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{}
	}
}

// inBounds reports whether (x, y) is inside the grid.
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set paints a cell if it wins the depth compare. Out-of-bounds writes are
// ignored; higher depth means nearer to the viewer.
func (b *Buffer) Set(x, y int, glyph rune, fg, bg RGB, depth float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]
	if dst.Painted && depth < dst.Depth {
		return
	}
	dst.Glyph = glyph
	dst.Fg = fg
	dst.Bg = bg
	dst.Depth = depth
	dst.Painted = true
}

// At returns the cell at (x, y). The second result is false out of bounds.
func (b *Buffer) At(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}
