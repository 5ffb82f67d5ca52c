package tui

import "strings"

// brailleBuf is a 2x4-per-cell micro-pixel surface for the basemap
// outlines and fills.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy < 0 || cy >= b.h || cx < 0 || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// cellBuf composes the final frame: braille background runes plus colored
// overlay cells for markers and text. Styles are tracked per cell and the
// row is emitted as runs so ANSI sequences never get sliced mid-escape.
type cellBuf struct {
	w, h   int
	runes  [][]rune
	styles [][]uint8 // index into the marker palette; 0 = unstyled
}

func newCellBuf(w, h int) *cellBuf {
	c := &cellBuf{w: w, h: h}
	c.runes = make([][]rune, h)
	c.styles = make([][]uint8, h)
	for y := 0; y < h; y++ {
		c.runes[y] = make([]rune, w)
		c.styles[y] = make([]uint8, w)
		for x := 0; x < w; x++ {
			c.runes[y][x] = ' '
		}
	}
	return c
}

// compositeBraille copies non-blank braille cells onto unstyled cells.
func (c *cellBuf) compositeBraille(b *brailleBuf) {
	for y := 0; y < c.h && y < b.h; y++ {
		for x := 0; x < c.w && x < b.w; x++ {
			if mask := b.m[y][x]; mask != 0 && c.styles[y][x] == 0 {
				c.runes[y][x] = rune(0x2800 + int(mask))
			}
		}
	}
}

func (c *cellBuf) set(x, y int, r rune, style uint8) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.runes[y][x] = r
	c.styles[y][x] = style
}

// writeText places a plain string starting at (x, y), clipped to the row.
func (c *cellBuf) writeText(x, y int, s string, style uint8) {
	for i, r := range []rune(s) {
		c.set(x+i, y, r, style)
	}
}

// render emits the frame, grouping consecutive same-style cells into one
// styled run per group.
func (c *cellBuf) render(palette []cellStyle) string {
	var sb strings.Builder
	for y := 0; y < c.h; y++ {
		x := 0
		for x < c.w {
			style := c.styles[y][x]
			end := x
			for end < c.w && c.styles[y][end] == style {
				end++
			}
			run := string(c.runes[y][x:end])
			if style == 0 || int(style) > len(palette) {
				sb.WriteString(run)
			} else {
				sb.WriteString(palette[style-1].Render(run))
			}
			x = end
		}
		if y < c.h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
