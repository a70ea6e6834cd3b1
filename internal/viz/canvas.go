package viz

import (
	"strings"

	"github.com/san-kum/algoviz/internal/step"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// cell is one terminal character. A cell holding a label rune shows it
// instead of its dots.
type cell struct {
	dots  rune
	label rune
	role  step.Role
}

// Canvas is a Braille pixel grid whose cells remember the role they were
// last drawn with, so a theme can colour them.
type Canvas struct {
	Width, Height int
	grid          [][]cell
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, grid: make([][]cell, h)}
	for i := range c.grid {
		c.grid[i] = make([]cell, w)
	}
	c.Clear()
	return c
}

// Set lights the sub-pixel (x, y). The canvas is Width*2 by Height*4
// sub-pixels.
func (c *Canvas) Set(x, y int, r step.Role) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	cl := &c.grid[row][col]
	cl.dots |= rune(pixelMap[y%4][x%2])
	// highlighted edges stay visible where they cross default ones
	if cl.label == 0 && r != step.RoleDefault {
		cl.role = r
	}
}

func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = cell{dots: blank, role: step.RoleDefault}
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, r step.Role) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, r)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Label writes text starting at character cell (col, row), clipped to the
// canvas.
func (c *Canvas) Label(col, row int, text string, r step.Role) {
	if row < 0 || row >= c.Height {
		return
	}
	for _, ch := range text {
		if col >= 0 && col < c.Width {
			c.grid[row][col].label = ch
			c.grid[row][col].role = r
		}
		col++
	}
}

// Render draws the canvas with theme colours. Runs of equal role share one
// styled span.
func (c *Canvas) Render(th Theme) string {
	var b strings.Builder
	for _, line := range c.grid {
		var run strings.Builder
		role := step.Role("")
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(th.RoleStyle(role).Render(run.String()))
				run.Reset()
			}
		}
		for _, cl := range line {
			if cl.role != role {
				flush()
				role = cl.role
			}
			run.WriteRune(cl.glyph())
		}
		flush()
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders the canvas without colour.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, line := range c.grid {
		for _, cl := range line {
			b.WriteRune(cl.glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (cl cell) glyph() rune {
	if cl.label != 0 {
		return cl.label
	}
	return cl.dots
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
