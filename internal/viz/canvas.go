package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/conic"
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

const (
	blank = 0x2800
	// wide marks the cell hidden behind a double-width overlay rune.
	wide = -1
)

// Canvas is a braille raster with one ink color and an optional text
// overlay per character cell.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	ink           [][]conic.Color
	text          [][]rune
	textInk       [][]conic.Color
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:   w,
		Height:  h,
		Grid:    make([][]rune, h),
		ink:     make([][]conic.Color, h),
		text:    make([][]rune, h),
		textInk: make([][]conic.Color, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.ink[i] = make([]conic.Color, w)
		c.text[i] = make([]rune, w)
		c.textInk[i] = make([]conic.Color, w)
	}
	c.Clear()
	return c
}

// Mapper returns a mapper over the sub-pixel grid, which is (Width*2) x
// (Height*4) dots, with the origin at the center.
func (c *Canvas) Mapper(scale float64) Mapper {
	return NewMapper(float64(c.Width*2), float64(c.Height*4), scale)
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
func (c *Canvas) Set(x, y int) {
	c.SetInk(x, y, "")
}

// SetInk sets a pixel and recolors its cell. An empty color keeps the
// current one.
func (c *Canvas) SetInk(x, y int, col conic.Color) {
	if x < 0 || y < 0 {
		return
	}

	cx := x / 2
	row := y / 4
	if cx >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	c.Grid[row][cx] |= rune(pixelMap[subY][subX])
	if col != "" {
		c.ink[row][cx] = col
	}
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	cx := x / 2
	row := y / 4
	if cx >= c.Width || row >= c.Height {
		return
	}

	mask := ^rune(pixelMap[y%4][x%2])
	c.Grid[row][cx] &= mask
	if c.Grid[row][cx] < blank {
		c.Grid[row][cx] = blank
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.ink[i][j] = ""
			c.text[i][j] = 0
			c.textInk[i][j] = ""
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col conic.Color) {
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
		c.SetInk(x0, y0, col)
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

// InkAt returns the color of a character cell, empty if never inked.
func (c *Canvas) InkAt(col, row int) conic.Color {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return ""
	}
	return c.ink[row][col]
}

// Dots lists the lit sub-pixels of a cell as (dx, dy) offsets.
func (c *Canvas) Dots(col, row int) [][2]int {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return nil
	}
	pattern := int(c.Grid[row][col] - blank)
	var out [][2]int
	for dy := 0; dy < 4; dy++ {
		for dx := 0; dx < 2; dx++ {
			if pattern&pixelMap[dy][dx] != 0 {
				out = append(out, [2]int{dx, dy})
			}
		}
	}
	return out
}

// Text overlays s starting at character cell (col, row). Double-width runes
// take two cells.
func (c *Canvas) Text(col, row int, s string, ink conic.Color) {
	if row < 0 || row >= c.Height {
		return
	}
	for _, r := range s {
		w := lipgloss.Width(string(r))
		if col >= 0 && col+w <= c.Width {
			c.release(row, col)
			c.text[row][col] = r
			c.textInk[row][col] = ink
			if w == 2 {
				c.release(row, col+1)
				c.text[row][col+1] = wide
			}
		}
		col += w
	}
}

// release clears the other half of a double-width rune that covers
// (row, col), so overwriting either half never shifts the row.
func (c *Canvas) release(row, col int) {
	switch {
	case c.text[row][col] == wide:
		if col > 0 {
			c.text[row][col-1] = 0
		}
	case c.text[row][col] != 0 && col+1 < c.Width && c.text[row][col+1] == wide:
		c.text[row][col+1] = 0
	}
}

// DrawScene rasterizes a scene built with c.Mapper. Grid lines become dots at
// their intersections so the curve stays readable.
func (c *Canvas) DrawScene(s Scene) {
	cols := map[int]bool{}
	rows := map[int]bool{}
	for _, g := range s.Grid {
		if g.From.X == g.To.X {
			cols[round(g.From.X)] = true
		} else {
			rows[round(g.From.Y)] = true
		}
	}
	for x := range cols {
		for y := range rows {
			c.SetInk(x, y, GridColor)
		}
	}

	maxX, maxY := c.Width*2-1, c.Height*4-1
	for _, a := range s.Axes {
		c.DrawLine(
			clampInt(round(a.From.X), 0, maxX), clampInt(round(a.From.Y), 0, maxY),
			clampInt(round(a.To.X), 0, maxX), clampInt(round(a.To.Y), 0, maxY),
			AxisColor,
		)
	}

	for _, p := range s.Paths {
		c.drawPath(p, s.Color)
	}

	for _, m := range s.Markers {
		x, y := round(m.At.X), round(m.At.Y)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				c.SetInk(x+dx, y+dy, FocusColor)
			}
		}
		c.Text(x/2-len(m.Label)/2, y/4+1, m.Label, FocusColor)
	}

	if a := s.Annotation; a != nil {
		x, y := round(a.Dot.X), round(a.Dot.Y)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				c.SetInk(x+dx, y+dy, s.Color)
			}
		}
		c.Text(round(a.At.X)/2-lipgloss.Width(a.Text)/2, round(a.At.Y)/4, a.Text, s.Color)
	}
}

func (c *Canvas) drawPath(p Path, col conic.Color) {
	pts := p.Points
	for i := 1; i < len(pts); i++ {
		c.DrawLine(round(pts[i-1].X), round(pts[i-1].Y), round(pts[i].X), round(pts[i].Y), col)
	}
	if p.Closed && len(pts) > 2 {
		first, last := pts[0], pts[len(pts)-1]
		c.DrawLine(round(last.X), round(last.Y), round(first.X), round(first.Y), col)
	}
}

// String renders the canvas without color.
func (c *Canvas) String() string {
	var b strings.Builder
	for row := range c.Grid {
		for col := range c.Grid[row] {
			switch r := c.text[row][col]; r {
			case 0:
				b.WriteRune(c.Grid[row][col])
			case wide:
			default:
				b.WriteRune(r)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Render renders the canvas with each cell in its ink color; uninked dots
// fall back to the theme's muted color.
func (c *Canvas) Render(theme Theme) string {
	styles := map[conic.Color]lipgloss.Style{}
	style := func(col conic.Color) lipgloss.Style {
		if col == "" {
			return lipgloss.NewStyle().Foreground(theme.Muted)
		}
		st, ok := styles[col]
		if !ok {
			st = lipgloss.NewStyle().Foreground(lipgloss.Color(string(col)))
			styles[col] = st
		}
		return st
	}

	var b strings.Builder
	for row := range c.Grid {
		for col := range c.Grid[row] {
			switch r := c.text[row][col]; r {
			case 0:
				if c.Grid[row][col] == blank {
					b.WriteRune(blank)
					continue
				}
				b.WriteString(style(c.ink[row][col]).Render(string(c.Grid[row][col])))
			case wide:
			default:
				b.WriteString(style(c.textInk[row][col]).Bold(true).Render(string(r)))
			}
		}
		if row < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func round(v float64) int {
	return int(math.Round(v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
