package render

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Cell pixel size used to map draw calls onto terminal cells
const (
	CellWidth  = 8
	CellHeight = 16
)

// Cell is one rasterized terminal cell
type Cell struct {
	Rune rune
	FG   color.RGBA
	BG   color.RGBA
}

type cellBuffer struct {
	cols, rows int
	cells      []Cell
}

// CellSurface rasterizes draw calls into a grid of terminal cells.
// Pixel coordinates are mapped to cells of CellWidth x CellHeight.
type CellSurface struct {
	buf  *cellBuffer
	clip image.Rectangle // in pixels
}

// NewCellSurface creates a surface of cols x rows cells
func NewCellSurface(cols, rows int) *CellSurface {
	buf := &cellBuffer{cols: cols, rows: rows, cells: make([]Cell, cols*rows)}
	for i := range buf.cells {
		buf.cells[i] = Cell{Rune: ' ', BG: color.RGBA{A: 255}}
	}
	return &CellSurface{buf: buf, clip: image.Rect(0, 0, cols*CellWidth, rows*CellHeight)}
}

// Cell returns the cell at column x, row y
func (s *CellSurface) Cell(x, y int) Cell {
	if x < 0 || y < 0 || x >= s.buf.cols || y >= s.buf.rows {
		return Cell{}
	}
	return s.buf.cells[y*s.buf.cols+x]
}

// Flush copies the cell grid to a tcell screen and shows it
func (s *CellSurface) Flush(screen tcell.Screen) {
	for y := 0; y < s.buf.rows; y++ {
		for x := 0; x < s.buf.cols; x++ {
			c := s.buf.cells[y*s.buf.cols+x]
			style := tcell.StyleDefault.
				Foreground(tcellColor(c.FG)).
				Background(tcellColor(c.BG))
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
	screen.Show()
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (s *CellSurface) Bounds() image.Rectangle { return s.clip }

func (s *CellSurface) Fill(c color.Color) {
	b := s.clip
	s.FillRect(float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), float64(b.Dy()), c)
}

// FillRect paints every cell whose center lies inside the rectangle
func (s *CellSurface) FillRect(x, y, w, h float64, c color.Color) {
	s.eachCell(func(col, row int, cx, cy float64) {
		if cx >= x && cx < x+w && cy >= y && cy < y+h {
			s.blendBG(col, row, c)
		}
	})
}

func (s *CellSurface) StrokeRect(x, y, w, h, width float64, c color.Color) {
	// one cell is the thinnest border a terminal can show
	t := math.Max(width, CellWidth)
	s.FillRect(x, y, w, t, c)
	s.FillRect(x, y+h-t, w, t, c)
	s.FillRect(x, y, t, h, c)
	s.FillRect(x+w-t, y, t, h, c)
}

func (s *CellSurface) FillCircle(cx, cy, r float64, c color.Color) {
	s.eachCell(func(col, row int, px, py float64) {
		dx, dy := px-cx, py-cy
		if dx*dx+dy*dy <= r*r {
			s.blendBG(col, row, c)
		}
	})
	// small circles still mark their cell
	s.blendBG(int(cx)/CellWidth, int(cy)/CellHeight, c)
}

// Line steps through the cells between the end points and marks each one
func (s *CellSurface) Line(x1, y1, x2, y2, width float64, c color.Color) {
	c1, r1 := int(x1)/CellWidth, int(y1)/CellHeight
	c2, r2 := int(x2)/CellWidth, int(y2)/CellHeight
	steps := max(abs(c2-c1), abs(r2-r1))
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		col := c1 + int(math.Round(float64(c2-c1)*t))
		row := r1 + int(math.Round(float64(r2-r1)*t))
		s.setRune(col, row, lineRune(c2-c1, r2-r1), c)
	}
}

func (s *CellSurface) Text(str string, x, y int, c color.Color) {
	col, row := x/CellWidth, y/CellHeight
	for i, r := range []rune(str) {
		s.setRune(col+i, row, r, c)
	}
}

func (s *CellSurface) Sub(r image.Rectangle) Surface {
	return &CellSurface{buf: s.buf, clip: r.Intersect(s.clip)}
}

func (s *CellSurface) eachCell(fn func(col, row int, cx, cy float64)) {
	minCol, minRow := s.clip.Min.X/CellWidth, s.clip.Min.Y/CellHeight
	maxCol := min(s.buf.cols, (s.clip.Max.X+CellWidth-1)/CellWidth)
	maxRow := min(s.buf.rows, (s.clip.Max.Y+CellHeight-1)/CellHeight)
	for row := max(minRow, 0); row < maxRow; row++ {
		for col := max(minCol, 0); col < maxCol; col++ {
			fn(col, row, float64(col*CellWidth)+CellWidth/2, float64(row*CellHeight)+CellHeight/2)
		}
	}
}

func (s *CellSurface) inClip(col, row int) bool {
	if col < 0 || row < 0 || col >= s.buf.cols || row >= s.buf.rows {
		return false
	}
	return image.Pt(col*CellWidth+CellWidth/2, row*CellHeight+CellHeight/2).In(s.clip)
}

func (s *CellSurface) blendBG(col, row int, c color.Color) {
	if !s.inClip(col, row) {
		return
	}
	cell := &s.buf.cells[row*s.buf.cols+col]
	cell.BG = over(cell.BG, c)
	cell.FG = over(cell.FG, c)
	// an opaque fill covers whatever text was there
	if color.NRGBAModel.Convert(c).(color.NRGBA).A == 255 {
		cell.Rune = ' '
	}
}

func (s *CellSurface) setRune(col, row int, r rune, c color.Color) {
	if !s.inClip(col, row) {
		return
	}
	cell := &s.buf.cells[row*s.buf.cols+col]
	cell.Rune = r
	cell.FG = over(cell.BG, c)
}

// over composites src onto an opaque dst
func over(dst color.RGBA, src color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(src).(color.NRGBA)
	a := float64(n.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(s)*a + float64(d)*(1-a)))
	}
	return color.RGBA{mix(dst.R, n.R), mix(dst.G, n.G), mix(dst.B, n.B), 255}
}

func lineRune(dc, dr int) rune {
	switch {
	case dc == 0:
		return '|'
	case dr == 0:
		return '-'
	case (dc > 0) == (dr > 0):
		return '\\'
	default:
		return '/'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
