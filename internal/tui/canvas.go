package tui

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/loadbutton/internal/paint"
)

// Arc glyphs by quarter of sweep
var arcGlyphs = []string{"◔", "◑", "◕", "●"}

// Cell is one character position of the grid.
type Cell struct {
	Text string // empty for a blank cell
	FG   string // "#RRGGBB" or empty
	BG   string // "#RRGGBB" or empty
}

// CellCanvas is a paint.Canvas over a grid of terminal cells. One unit is one
// column horizontally and one row vertically.
type CellCanvas struct {
	width  int
	height int
	cells  []Cell
}

// NewCellCanvas creates a blank grid
func NewCellCanvas(width, height int) *CellCanvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &CellCanvas{width: width, height: height, cells: make([]Cell, width*height)}
}

// Size returns the grid dimensions
func (c *CellCanvas) Size() (int, int) {
	return c.width, c.height
}

// At returns the cell at column x, row y
func (c *CellCanvas) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return Cell{}
	}
	return c.cells[y*c.width+x]
}

// MeasureText implements paint.TextMeasurer. Text occupies a single row.
func (c *CellCanvas) MeasureText(text string, size float32) paint.TextMetrics {
	return paint.TextMetrics{
		Width:   float32(lipgloss.Width(text)),
		Ascent:  size,
		Descent: 0,
	}
}

// DrawRect implements paint.Canvas
func (c *CellCanvas) DrawRect(rect paint.Rect, col color.Color) {
	bg := hexColor(col)
	x0, x1 := round(rect.Left), round(rect.Right)
	y0, y1 := round(rect.Top), round(rect.Bottom)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if cell := c.cell(x, y); cell != nil {
				cell.BG = bg
			}
		}
	}
}

// DrawText implements paint.Canvas
func (c *CellCanvas) DrawText(text string, origin paint.Point, size float32, col color.Color) {
	fg := hexColor(col)
	y := int(math.Floor(float64(origin.Y - size)))
	x := round(origin.X)
	for _, r := range text {
		s := string(r)
		if cell := c.cell(x, y); cell != nil {
			cell.Text = s
			cell.FG = fg
		}
		x += lipgloss.Width(s)
	}
}

// DrawArc implements paint.Canvas. The pie is drawn as one glyph filling by
// quarters.
func (c *CellCanvas) DrawArc(bounds paint.Rect, _, sweepDeg float32, col color.Color) {
	glyph := arcGlyph(sweepDeg)
	if glyph == "" {
		return
	}
	center := bounds.Center()
	if cell := c.cell(round(bounds.Left), int(math.Floor(float64(center.Y)))); cell != nil {
		cell.Text = glyph
		cell.FG = hexColor(col)
	}
}

// String renders the grid with lipgloss, one line per row
func (c *CellCanvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		var run strings.Builder
		runStyle := Cell{}
		flush := func() {
			if run.Len() == 0 {
				return
			}
			sb.WriteString(cellStyle(runStyle).Render(run.String()))
			run.Reset()
		}
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			style := Cell{FG: cell.FG, BG: cell.BG}
			if style != runStyle {
				flush()
				runStyle = style
			}
			if cell.Text == "" {
				run.WriteByte(' ')
			} else {
				run.WriteString(cell.Text)
			}
		}
		flush()
	}
	return sb.String()
}

func (c *CellCanvas) cell(x, y int) *Cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return nil
	}
	return &c.cells[y*c.width+x]
}

func cellStyle(cell Cell) lipgloss.Style {
	style := lipgloss.NewStyle()
	if cell.FG != "" {
		style = style.Foreground(lipgloss.Color(cell.FG))
	}
	if cell.BG != "" {
		style = style.Background(lipgloss.Color(cell.BG))
	}
	return style
}

func arcGlyph(sweepDeg float32) string {
	if !(sweepDeg > 0) {
		return ""
	}
	i := int(math.Ceil(float64(sweepDeg)/90)) - 1
	if i >= len(arcGlyphs) {
		i = len(arcGlyphs) - 1
	}
	return arcGlyphs[i]
}

func hexColor(col color.Color) string {
	if col == nil {
		return ""
	}
	c := color.NRGBAModel.Convert(col).(color.NRGBA)
	if c.A == 0 {
		return ""
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}
