package huematch

import (
	"math"

	"github.com/vovakirdan/huematch/internal/core"
)

// World units covered by one terminal cell. Cells are about twice as tall
// as they are wide, so tiles stay square on screen.
const (
	CellWidth  = 10.0
	CellHeight = 20.0
)

// Screen rows reserved around the board.
const (
	HUDRows    = 2
	FooterRows = 1
)

// Smallest terminal that still fits a playable board.
const (
	MinCols = 40
	MinRows = 14
)

// Viewport maps terminal cells onto the world coordinates of the board.
// The board starts at row Top and leaves FooterRows free at the bottom.
type Viewport struct {
	Cols int
	Rows int
	Top  int
}

// NewViewport returns the viewport for a terminal of the given size.
func NewViewport(cols, rows int) Viewport {
	return Viewport{Cols: cols, Rows: rows, Top: HUDRows}
}

// BoardRows returns the number of rows available to the board.
func (v Viewport) BoardRows() int {
	return max(v.Rows-v.Top-FooterRows, 0)
}

// TooSmall reports whether the terminal cannot show a board.
func (v Viewport) TooSmall() bool {
	return v.Cols < MinCols || v.Rows < MinRows
}

// BoardSize returns the board size in world units.
func (v Viewport) BoardSize() (width, height float64) {
	return float64(v.Cols) * CellWidth, float64(v.BoardRows()) * CellHeight
}

// ToWorld returns the world point at the center of a cell. ok is false for
// cells outside the board.
func (v Viewport) ToWorld(col, row int) (core.Point, bool) {
	if col < 0 || col >= v.Cols || row < v.Top || row >= v.Top+v.BoardRows() {
		return core.Point{}, false
	}
	return core.Point{
		X: (float64(col) + 0.5) * CellWidth,
		Y: (float64(row-v.Top) + 0.5) * CellHeight,
	}, true
}

// ToCell returns the cell containing a world point.
func (v Viewport) ToCell(p core.Point) (col, row int) {
	return int(math.Floor(p.X / CellWidth)), v.Top + int(math.Floor(p.Y/CellHeight))
}

// CellRect returns the cells whose centers fall inside r, so a click on any
// of them lands on r.
func (v Viewport) CellRect(r core.Rect) (col, row, w, h int) {
	col = int(math.Ceil(r.X/CellWidth - 0.5))
	right := int(math.Ceil(r.Right()/CellWidth - 0.5))
	top := int(math.Ceil(r.Y/CellHeight - 0.5))
	bottom := int(math.Ceil(r.Bottom()/CellHeight - 0.5))

	maxRow := v.BoardRows()
	col = core.Clamp(col, 0, v.Cols)
	right = core.Clamp(right, col, v.Cols)
	top = core.Clamp(top, 0, maxRow)
	bottom = core.Clamp(bottom, top, maxRow)
	return col, v.Top + top, right - col, bottom - top
}
