package render

const (
	gridStartX  = 192
	gridStartY  = 96
	gridStepX   = 96
	gridStepY   = 50
	gridMaxCols = 6
)

// Point is a position on the map canvas.
type Point struct {
	X, Y int
}

// Grid places objects left to right, wrapping after gridMaxCols columns.
type Grid struct {
	col, row int
	x, y     int
}

// NewGrid returns a grid positioned at its first cell.
func NewGrid() *Grid {
	return &Grid{col: 1, row: 1, x: gridStartX, y: gridStartY}
}

// Next returns the current cell and advances to the following one.
func (g *Grid) Next() Point {
	p := Point{X: g.x, Y: g.y}
	if g.col == gridMaxCols {
		g.row++
		g.col = 1
		g.x = gridStartX
		g.y += gridStepY
	} else {
		g.col++
		g.x += gridStepX
	}
	return p
}

// Layout returns the positions of n consecutive objects.
func Layout(n int) []Point {
	g := NewGrid()
	points := make([]Point, n)
	for i := range points {
		points[i] = g.Next()
	}
	return points
}
