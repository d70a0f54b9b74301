package mines

// Board is the mutable grid behind one game. Mine placement and adjacency
// counts are fixed at construction; only cell statuses change afterwards.
type Board struct {
	GameParams
	cells []Cell
}

func NewBoard(layout Layout) (*Board, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		GameParams: layout.Params(),
		cells:      make([]Cell, layout.Width()*layout.Height()),
	}
	for row, cells := range layout {
		for col, cell := range cells {
			b.cells[b.index(row, col)].IsMine = cell.Mine
		}
	}
	b.countAdjacentMines()
	return b, nil
}

func (b *Board) index(row, col int) int {
	return row*b.Width + col
}

func (b *Board) countAdjacentMines() {
	for row := range b.Height {
		for col := range b.Width {
			cell := &b.cells[b.index(row, col)]
			if cell.IsMine {
				continue
			}
			for _, n := range b.Neighbors(Point{row, col}) {
				if b.cells[b.index(n.Row, n.Col)].IsMine {
					cell.AdjacentMines++
				}
			}
		}
	}
}

func (b *Board) InBounds(row, col int) bool {
	return b.PointInBounds(row, col)
}

// CellAt returns the cell at row, col, or false when it is off the grid.
func (b *Board) CellAt(row, col int) (*Cell, bool) {
	if !b.InBounds(row, col) {
		return nil, false
	}
	return &b.cells[b.index(row, col)], true
}

func (b *Board) cellAt(p Point) *Cell {
	return &b.cells[b.index(p.Row, p.Col)]
}

// Neighbors lists the up to 8 in-bounds cells around p.
func (b *Board) Neighbors(p Point) []Point {
	points := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if b.InBounds(p.Row+dy, p.Col+dx) {
				points = append(points, Point{p.Row + dy, p.Col + dx})
			}
		}
	}
	return points
}

func (b *Board) MinePositions() []Point {
	points := make([]Point, 0, b.MineCount)
	for i, cell := range b.cells {
		if cell.IsMine {
			points = append(points, Point{i / b.Width, i % b.Width})
		}
	}
	return points
}

func (b *Board) SafeCount() int {
	return b.CellCount() - b.MineCount
}

func (b *Board) Layout() Layout {
	layout := NewLayout(b.Width, b.Height)
	for i, cell := range b.cells {
		layout[i/b.Width][i%b.Width].Mine = cell.IsMine
	}
	return layout
}

func (b *Board) hideAll() {
	for i := range b.cells {
		b.cells[i].Status = Hidden
	}
}

func (b *Board) String() string {
	return b.view(Playing, nil).ToString(b.Width)
}

// view renders the player-visible grid. Once the game is over every mine is
// shown, the detonated one distinctly.
func (b *Board) view(status Status, detonated *Point) Grid {
	grid := make(Grid, len(b.cells))
	for i, cell := range b.cells {
		switch {
		case detonated != nil && i == b.index(detonated.Row, detonated.Col):
			grid[i] = ExplodedMine
		case cell.IsMine && status == Won:
			grid[i] = WonMine
		case cell.IsMine && status == Lost && cell.Status != Flagged:
			grid[i] = LostMine
		case cell.Status == Flagged:
			grid[i] = Flag
		case cell.Status == Revealed:
			grid[i] = CellState(cell.AdjacentMines)
		default:
			grid[i] = Unknown
		}
	}
	return grid
}
