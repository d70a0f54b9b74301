package mines

import (
	"fmt"
	"strings"
)

const (
	layoutMine = '*'
	layoutSafe = '.'
)

type LayoutCell struct {
	Mine bool `json:"mine" yaml:"mine"`
}

// Layout is the authoritative mine placement of a board, row-major.
// Its JSON form is the persisted board data: [[{"mine":false},...],...].
type Layout [][]LayoutCell

func NewLayout(width, height int) Layout {
	layout := make(Layout, height)
	for row := range layout {
		layout[row] = make([]LayoutCell, width)
	}
	return layout
}

func (l Layout) Height() int {
	return len(l)
}

func (l Layout) Width() int {
	if len(l) == 0 {
		return 0
	}
	return len(l[0])
}

func (l Layout) MineCount() (count int) {
	for _, row := range l {
		for _, cell := range row {
			if cell.Mine {
				count++
			}
		}
	}
	return
}

func (l Layout) Params() GameParams {
	return GameParams{Width: l.Width(), Height: l.Height(), MineCount: l.MineCount()}
}

// Validate checks that the layout is a non-empty rectangle holding at least
// one safe cell.
func (l Layout) Validate() error {
	if l.Height() == 0 || l.Width() == 0 {
		return invalidConfig("layout is empty")
	}
	for row, cells := range l {
		if len(cells) != l.Width() {
			return invalidConfig(
				"layout row %d has %d cells, want %d", row, len(cells), l.Width(),
			)
		}
	}
	return l.Params().Validate()
}

func (l Layout) MinePositions() []Point {
	points := make([]Point, 0)
	for row, cells := range l {
		for col, cell := range cells {
			if cell.Mine {
				points = append(points, Point{row, col})
			}
		}
	}
	return points
}

// String renders the layout one row per line, '*' for mines and '.' for
// safe cells. ParseLayout reverses it.
func (l Layout) String() string {
	var b strings.Builder
	for row, cells := range l {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range cells {
			if cell.Mine {
				b.WriteByte(layoutMine)
			} else {
				b.WriteByte(layoutSafe)
			}
		}
	}
	return b.String()
}

func ParseLayout(s string) (Layout, error) {
	rows := strings.Split(strings.TrimSpace(s), "\n")
	layout := make(Layout, 0, len(rows))
	for y, row := range rows {
		row = strings.TrimSpace(row)
		cells := make([]LayoutCell, 0, len(row))
		for x, c := range row {
			switch c {
			case layoutMine:
				cells = append(cells, LayoutCell{Mine: true})
			case layoutSafe:
				cells = append(cells, LayoutCell{})
			default:
				return nil, fmt.Errorf("unexpected %q at row %d col %d", c, y, x)
			}
		}
		layout = append(layout, cells)
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return layout, nil
}
