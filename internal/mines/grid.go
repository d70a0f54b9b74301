package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

type CellStatus uint8

const (
	Hidden CellStatus = iota
	Revealed
	Flagged
)

func (s CellStatus) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "unknown"
	}
}

type Cell struct {
	IsMine        bool
	Status        CellStatus
	AdjacentMines int
}

// CellState is what a player is shown for one cell.
type CellState int8

const (
	Unknown      CellState = -2
	Flag         CellState = -1
	ExplodedMine CellState = 65
	WonMine      CellState = 66
	LostMine     CellState = 67
	// 0-8 for an opened cell with given number of mined neighbors
)

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return "#"
	case s == Flag:
		return "F"
	case s == ExplodedMine:
		return "X"
	case s == WonMine, s == LostMine:
		return "*"
	case s == 0:
		return "."
	case 0 < s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Grid is the player's view of a board, row-major.
type Grid []CellState

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(g[y*width+x].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
