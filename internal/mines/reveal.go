package mines

import "github.com/gammazero/deque"

type RevealedCell struct {
	Row           int `json:"row"`
	Col           int `json:"col"`
	AdjacentMines int `json:"adjacent_mines"`
}

type RevealResult struct {
	Success       bool           `json:"success"`
	Reason        error          `json:"-"`
	IsMine        bool           `json:"is_mine"`
	AdjacentMines *int           `json:"adjacent_mines,omitempty"`
	AutoRevealed  []RevealedCell `json:"auto_revealed"`
	GameStatus    Status         `json:"game_status"`
	Detonated     *Point         `json:"detonated,omitempty"`
	RevealedMines []Point        `json:"revealed_mines,omitempty"`
}

// Reveal opens one hidden cell. Opening a cell with no mined neighbors
// cascades through the connected empty region and its numbered border.
func (e *Engine) Reveal(row, col int) RevealResult {
	if !e.state.Playing() {
		return RevealResult{Reason: ErrGameOver, GameStatus: e.state.Status}
	}
	cell, ok := e.board.CellAt(row, col)
	if !ok {
		return RevealResult{Reason: ErrOutOfBounds, GameStatus: e.state.Status}
	}
	if cell.Status != Hidden {
		return RevealResult{Reason: ErrAlreadyActed, GameStatus: e.state.Status}
	}
	return e.open(Point{row, col})
}

// open reveals a hidden cell known to be in bounds.
func (e *Engine) open(p Point) RevealResult {
	cell := e.board.cellAt(p)
	cell.Status = Revealed
	e.state.RevealedCount++

	if cell.IsMine {
		e.state.lose()
		e.detonated = &p
		mines := make([]Point, 0, e.board.MineCount)
		for _, m := range e.board.MinePositions() {
			if m != p {
				mines = append(mines, m)
			}
		}
		Log.WithField("cell", p).Debug("mine detonated")
		return RevealResult{
			Success:       true,
			IsMine:        true,
			AutoRevealed:  []RevealedCell{},
			GameStatus:    e.state.Status,
			Detonated:     &p,
			RevealedMines: mines,
		}
	}

	adjacent := cell.AdjacentMines
	result := RevealResult{
		Success:       true,
		AdjacentMines: &adjacent,
		AutoRevealed:  []RevealedCell{},
	}
	if adjacent == 0 {
		result.AutoRevealed = e.cascade(p)
	}

	if e.state.RevealedCount == e.board.SafeCount() {
		e.state.win()
		result.RevealedMines = e.board.MinePositions()
	}
	result.GameStatus = e.state.Status
	return result
}

// cascade walks outward from an empty cell with an explicit queue, so the
// depth of the walk never depends on the size of the board.
func (e *Engine) cascade(start Point) []RevealedCell {
	revealed := make([]RevealedCell, 0)

	var todo deque.Deque[Point]
	todo.PushBack(start)

	for todo.Len() > 0 {
		p := todo.PopFront()
		for _, n := range e.board.Neighbors(p) {
			cell := e.board.cellAt(n)
			if cell.Status != Hidden || cell.IsMine {
				continue
			}
			cell.Status = Revealed
			e.state.RevealedCount++
			revealed = append(revealed, RevealedCell{n.Row, n.Col, cell.AdjacentMines})
			if cell.AdjacentMines == 0 {
				todo.PushBack(n)
			}
		}
	}

	return revealed
}

type ChordResult struct {
	Success       bool           `json:"success"`
	Reason        error          `json:"-"`
	IsMine        bool           `json:"is_mine"`
	Revealed      []RevealedCell `json:"revealed"`
	GameStatus    Status         `json:"game_status"`
	Detonated     *Point         `json:"detonated,omitempty"`
	RevealedMines []Point        `json:"revealed_mines,omitempty"`
}

// Chord opens every hidden neighbor of a revealed number once the player
// has flagged as many neighbors as the number says.
func (e *Engine) Chord(row, col int) ChordResult {
	if !e.state.Playing() {
		return ChordResult{Reason: ErrGameOver, GameStatus: e.state.Status}
	}
	cell, ok := e.board.CellAt(row, col)
	if !ok {
		return ChordResult{Reason: ErrOutOfBounds, GameStatus: e.state.Status}
	}
	if cell.Status != Revealed {
		return ChordResult{Reason: ErrNotChordable, GameStatus: e.state.Status}
	}

	flags := 0
	hidden := make([]Point, 0, 8)
	for _, n := range e.board.Neighbors(Point{row, col}) {
		switch e.board.cellAt(n).Status {
		case Flagged:
			flags++
		case Hidden:
			hidden = append(hidden, n)
		}
	}
	if flags != cell.AdjacentMines {
		return ChordResult{Reason: ErrNotChordable, GameStatus: e.state.Status}
	}

	result := ChordResult{Success: true, Revealed: []RevealedCell{}}
	for _, n := range hidden {
		// an earlier cascade in this chord may already have opened n
		if e.board.cellAt(n).Status != Hidden {
			continue
		}
		r := e.open(n)
		if r.IsMine {
			result.IsMine = true
			result.Detonated = r.Detonated
		} else {
			result.Revealed = append(result.Revealed, RevealedCell{n.Row, n.Col, *r.AdjacentMines})
		}
		result.Revealed = append(result.Revealed, r.AutoRevealed...)
		result.RevealedMines = r.RevealedMines
		if !e.state.Playing() {
			break
		}
	}
	result.GameStatus = e.state.Status
	return result
}
