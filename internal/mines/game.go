package mines

import (
	"fmt"
	"time"
)

// Engine plays one game on one board. It is not safe for concurrent use;
// run one Engine per game.
type Engine struct {
	board     *Board
	state     *GameState
	detonated *Point
}

// NewEngine plays a freshly generated layout.
func NewEngine(params GameParams, gen *Generator) (*Engine, error) {
	layout, err := gen.Generate(params)
	if err != nil {
		return nil, err
	}
	return LoadEngine(params, layout)
}

// LoadEngine plays a layout supplied by the caller, typically one read back
// from storage. Mines are taken as given; the layout must agree with params
// on dimensions and mine count.
func LoadEngine(params GameParams, layout Layout) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	board, err := NewBoard(layout)
	if err != nil {
		return nil, err
	}
	if board.GameParams != params {
		return nil, fmt.Errorf(
			"%w: layout %s does not match params %s",
			ErrInvalidConfiguration, board.Seed(), params.Seed(),
		)
	}
	return newEngine(board, time.Now), nil
}

func newEngine(board *Board, now func() time.Time) *Engine {
	return &Engine{
		board: board,
		state: newGameState(board.MineCount, now),
	}
}

// Reset hides every cell and starts the clock over on the same layout.
func (e *Engine) Reset() {
	e.board.hideAll()
	e.state.reset()
	e.detonated = nil
}

func (e *Engine) Stats() Stats {
	return e.state.Stats()
}

func (e *Engine) Status() Status {
	return e.state.Status
}

func (e *Engine) Params() GameParams {
	return e.board.GameParams
}

func (e *Engine) Layout() Layout {
	return e.board.Layout()
}

func (e *Engine) Board() *Board {
	return e.board
}

func (e *Engine) View() Grid {
	return e.board.view(e.state.Status, e.detonated)
}

func (e *Engine) String() string {
	return e.View().ToString(e.board.Width)
}
