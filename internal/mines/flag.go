package mines

type ToggleResult struct {
	Success bool  `json:"success"`
	Reason  error `json:"-"`
	Flagged bool  `json:"flagged"`
}

// ToggleFlag marks or unmarks a hidden cell. Flags are annotations only and
// never decide the outcome of a game.
func (e *Engine) ToggleFlag(row, col int) ToggleResult {
	if !e.state.Playing() {
		return ToggleResult{Reason: ErrGameOver}
	}
	cell, ok := e.board.CellAt(row, col)
	if !ok {
		return ToggleResult{Reason: ErrOutOfBounds}
	}

	switch cell.Status {
	case Revealed:
		return ToggleResult{Reason: ErrAlreadyRevealed}
	case Flagged:
		cell.Status = Hidden
		e.state.FlaggedCount--
	default:
		cell.Status = Flagged
		e.state.FlaggedCount++
	}

	return ToggleResult{Success: true, Flagged: cell.Status == Flagged}
}
