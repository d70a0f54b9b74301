package mines

import (
	"fmt"
	"time"
)

type Status uint8

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	switch string(b) {
	case "playing":
		*s = Playing
	case "won":
		*s = Won
	case "lost":
		*s = Lost
	default:
		return fmt.Errorf("unknown game status %q", b)
	}
	return nil
}

func (s Status) Terminal() bool {
	return s == Won || s == Lost
}

// GameState tracks progress of one game. Won and Lost are terminal: nothing
// but reset moves the state out of them.
type GameState struct {
	Status        Status
	RevealedCount int
	FlaggedCount  int
	StartTime     time.Time
	EndTime       time.Time

	mineCount int
	now       func() time.Time
}

func newGameState(mineCount int, now func() time.Time) *GameState {
	if now == nil {
		now = time.Now
	}
	s := &GameState{mineCount: mineCount, now: now}
	s.reset()
	return s
}

func (s *GameState) reset() {
	s.Status = Playing
	s.RevealedCount = 0
	s.FlaggedCount = 0
	s.StartTime = s.now()
	s.EndTime = time.Time{}
}

func (s *GameState) Playing() bool {
	return s.Status == Playing
}

func (s *GameState) win() {
	s.end(Won)
}

func (s *GameState) lose() {
	s.end(Lost)
}

func (s *GameState) end(status Status) {
	if s.Status.Terminal() {
		return
	}
	s.Status = status
	s.EndTime = s.now()
}

func (s *GameState) RemainingMines() int {
	return max(0, s.mineCount-s.FlaggedCount)
}

// Duration counts whole seconds, up to the end of the game if it is over.
func (s *GameState) Duration() int {
	end := s.EndTime
	if !s.Status.Terminal() {
		end = s.now()
	}
	return int(end.Sub(s.StartTime) / time.Second)
}

type Stats struct {
	Status          Status `json:"status"`
	RevealedCount   int    `json:"revealed_count"`
	FlaggedMines    int    `json:"flagged_mines"`
	RemainingMines  int    `json:"remaining_mines"`
	DurationSeconds int    `json:"duration_seconds"`
}

func (s *GameState) Stats() Stats {
	return Stats{
		Status:          s.Status,
		RevealedCount:   s.RevealedCount,
		FlaggedMines:    s.FlaggedCount,
		RemainingMines:  s.RemainingMines(),
		DurationSeconds: s.Duration(),
	}
}
