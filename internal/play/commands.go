package play

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-boards/internal/mines"
)

const (
	Open  = "o"
	Flag  = "f"
	Chord = "c"
	Reset = "n"
	Stats = "s"
	View  = "v"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	Open:  2,
	Flag:  2,
	Chord: 2,
	Reset: 0,
	Stats: 0,
	View:  0,
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("invalid number of arguments")
)

type Response struct {
	Command string              `json:"command"`
	Success bool                `json:"success"`
	Reason  string              `json:"reason,omitempty"`
	Reveal  *mines.RevealResult `json:"reveal,omitempty"`
	Flag    *mines.ToggleResult `json:"flag,omitempty"`
	Chord   *mines.ChordResult  `json:"chord,omitempty"`
	Stats   mines.Stats         `json:"stats"`
	View    []string            `json:"view,omitempty"`
}

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("row must be an int")
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("col must be an int")
		return
	}
	return
}

func reason(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Execute runs one command against g. A malformed command is an error;
// a move the engine refuses is reported in the response.
func Execute(g *mines.Engine, c string) (*Response, error) {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return nil, ErrUnknownCommand
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, parts[0])
	}
	if nargs != len(parts)-1 {
		return nil, fmt.Errorf("%w: %q takes %d", ErrBadArguments, parts[0], nargs)
	}

	resp := &Response{Command: c, Success: true}
	var row, col int
	if nargs == 2 {
		var err error
		if row, col, err = parseRowCol(parts[1:]); err != nil {
			return nil, err
		}
	}

	switch parts[0] {
	case Open:
		r := g.Reveal(row, col)
		resp.Reveal, resp.Success, resp.Reason = &r, r.Success, reason(r.Reason)
	case Flag:
		r := g.ToggleFlag(row, col)
		resp.Flag, resp.Success, resp.Reason = &r, r.Success, reason(r.Reason)
	case Chord:
		r := g.Chord(row, col)
		resp.Chord, resp.Success, resp.Reason = &r, r.Success, reason(r.Reason)
	case Reset:
		g.Reset()
	case View:
		resp.View = strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	}
	resp.Stats = g.Stats()

	return resp, nil
}

// ExecuteAll runs newline-separated commands in order, stopping at the
// first malformed one.
func ExecuteAll(g *mines.Engine, text string) ([]*Response, error) {
	responses := make([]*Response, 0)
	for _, c := range byPiece(strings.TrimSpace(text), "\n") {
		if strings.TrimSpace(c) == "" {
			continue
		}
		resp, err := Execute(g, c)
		if err != nil {
			return responses, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
