package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevealTwoByTwo(t *testing.T) {
	e, _ := newTestEngine(t, "*.\n..")

	r := e.Reveal(1, 1)
	require.True(t, r.Success)
	assert.False(t, r.IsMine)
	require.NotNil(t, r.AdjacentMines)
	assert.Equal(t, 1, *r.AdjacentMines)
	assert.Empty(t, r.AutoRevealed)
	assert.Equal(t, Playing, r.GameStatus)
	assert.Empty(t, r.RevealedMines)

	r = e.Reveal(0, 1)
	require.True(t, r.Success)
	assert.Equal(t, Playing, r.GameStatus)

	r = e.Reveal(1, 0)
	require.True(t, r.Success)
	assert.Equal(t, Won, r.GameStatus)
	assert.Equal(t, []Point{{0, 0}}, r.RevealedMines)
	assert.Nil(t, r.Detonated)
	assert.Equal(t, 3, e.Stats().RevealedCount)
}

func TestRevealSingleCell(t *testing.T) {
	e, err := LoadEngine(GameParams{Width: 1, Height: 1, MineCount: 0}, NewLayout(1, 1))
	require.NoError(t, err)

	r := e.Reveal(0, 0)
	assert.True(t, r.Success)
	assert.Equal(t, 0, *r.AdjacentMines)
	assert.Equal(t, Won, r.GameStatus)
	assert.Empty(t, r.RevealedMines)
}

const wall = `
..*..
..*..
..*..`

func TestRevealCascade(t *testing.T) {
	e, _ := newTestEngine(t, wall)

	r := e.Reveal(0, 0)
	require.True(t, r.Success)
	assert.Equal(t, 0, *r.AdjacentMines)
	assert.ElementsMatch(t, []RevealedCell{
		{0, 1, 2},
		{1, 0, 0},
		{1, 1, 3},
		{2, 0, 0},
		{2, 1, 2},
	}, r.AutoRevealed)
	assert.Equal(t, 6, e.Stats().RevealedCount)
	assert.Equal(t, Playing, r.GameStatus)

	for _, p := range []Point{{0, 0}, {1, 0}, {2, 1}} {
		again := e.Reveal(p.Row, p.Col)
		assert.False(t, again.Success)
		assert.ErrorIs(t, again.Reason, ErrAlreadyActed)
	}
	assert.Equal(t, 6, e.Stats().RevealedCount)

	r = e.Reveal(2, 4)
	require.True(t, r.Success)
	assert.Len(t, r.AutoRevealed, 5)
	assert.Equal(t, Won, r.GameStatus)
	assert.ElementsMatch(t, []Point{{0, 2}, {1, 2}, {2, 2}}, r.RevealedMines)
	assert.Equal(t, 12, e.Stats().RevealedCount)
}

func TestRevealCascadeSkipsFlags(t *testing.T) {
	e, _ := newTestEngine(t, wall)

	require.True(t, e.ToggleFlag(2, 0).Success)

	r := e.Reveal(0, 0)
	require.True(t, r.Success)
	assert.ElementsMatch(t, []RevealedCell{
		{0, 1, 2},
		{1, 0, 0},
		{1, 1, 3},
		{2, 1, 2},
	}, r.AutoRevealed)

	cell, _ := e.Board().CellAt(2, 0)
	assert.Equal(t, Flagged, cell.Status)
	assert.Equal(t, 5, e.Stats().RevealedCount)
}

func TestRevealLargeEmptyBoard(t *testing.T) {
	const size = 400
	layout := NewLayout(size, size)
	layout[size-1][size-1].Mine = true
	e, err := LoadEngine(GameParams{Width: size, Height: size, MineCount: 1}, layout)
	require.NoError(t, err)

	r := e.Reveal(0, 0)
	require.True(t, r.Success)
	assert.Len(t, r.AutoRevealed, size*size-2)
	assert.Equal(t, Won, r.GameStatus)
}

func TestRevealMine(t *testing.T) {
	e, _ := newTestEngine(t, "*..\n...\n..*")

	require.True(t, e.Reveal(0, 1).Success)
	require.True(t, e.ToggleFlag(1, 1).Success)

	r := e.Reveal(0, 0)
	require.True(t, r.Success)
	assert.True(t, r.IsMine)
	assert.Nil(t, r.AdjacentMines)
	assert.Equal(t, Lost, r.GameStatus)
	assert.Equal(t, &Point{0, 0}, r.Detonated)
	assert.Equal(t, []Point{{2, 2}}, r.RevealedMines)

	other, _ := e.Board().CellAt(2, 2)
	assert.Equal(t, Hidden, other.Status)

	before := e.Stats()
	assert.Equal(t, 2, before.RevealedCount)

	r = e.Reveal(2, 0)
	assert.False(t, r.Success)
	assert.ErrorIs(t, r.Reason, ErrGameOver)
	assert.Equal(t, Lost, r.GameStatus)

	f := e.ToggleFlag(2, 1)
	assert.False(t, f.Success)
	assert.ErrorIs(t, f.Reason, ErrGameOver)

	c := e.Chord(0, 1)
	assert.False(t, c.Success)
	assert.ErrorIs(t, c.Reason, ErrGameOver)

	after := e.Stats()
	assert.Equal(t, before.RevealedCount, after.RevealedCount)
	assert.Equal(t, before.FlaggedMines, after.FlaggedMines)
}

func TestRevealOutOfBounds(t *testing.T) {
	e, _ := newTestEngine(t, "*.\n..")

	for _, p := range []Point{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		r := e.Reveal(p.Row, p.Col)
		assert.False(t, r.Success)
		assert.ErrorIs(t, r.Reason, ErrOutOfBounds)
	}
	assert.Equal(t, Stats{Status: Playing, RemainingMines: 1}, e.Stats())
}

func TestWinNeverEarly(t *testing.T) {
	gen := NewGenerator(NewSeededRand(11))
	params := GameParams{Width: 8, Height: 6, MineCount: 9}

	for range 10 {
		e, err := NewEngine(params, gen)
		require.NoError(t, err)
		board := e.Board()

		for row := range params.Height {
			for col := range params.Width {
				if cell, _ := board.CellAt(row, col); cell.IsMine {
					require.True(t, e.ToggleFlag(row, col).Success)
				}
			}
		}
		require.Equal(t, Playing, e.Status(), "flags alone never win")

		for row := range params.Height {
			for col := range params.Width {
				cell, _ := board.CellAt(row, col)
				if cell.Status != Hidden {
					continue
				}
				assert.Equal(t, Playing, e.Status())
				require.True(t, e.Reveal(row, col).Success)
			}
		}
		assert.Equal(t, Won, e.Status())
		assert.Equal(t, params.CellCount()-params.MineCount, e.Stats().RevealedCount)
	}
}

func TestChord(t *testing.T) {
	e, _ := newTestEngine(t, "*.\n..")

	require.True(t, e.Reveal(1, 1).Success)

	c := e.Chord(1, 1)
	assert.False(t, c.Success)
	assert.ErrorIs(t, c.Reason, ErrNotChordable)

	c = e.Chord(0, 1)
	assert.ErrorIs(t, c.Reason, ErrNotChordable, "hidden cells cannot be chorded")

	require.True(t, e.ToggleFlag(0, 0).Success)
	c = e.Chord(1, 1)
	require.True(t, c.Success)
	assert.False(t, c.IsMine)
	assert.ElementsMatch(t, []RevealedCell{{0, 1, 1}, {1, 0, 1}}, c.Revealed)
	assert.Equal(t, Won, c.GameStatus)
	assert.Equal(t, []Point{{0, 0}}, c.RevealedMines)
}

func TestChordWrongFlag(t *testing.T) {
	e, _ := newTestEngine(t, "*.\n..")

	require.True(t, e.Reveal(1, 1).Success)
	require.True(t, e.ToggleFlag(0, 1).Success)

	c := e.Chord(1, 1)
	require.True(t, c.Success)
	assert.True(t, c.IsMine)
	assert.Equal(t, &Point{0, 0}, c.Detonated)
	assert.Equal(t, Lost, c.GameStatus)
	assert.Empty(t, c.Revealed)

	c = e.Chord(5, 5)
	assert.ErrorIs(t, c.Reason, ErrGameOver)
}
