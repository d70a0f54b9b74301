package mines

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestEngine(t *testing.T, layout string) (*Engine, *fakeClock) {
	t.Helper()
	board, err := NewBoard(mustParseLayout(t, layout))
	require.NoError(t, err)
	clock := newFakeClock()
	return newEngine(board, clock.Now), clock
}

func TestNewEngine(t *testing.T) {
	params := GameParams{Width: 9, Height: 9, MineCount: 10}
	e, err := NewEngine(params, NewGenerator(NewSeededRand(1)))
	require.NoError(t, err)

	assert.Equal(t, params, e.Params())
	assert.Equal(t, 10, e.Layout().MineCount())
	assert.Equal(t, Playing, e.Status())

	_, err = NewEngine(GameParams{Width: 2, Height: 2, MineCount: 4}, NewGenerator(nil))
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestLoadEngineKeepsLayout(t *testing.T) {
	layout := mustParseLayout(t, "*..\n...\n..*")
	e, err := LoadEngine(GameParams{Width: 3, Height: 3, MineCount: 2}, layout)
	require.NoError(t, err)
	assert.Equal(t, layout, e.Layout())
}

func TestLoadEngineMismatch(t *testing.T) {
	layout := mustParseLayout(t, "*..\n...\n..*")
	tests := []struct {
		name   string
		params GameParams
	}{
		{name: "mine count", params: GameParams{Width: 3, Height: 3, MineCount: 1}},
		{name: "width", params: GameParams{Width: 4, Height: 3, MineCount: 2}},
		{name: "height", params: GameParams{Width: 3, Height: 2, MineCount: 2}},
		{name: "invalid params", params: GameParams{Width: 0, Height: 3, MineCount: 2}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadEngine(test.params, layout)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestReset(t *testing.T) {
	e, clock := newTestEngine(t, "*.\n..")

	e.ToggleFlag(0, 0)
	e.Reveal(0, 1)
	e.Reveal(1, 0)
	e.Reveal(1, 1)
	require.Equal(t, Won, e.Status())

	clock.Advance(time.Minute)
	e.Reset()

	assert.Equal(t, Stats{Status: Playing, RemainingMines: 1}, e.Stats())
	assert.Equal(t, clock.Now(), e.state.StartTime)
	assert.True(t, e.state.EndTime.IsZero())
	for _, state := range e.View() {
		assert.Equal(t, Unknown, state)
	}

	r := e.Reveal(1, 1)
	assert.True(t, r.Success)
	assert.Equal(t, 1, e.Stats().RevealedCount)
}

func TestView(t *testing.T) {
	e, _ := newTestEngine(t, "*..\n...\n...")

	e.ToggleFlag(0, 1)
	e.Reveal(2, 2)
	assert.Equal(t, Grid{
		Unknown, Flag, 0,
		1, 1, 0,
		0, 0, 0,
	}, e.View())

	e.ToggleFlag(0, 1)
	e.Reveal(0, 0)
	assert.Equal(t, Lost, e.Status())
	assert.Equal(t, "X # .\n1 1 .\n. . .\n", e.String())
}
