package mines

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutTextRoundTrip(t *testing.T) {
	gen := NewGenerator(NewSeededRand(5))
	layout, err := gen.Generate(GameParams{Width: 12, Height: 7, MineCount: 30})
	require.NoError(t, err)

	parsed, err := ParseLayout(layout.String())
	require.NoError(t, err)
	assert.Equal(t, layout, parsed)
}

func TestLayoutJSON(t *testing.T) {
	layout := mustParseLayout(t, "*.\n..")

	b, err := json.Marshal(layout)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[[{"mine":true},{"mine":false}],[{"mine":false},{"mine":false}]]`,
		string(b),
	)

	var decoded Layout
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, layout, decoded)
}

func TestParseLayoutErrors(t *testing.T) {
	for _, s := range []string{"", "..x", "..\n.", "**\n**"} {
		_, err := ParseLayout(s)
		assert.Error(t, err, "%q", s)
	}
}

func TestSeedRoundTrip(t *testing.T) {
	params := GameParams{Width: 30, Height: 16, MineCount: 99}
	assert.Equal(t, "30:16:99", params.Seed())

	parsed, err := ParseSeed(params.Seed())
	require.NoError(t, err)
	assert.Equal(t, params, *parsed)

	_, err = ParseSeed("30:16")
	assert.Error(t, err)
}

func TestSnapshot(t *testing.T) {
	layout := mustParseLayout(t, "*..\n.*.")

	b, err := NewSnapshot(layout).Serialize()
	require.NoError(t, err)

	snapshot, err := LoadSnapshot(b)
	require.NoError(t, err)
	assert.Equal(t, "3:2:2", snapshot.Seed)

	loaded, err := snapshot.Layout()
	require.NoError(t, err)
	assert.Equal(t, layout, loaded)

	snapshot.Seed = "3:2:1"
	_, err = snapshot.Layout()
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
