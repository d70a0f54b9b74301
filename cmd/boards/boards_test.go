package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-boards/internal/mines"
	"github.com/vancomm/minesweeper-boards/internal/play"
)

func TestWriteLayout(t *testing.T) {
	layout, err := mines.ParseLayout("*.\n..\n.*")
	require.NoError(t, err)

	tests := []struct {
		format string
		want   string
	}{
		{formatText, "*.\n..\n.*\n"},
		{formatJSON, `[[{"mine":true},{"mine":false}],[{"mine":false},{"mine":false}],[{"mine":false},{"mine":true}]]` + "\n"},
	}
	for _, test := range tests {
		t.Run(test.format, func(t *testing.T) {
			var b bytes.Buffer
			require.NoError(t, writeLayout(&b, layout, test.format))
			assert.Equal(t, test.want, b.String())
		})
	}

	var b bytes.Buffer
	require.NoError(t, writeLayout(&b, layout, formatYAML))
	snapshot, err := mines.LoadSnapshot(b.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "2:3:2", snapshot.Seed)
	restored, err := snapshot.Layout()
	require.NoError(t, err)
	assert.Equal(t, layout, restored)

	assert.Error(t, writeLayout(&b, layout, "xml"))
}

func TestRunCommands(t *testing.T) {
	layout, err := mines.ParseLayout("*.\n..")
	require.NoError(t, err)
	game, err := mines.LoadEngine(layout.Params(), layout)
	require.NoError(t, err)

	in := strings.NewReader("o 1 1\nbogus\nf 0 0\no 0 1\no 1 0\n")
	var out bytes.Buffer
	require.NoError(t, runCommands(game, in, &out))

	var lines []string
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.Len(t, lines, 5)
	assert.Contains(t, lines[1], "unknown command")

	var last play.Response
	require.NoError(t, json.Unmarshal([]byte(lines[4]), &last))
	assert.Equal(t, mines.Won, last.Stats.Status)
	assert.Equal(t, 1, last.Stats.FlaggedMines)
}

func TestPlayFromSnapshot(t *testing.T) {
	layout, err := mines.ParseLayout("..*\n...")
	require.NoError(t, err)
	out, err := mines.NewSnapshot(layout).Serialize()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, out, 0o600))

	playSnapshot = path
	t.Cleanup(func() { playSnapshot = "" })

	game, err := newPlayEngine()
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 3, Height: 2, MineCount: 1}, game.Params())
	assert.Equal(t, layout, game.Layout())
}
