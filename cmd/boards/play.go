package main

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper-boards/internal/mines"
	"github.com/vancomm/minesweeper-boards/internal/play"
)

var (
	playParams   mines.GameParams
	playSeed     uint64
	playSnapshot string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a board with commands read from stdin",
	Long: `Reads one command per line and prints one JSON response per command.

	o ROW COL   reveal a cell
	f ROW COL   toggle a flag
	c ROW COL   chord a revealed number
	n           restart the same board
	s           print stats
	v           print the board`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		game, err := newPlayEngine()
		if err != nil {
			return err
		}
		log.WithField("seed", game.Params().Seed()).Debug("game started")
		return runCommands(game, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	paramFlags(playCmd, &playParams)
	playCmd.Flags().Uint64Var(&playSeed, "seed", 0, "Random seed; 0 picks one")
	playCmd.Flags().StringVarP(&playSnapshot, "snapshot", "s", "", "Play the board saved in this YAML snapshot")
}

func newPlayEngine() (*mines.Engine, error) {
	if playSnapshot == "" {
		return mines.NewEngine(playParams, newGenerator(playSeed))
	}
	in, err := os.ReadFile(playSnapshot)
	if err != nil {
		return nil, err
	}
	snapshot, err := mines.LoadSnapshot(in)
	if err != nil {
		return nil, err
	}
	layout, err := snapshot.Layout()
	if err != nil {
		return nil, err
	}
	return mines.LoadEngine(layout.Params(), layout)
}

// runCommands answers every line of r. Malformed commands are reported and
// skipped so that an interactive session survives typos.
func runCommands(game *mines.Engine, r io.Reader, w io.Writer) error {
	enc := json.NewEncoder(w)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		responses, err := play.ExecuteAll(game, scanner.Text())
		for _, resp := range responses {
			if err := enc.Encode(resp); err != nil {
				return err
			}
		}
		if err != nil {
			if err := enc.Encode(map[string]string{"error": err.Error()}); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}
