package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper-boards/internal/mines"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	generateParams mines.GameParams
	generateSeed   uint64
	generateFormat string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a randomly generated board",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		layout, err := newGenerator(generateSeed).Generate(generateParams)
		if err != nil {
			return err
		}
		return writeLayout(cmd.OutOrStdout(), layout, generateFormat)
	},
}

func init() {
	paramFlags(generateCmd, &generateParams)
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "Random seed; 0 picks one")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", formatText, "Output format: text, json or yaml")
}

func writeLayout(w io.Writer, layout mines.Layout, format string) error {
	switch format {
	case formatText:
		_, err := fmt.Fprintln(w, layout.String())
		return err
	case formatJSON:
		enc := json.NewEncoder(w)
		return enc.Encode(layout)
	case formatYAML:
		out, err := mines.NewSnapshot(layout).Serialize()
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
