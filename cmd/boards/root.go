package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper-boards/internal/config"
	"github.com/vancomm/minesweeper-boards/internal/mines"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "boards",
	Short: "Generate, store and play Minesweeper boards",
	Long: `boards generates Minesweeper boards, keeps them in Postgres and lets
clients play them over a websocket.

Serve the HTTP API (migrations are applied on start)
	boards serve

Print a random 9x9 board with 10 mines
	boards generate -w 9 -h 9 -m 10

Play a saved board from stdin
	echo "o 0 0" | boards play --snapshot board.yaml
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := config.NewLogger()
		if err != nil {
			return err
		}
		log = logger
		mines.Log.SetLevel(logger.GetLevel())
		mines.Log.SetFormatter(logger.Formatter)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, generateCmd, playCmd)
}

// paramFlags registers the board size flags. The help flag loses its
// shorthand so that -h can mean height.
func paramFlags(cmd *cobra.Command, p *mines.GameParams) {
	cmd.Flags().Bool("help", false, "Help for "+cmd.Name())
	cmd.Flags().IntVarP(&p.Width, "width", "w", 9, "Width of the board, in cells")
	cmd.Flags().IntVarP(&p.Height, "height", "h", 9, "Height of the board, in cells")
	cmd.Flags().IntVarP(&p.MineCount, "mines", "m", 10, "Number of mines to place on the board")
}

func newGenerator(seed uint64) *mines.Generator {
	if seed == 0 {
		return mines.NewGenerator(nil)
	}
	return mines.NewGenerator(mines.NewSeededRand(seed))
}
