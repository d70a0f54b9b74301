package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) CellCount() int {
	return p.Width * p.Height
}

// Validate reports ErrInvalidConfiguration unless the board has positive
// dimensions and at least one safe cell.
func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return invalidConfig("dimensions must be positive, got %dx%d", p.Width, p.Height)
	}
	if p.MineCount < 0 {
		return invalidConfig("mine count must not be negative, got %d", p.MineCount)
	}
	if p.MineCount >= p.CellCount() {
		return invalidConfig(
			"mine count must be less than %d, got %d", p.CellCount(), p.MineCount,
		)
	}
	return nil
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}

func (p GameParams) PointInBounds(row, col int) bool {
	return 0 <= row && row < p.Height && 0 <= col && col < p.Width
}
