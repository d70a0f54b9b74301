package mines

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds          = errors.New("cell is out of bounds")
	ErrAlreadyActed         = errors.New("cell already revealed or flagged")
	ErrAlreadyRevealed      = fmt.Errorf("%w: cell already revealed", ErrAlreadyActed)
	ErrNotChordable         = errors.New("cell cannot be chorded")
	ErrGameOver             = errors.New("game is over")
	ErrInvalidConfiguration = errors.New("invalid board configuration")
)

func invalidConfig(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}
