package handlers

import (
	"fmt"
	"math"
	"net/mail"
	"strings"
)

// Creation limits enforced on top of what the engine itself accepts.
const (
	MaxDimension = 50
	MinMines     = 1
)

type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
	Expert       Difficulty = "expert"
)

// MinePercentage is the share of mined cells, rounded to two decimals.
func MinePercentage(width, height, mineCount int) float64 {
	total := width * height
	if total <= 0 {
		return 0
	}
	return math.Round(float64(mineCount)/float64(total)*100*100) / 100
}

func DifficultyOf(percentage float64) Difficulty {
	switch {
	case percentage <= 10:
		return Beginner
	case percentage <= 20:
		return Intermediate
	case percentage <= 30:
		return Advanced
	default:
		return Expert
	}
}

func (dto CreateBoardDTO) Validate() []string {
	problems := make([]string, 0)

	if strings.TrimSpace(dto.Name) == "" {
		problems = append(problems, "Name can't be blank")
	}
	if strings.TrimSpace(dto.Email) == "" {
		problems = append(problems, "Email can't be blank")
	} else if addr, err := mail.ParseAddress(dto.Email); err != nil || addr.Address != dto.Email {
		problems = append(problems, "Email is invalid")
	}

	widthOK, heightOK := dto.Width > 0, dto.Height > 0
	if !widthOK {
		problems = append(problems, "Width must be greater than 0")
	}
	if !heightOK {
		problems = append(problems, "Height must be greater than 0")
	}
	if widthOK && heightOK && (dto.Width > MaxDimension || dto.Height > MaxDimension) {
		problems = append(problems, fmt.Sprintf(
			"Board dimensions too large (max %dx%d)", MaxDimension, MaxDimension,
		))
	}

	if dto.MinesCount < MinMines {
		problems = append(problems, "Mine count must be greater than 0")
	} else if widthOK && heightOK {
		if maxMines := dto.Width*dto.Height - 1; dto.MinesCount > maxMines {
			problems = append(problems, fmt.Sprintf("Mine count cannot exceed %d", maxMines))
		}
	}

	return problems
}
