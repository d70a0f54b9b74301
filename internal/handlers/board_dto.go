package handlers

import (
	"fmt"
	"time"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-boards/internal/mines"
	"github.com/vancomm/minesweeper-boards/internal/repository"
)

type CreateBoardDTO struct {
	Name       string `schema:"name"`
	Email      string `schema:"email"`
	Width      int    `schema:"width,required"`
	Height     int    `schema:"height,required"`
	MinesCount int    `schema:"mines_count,required"`
}

func ParseCreateBoardDTO(src map[string][]string) (CreateBoardDTO, error) {
	var dto CreateBoardDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

func (dto CreateBoardDTO) Params() mines.GameParams {
	return mines.GameParams{Width: dto.Width, Height: dto.Height, MineCount: dto.MinesCount}
}

type DimensionsDTO struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	TotalCells int `json:"total_cells"`
	MaxMines   int `json:"max_mines"`
}

type MinesDTO struct {
	Count      int        `json:"count"`
	MaxAllowed int        `json:"max_allowed"`
	Percentage float64    `json:"percentage"`
	Difficulty Difficulty `json:"difficulty"`
}

type LinksDTO struct {
	Self string `json:"self"`
	Play string `json:"play"`
}

type BoardDTO struct {
	ID             int64         `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Dimensions     DimensionsDTO `json:"dimensions"`
	Mines          MinesDTO      `json:"mines"`
	Difficulty     Difficulty    `json:"difficulty"`
	MinePercentage float64       `json:"mine_percentage"`
	BoardData      mines.Layout  `json:"board_data"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	Links          LinksDTO      `json:"links"`
}

// NewBoardDTO renders a stored board. Undecodable board data is sent as
// null rather than failing the whole response.
func NewBoardDTO(b *repository.Board) *BoardDTO {
	total := b.Width * b.Height
	percentage := MinePercentage(b.Width, b.Height, b.MinesCount)
	difficulty := DifficultyOf(percentage)

	layout, err := b.Layout()
	if err != nil {
		layout = nil
	}

	self := fmt.Sprintf("/api/v1/boards/%d", b.BoardID)
	return &BoardDTO{
		ID:    b.BoardID,
		Name:  b.Name,
		Email: b.Email,
		Dimensions: DimensionsDTO{
			Width:      b.Width,
			Height:     b.Height,
			TotalCells: total,
			MaxMines:   total - 1,
		},
		Mines: MinesDTO{
			Count:      b.MinesCount,
			MaxAllowed: total - 1,
			Percentage: percentage,
			Difficulty: difficulty,
		},
		Difficulty:     difficulty,
		MinePercentage: percentage,
		BoardData:      layout,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
		Links: LinksDTO{
			Self: self,
			Play: self + "/play",
		},
	}
}

func NewBoardDTOs(boards []repository.Board) []*BoardDTO {
	dtos := make([]*BoardDTO, 0, len(boards))
	for i := range boards {
		dtos = append(dtos, NewBoardDTO(&boards[i]))
	}
	return dtos
}
