package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/vancomm/minesweeper-boards/internal/mines"
)

type Board struct {
	BoardID    int64     `db:"board_id"`
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	Width      int       `db:"width"`
	Height     int       `db:"height"`
	MinesCount int       `db:"mines_count"`
	BoardData  string    `db:"board_data"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (b Board) Params() mines.GameParams {
	return mines.GameParams{Width: b.Width, Height: b.Height, MineCount: b.MinesCount}
}

// Layout decodes the stored mine layout.
func (b Board) Layout() (mines.Layout, error) {
	var layout mines.Layout
	if err := json.Unmarshal([]byte(b.BoardData), &layout); err != nil {
		return nil, fmt.Errorf("board %d has malformed board_data: %w", b.BoardID, err)
	}
	return layout, nil
}

type CreateBoardParams struct {
	Name   string
	Email  string
	Layout mines.Layout
}

func (q Queries) CreateBoard(ctx context.Context, params CreateBoardParams) (*Board, error) {
	data, err := json.Marshal(params.Layout)
	if err != nil {
		return nil, err
	}
	p := params.Layout.Params()

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO boards (
			name, email, width, height, mines_count, board_data
		)
		VALUES (
			@name, @email, @width, @height, @mines_count, @board_data
		)
		RETURNING *;`,
		pgx.NamedArgs{
			"name":        params.Name,
			"email":       params.Email,
			"width":       p.Width,
			"height":      p.Height,
			"mines_count": p.MineCount,
			"board_data":  string(data),
		},
	)
	board, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Board])
	if err != nil {
		return nil, translate(err)
	}
	return board, nil
}

func (q Queries) FetchBoard(ctx context.Context, boardID int64) (*Board, error) {
	rows, _ := q.db.Query(
		ctx, "SELECT * FROM boards WHERE board_id = $1", boardID,
	)
	board, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Board])
	if err != nil {
		return nil, translate(err)
	}
	return board, nil
}

func (q Queries) RecentBoards(ctx context.Context) ([]Board, error) {
	rows, err := q.db.Query(
		ctx, "SELECT * FROM boards ORDER BY created_at DESC, board_id DESC",
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Board])
}

func (q Queries) LatestBoards(ctx context.Context, limit int) ([]Board, error) {
	rows, err := q.db.Query(
		ctx,
		"SELECT * FROM boards ORDER BY created_at DESC, board_id DESC LIMIT $1",
		limit,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Board])
}

func (q Queries) CountBoards(ctx context.Context) (count int64, err error) {
	err = q.db.QueryRow(ctx, "SELECT count(*) FROM boards").Scan(&count)
	return
}
