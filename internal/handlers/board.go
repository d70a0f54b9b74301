package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-boards/internal/config"
	"github.com/vancomm/minesweeper-boards/internal/mines"
	"github.com/vancomm/minesweeper-boards/internal/repository"
)

const LatestBoardsLimit = 10

type BoardStore interface {
	CreateBoard(ctx context.Context, params repository.CreateBoardParams) (*repository.Board, error)
	FetchBoard(ctx context.Context, boardID int64) (*repository.Board, error)
	RecentBoards(ctx context.Context) ([]repository.Board, error)
	LatestBoards(ctx context.Context, limit int) ([]repository.Board, error)
	CountBoards(ctx context.Context) (int64, error)
}

type BoardHandler struct {
	logger logrus.FieldLogger
	repo   BoardStore
	ws     *config.WebSocket

	genMu sync.Mutex // guards gen, whose random source is not goroutine safe
	gen   *mines.Generator
}

func NewBoardHandler(
	logger logrus.FieldLogger,
	repo BoardStore,
	ws *config.WebSocket,
	gen *mines.Generator,
) *BoardHandler {
	handler := &BoardHandler{
		logger: logger,
		repo:   repo,
		ws:     ws,
		gen:    gen,
	}

	return handler
}

func (h *BoardHandler) generate(params mines.GameParams) (mines.Layout, error) {
	h.genMu.Lock()
	defer h.genMu.Unlock()
	return h.gen.Generate(params)
}

func (h *BoardHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		sendError(w, h.logger, http.StatusBadRequest, "unable to parse form", err.Error())
		return
	}

	dto, err := ParseCreateBoardDTO(r.Form)
	if err != nil {
		sendError(w, h.logger, http.StatusUnprocessableEntity, "Failed to create board", err.Error())
		return
	}
	if problems := dto.Validate(); len(problems) > 0 {
		sendError(w, h.logger, http.StatusUnprocessableEntity, "Failed to create board", problems...)
		return
	}

	layout, err := h.generate(dto.Params())
	if errors.Is(err, mines.ErrInvalidConfiguration) {
		sendError(w, h.logger, http.StatusUnprocessableEntity, "Failed to create board", err.Error())
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to generate a board")
		return
	}

	board, err := h.repo.CreateBoard(r.Context(), repository.CreateBoardParams{
		Name:   dto.Name,
		Email:  dto.Email,
		Layout: layout,
	})
	if errors.Is(err, repository.ErrInvalidBoard) {
		sendError(w, h.logger, http.StatusUnprocessableEntity, "Failed to create board", err.Error())
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to insert board")
		return
	}

	h.logger.WithFields(logrus.Fields{
		"board_id": board.BoardID,
		"seed":     layout.Params().Seed(),
	}).Info("board created")

	sendSuccess(w, h.logger, http.StatusCreated, NewBoardDTO(board), "Board generated successfully!")
}

func (h *BoardHandler) List(w http.ResponseWriter, r *http.Request) {
	boards, err := h.repo.RecentBoards(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to fetch boards")
		return
	}
	sendSuccess(w, h.logger, http.StatusOK, NewBoardDTOs(boards),
		fmt.Sprintf("Successfully retrieved %d boards", len(boards)))
}

func (h *BoardHandler) Recent(w http.ResponseWriter, r *http.Request) {
	boards, err := h.repo.LatestBoards(r.Context(), LatestBoardsLimit)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to fetch recent boards")
		return
	}
	sendSuccess(w, h.logger, http.StatusOK, NewBoardDTOs(boards),
		fmt.Sprintf("Successfully retrieved %d recent boards", len(boards)))
}

type StatsDTO struct {
	TotalBoards int64 `json:"total_boards"`
}

func (h *BoardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	count, err := h.repo.CountBoards(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to count boards")
		return
	}
	sendSuccess(w, h.logger, http.StatusOK, StatsDTO{TotalBoards: count},
		"Board statistics retrieved successfully")
}

// fetch loads the board named by the {id} path value, answering the request
// itself when that fails.
func (h *BoardHandler) fetch(w http.ResponseWriter, r *http.Request) (*repository.Board, bool) {
	boardID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		sendError(w, h.logger, http.StatusBadRequest, "board id must be an integer")
		return nil, false
	}

	board, err := h.repo.FetchBoard(r.Context(), boardID)
	if errors.Is(err, repository.ErrNotFound) {
		sendError(w, h.logger, http.StatusNotFound,
			fmt.Sprintf("Board with id %d not found", boardID))
		return nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to fetch board from db")
		return nil, false
	}
	return board, true
}

func (h *BoardHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	board, ok := h.fetch(w, r)
	if !ok {
		return
	}
	sendSuccess(w, h.logger, http.StatusOK, NewBoardDTO(board), "Board retrieved successfully")
}
