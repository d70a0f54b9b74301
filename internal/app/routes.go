package app

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/minesweeper-boards/internal/handlers"
	"github.com/vancomm/minesweeper-boards/internal/mines"
	"github.com/vancomm/minesweeper-boards/internal/repository"
)

type BoardStore = handlers.BoardStore

func newStore(db *pgxpool.Pool) BoardStore {
	return repository.New(db)
}

func (a *App) loadRoutes(basePath string, store BoardStore) {
	boards := handlers.NewBoardHandler(
		a.logger, store, a.ws, mines.NewGenerator(nil),
	)

	prefix := basePath + "/api/v1/boards"
	a.router.HandleFunc("POST "+prefix, boards.Create)
	a.router.HandleFunc("GET "+prefix, boards.List)
	a.router.HandleFunc("GET "+prefix+"/recent", boards.Recent)
	a.router.HandleFunc("GET "+prefix+"/stats", boards.Stats)
	a.router.HandleFunc("GET "+prefix+"/{id}", boards.Fetch)
	a.router.HandleFunc("GET "+prefix+"/{id}/play", boards.Play)

	a.router.HandleFunc("GET "+basePath+"/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}
