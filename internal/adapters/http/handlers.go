package httpadapter

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/solver"
	"svw.info/sudoku-engine/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

// Router mounts the JSON API.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Post("/api/solve", h.handleSolve)
	r.Post("/api/solve/all", h.handleSolveAll)
	r.Post("/api/generate", h.handleGenerate)
	r.Post("/api/validate", h.handleValidate)
	return r
}

func badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, render.M{"error": msg})
}

// ---- Solve ----

type solveReq struct {
	Board [9][9]uint8 `json:"board"`
}

type solveResp struct {
	Board      [9][9]uint8 `json:"board,omitempty"`
	Solved     bool        `json:"solved"`
	DurationMs int64       `json:"durationMs"`
	Nodes      int         `json:"nodes"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	out, st, err := h.UC.Solve(r.Context(), &domain.Board{Values: req.Board})
	if errors.Is(err, solver.ErrNoSolution) {
		// Unsolvable input is a normal outcome, not a server failure.
		render.JSON(w, r, solveResp{Solved: false, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
		return
	}
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, render.M{"error": err.Error()})
		return
	}
	render.JSON(w, r, solveResp{
		Board:      out.Values,
		Solved:     true,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- SolveAll ----

type solveAllResp struct {
	Solutions  [][9][9]uint8 `json:"solutions"`
	Count      int           `json:"count"`
	DurationMs int64         `json:"durationMs"`
	Nodes      int           `json:"nodes"`
}

func (h *Handler) handleSolveAll(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	all, st, err := h.UC.SolveAll(r.Context(), &domain.Board{Values: req.Board})
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, render.M{"error": err.Error()})
		return
	}
	solutions := make([][9][9]uint8, 0, len(all))
	for _, s := range all {
		solutions = append(solutions, s.Values)
	}
	render.JSON(w, r, solveAllResp{
		Solutions:  solutions,
		Count:      len(solutions),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Generate ----

type generateReq struct {
	Seed       int64  `json:"seed,omitempty"`
	MinFilled  int    `json:"minFilled,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

type generateResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle"`
	Seed       int64          `json:"seed"`
	DurationMs int64          `json:"durationMs"`
	Nodes      int            `json:"nodes"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := render.DecodeJSON(r.Body, &req); err != nil && err.Error() != "EOF" {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	minFilled := req.MinFilled
	diff := domain.ParseDifficulty(req.Difficulty)
	if minFilled <= 0 {
		minFilled = diff.MinFilled()
	}
	p, st, err := h.UC.Generate(r.Context(), seed, minFilled)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, render.M{"error": err.Error()})
		return
	}
	p.Difficulty = diff
	render.JSON(w, r, generateResp{
		Puzzle:     p,
		Seed:       seed,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Validate ----

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), &domain.Board{Values: req.Board})
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, render.M{"error": err.Error()})
		return
	}
	render.JSON(w, r, validateResp{OK: ok, Conflicts: conflicts})
}
