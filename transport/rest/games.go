package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/triangles-backend/internal/apperror"
	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/internal/service"
)

type createPlayerRequest struct {
	PlayerID string `json:"playerId"`
}

type createGameRequest struct {
	PlayerID           string `json:"playerId"`
	Type               string `json:"type"`
	Preset             string `json:"preset"`
	Rows               []int  `json:"rows"`
	RequiredLineLength int    `json:"requiredLineLength"`
	ScoreAgain         *bool  `json:"scoreAgain"`
	AllowShorterLines  *bool  `json:"allowShorterLines"`
}

type turnRequest struct {
	PlayerID string     `json:"playerId"`
	From     entity.Dot `json:"from"`
	To       entity.Dot `json:"to"`
}

func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, err)
	}
	return nil
}

func (that *Server) createPlayer(w http.ResponseWriter, r *http.Request) {
	var req createPlayerRequest
	if r.ContentLength != 0 {
		if err := decode(r, &req); err != nil {
			that.writeError(w, err)
			return
		}
	}

	player, err := that.gamePlay.GetOrCreatePlayer(r.Context(), req.PlayerID)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, player)
}

func (that *Server) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := decode(r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	if req.PlayerID == "" {
		that.writeError(w, fmt.Errorf("%w: playerId is required", apperror.ErrInvalidRequest))
		return
	}

	game, err := that.gamePlay.GetOrCreateGame(r.Context(), req.PlayerID, service.GameOptions{
		Type:               req.Type,
		Preset:             req.Preset,
		Rows:               req.Rows,
		RequiredLineLength: req.RequiredLineLength,
		ScoreAgain:         req.ScoreAgain,
		AllowShorterLines:  req.AllowShorterLines,
	})
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *Server) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gamePlay.GetGameByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

// makeTurn - the player must be seated in the game named by the path.
func (that *Server) makeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := decode(r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	game, err := that.gamePlay.GetGameByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	if _, ok := game.PlayerByID(req.PlayerID); !ok {
		that.writeError(w, apperror.ErrNotInGame)
		return
	}

	game, err = that.gamePlay.MakeTurn(r.Context(), req.PlayerID, req.From, req.To)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) playerMatches(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			that.writeError(w, fmt.Errorf("%w: bad limit %q", apperror.ErrInvalidRequest, raw))
			return
		}
		limit = parsed
	}

	matches, err := that.gamePlay.History(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		that.writeError(w, err)
		return
	}

	if matches == nil {
		matches = []*entity.Match{}
	}

	that.writeJSON(w, http.StatusOK, matches)
}
